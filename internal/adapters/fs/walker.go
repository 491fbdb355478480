// Package fs provides the file system adapter that builds directory tree snapshots.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/livetree/internal/core/domain"
)

// LoopDetected is the error text attached to a symlinked directory that points back
// at one of its own ancestors.
const LoopDetected = "filesystem loop detected"

// unreadableTarget stands in for a symlink target that cannot be read.
const unreadableTarget = "?"

// Walker builds tree snapshots by walking the file system.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Build walks root in pre-order and returns the laid out snapshot.
func (w *Walker) Build(root string, cfg domain.TreeConfig) domain.TreeSnapshot {
	t := &traversal{root: root, cfg: cfg}
	if info, err := os.Stat(root); err == nil {
		t.ancestors = append(t.ancestors, info)
	}
	t.walkDir(root, 1)

	entries := t.entries
	if cfg.DirsOnly {
		entries = slices.DeleteFunc(entries, func(e domain.TreeEntry) bool { return !e.IsDir })
	}

	domain.Layout(entries)

	total := len(entries)
	if cfg.MaxEntries > 0 && total > cfg.MaxEntries {
		entries = slices.Clip(entries[:cfg.MaxEntries])
	}

	return domain.TreeSnapshot{Entries: entries, TotalEntries: total}
}

type traversal struct {
	root      string
	cfg       domain.TreeConfig
	entries   []domain.TreeEntry
	ancestors []os.FileInfo
}

type child struct {
	entry   domain.TreeEntry
	info    os.FileInfo
	descend bool
}

func (t *traversal) walkDir(dir string, depth int) {
	if t.cfg.MaxDepth > 0 && depth > t.cfg.MaxDepth {
		return
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil && len(dirEntries) == 0 {
		t.markUnreadable(dir, err)
		return
	}

	children := make([]child, 0, len(dirEntries))
	for _, d := range dirEntries {
		if c, ok := t.inspect(dir, d, depth); ok {
			children = append(children, c)
		}
	}

	slices.SortFunc(children, func(a, b child) int {
		return domain.CompareSiblings(
			domain.Sibling{Name: a.entry.Name, IsDir: a.entry.IsDir},
			domain.Sibling{Name: b.entry.Name, IsDir: b.entry.IsDir},
		)
	})

	for _, c := range children {
		t.entries = append(t.entries, c.entry)
		if !c.descend {
			continue
		}
		if c.info != nil {
			t.ancestors = append(t.ancestors, c.info)
		}
		t.walkDir(c.entry.Path, depth+1)
		if c.info != nil {
			t.ancestors = t.ancestors[:len(t.ancestors)-1]
		}
	}
}

// inspect filters one directory entry and classifies it. ok is false when the entry is
// pruned; pruned directories are never descended.
func (t *traversal) inspect(dir string, d fs.DirEntry, depth int) (child, bool) {
	name := d.Name()
	if !t.cfg.ShowHidden && strings.HasPrefix(name, ".") {
		return child{}, false
	}

	path := filepath.Join(dir, name)
	if t.cfg.Ignore != nil && t.cfg.Ignore.Match(name, t.relative(path)) {
		return child{}, false
	}

	c := child{entry: domain.TreeEntry{
		Name:  name,
		Path:  path,
		Depth: depth,
		IsDir: d.IsDir(),
	}}

	if d.Type()&fs.ModeSymlink != 0 {
		c.entry.IsSymlink = true
		c.entry.SymlinkTarget = readLink(path)
		if !t.cfg.FollowSymlinks {
			return c, true
		}
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return c, true
		}
		c.entry.IsDir = true
		if t.onAncestorChain(info) {
			c.entry.Err = LoopDetected
			return c, true
		}
		c.info = info
		c.descend = true
		return c, true
	}

	if c.entry.IsDir {
		c.descend = true
		if t.cfg.FollowSymlinks {
			// Only needed to detect loops through later symlinks.
			if info, err := d.Info(); err == nil {
				c.info = info
			}
		}
	}
	return c, true
}

// markUnreadable annotates the entry of a directory whose contents could not be listed.
func (t *traversal) markUnreadable(dir string, err error) {
	if dir == t.root {
		return
	}
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].Path == dir {
			t.entries[i].IsDir = true
			t.entries[i].Err = ioMessage(err)
			return
		}
	}
}

func (t *traversal) onAncestorChain(info os.FileInfo) bool {
	for _, a := range t.ancestors {
		if os.SameFile(a, info) {
			return true
		}
	}
	return false
}

func (t *traversal) relative(path string) string {
	rel, err := filepath.Rel(t.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func readLink(path string) string {
	target, err := os.Readlink(path)
	if err != nil {
		return unreadableTarget
	}
	return target
}

// ioMessage strips the operation and path from an I/O error, leaving the cause.
func ioMessage(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
