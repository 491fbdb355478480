package fs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/livetree/internal/adapters/fs"
	"go.trai.ch/livetree/internal/core/domain"
)

func names(snapshot domain.TreeSnapshot) []string {
	out := make([]string, len(snapshot.Entries))
	for i, e := range snapshot.Entries {
		out[i] = e.Prefix + e.Name
	}
	return out
}

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), domain.DirPerm))
	}
}

func touch(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("x"), domain.PrivateFilePerm))
	}
}

func TestWalker_Build(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, "src")
	touch(t, root, "README.md", filepath.Join("src", "main.rs"))

	snapshot := fs.NewWalker().Build(root, domain.TreeConfig{})

	assert.Equal(t, []string{
		"├── src",
		"│   └── main.rs",
		"└── README.md",
	}, names(snapshot))
	assert.Equal(t, 3, snapshot.TotalEntries)
	assert.False(t, snapshot.Truncated())

	src := snapshot.Entries[0]
	assert.True(t, src.IsDir)
	assert.Equal(t, 1, src.Depth)
	assert.Equal(t, filepath.Join(root, "src"), src.Path)
	assert.Equal(t, 2, snapshot.Entries[1].Depth)
}

func TestWalker_Build_SortOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, "beta", "Alpha", ".conf")
	touch(t, root, "b.txt", "A.txt", ".env")

	snapshot := fs.NewWalker().Build(root, domain.TreeConfig{ShowHidden: true})

	got := make([]string, len(snapshot.Entries))
	for i, e := range snapshot.Entries {
		got[i] = e.Name
	}
	assert.Equal(t, []string{"Alpha", "beta", ".conf", "A.txt", "b.txt", ".env"}, got)
}

func TestWalker_Build_HiddenArePruned(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, ".hidden")
	touch(t, root, filepath.Join(".hidden", "inner.txt"), "visible.txt")

	snapshot := fs.NewWalker().Build(root, domain.TreeConfig{})
	assert.Equal(t, []string{"└── visible.txt"}, names(snapshot))

	snapshot = fs.NewWalker().Build(root, domain.TreeConfig{ShowHidden: true})
	assert.Len(t, snapshot.Entries, 3)
}

func TestWalker_Build_IgnorePrunesSubtree(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, filepath.Join("target", "debug"), "src", "node_modules")
	touch(t, root, filepath.Join("target", "debug", "app"), filepath.Join("src", "lib.rs"), "app.log")

	ignore, err := fs.CompileIgnore([]string{"node_modules", "target/**", "target", "*.log"})
	require.NoError(t, err)

	snapshot := fs.NewWalker().Build(root, domain.TreeConfig{Ignore: ignore})
	assert.Equal(t, []string{"└── src", "    └── lib.rs"}, names(snapshot))
}

func TestWalker_Build_MaxDepth(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, filepath.Join("a", "b", "c"))

	snapshot := fs.NewWalker().Build(root, domain.TreeConfig{MaxDepth: 2})
	assert.Equal(t, []string{"└── a", "    └── b"}, names(snapshot))
}

func TestWalker_Build_DirsOnly(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkdirs(t, root, "a", "b")
	touch(t, root, "file.txt", filepath.Join("a", "inner.txt"))

	snapshot := fs.NewWalker().Build(root, domain.TreeConfig{DirsOnly: true})
	assert.Equal(t, []string{"├── a", "└── b"}, names(snapshot))
	assert.Equal(t, 2, snapshot.TotalEntries)
}

func TestWalker_Build_MaxEntries(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	touch(t, root, "a", "b", "c", "d", "e")

	snapshot := fs.NewWalker().Build(root, domain.TreeConfig{MaxEntries: 3})
	assert.Len(t, snapshot.Entries, 3)
	assert.Equal(t, 5, snapshot.TotalEntries)
	assert.True(t, snapshot.Truncated())
	assert.Equal(t, "a", snapshot.Entries[0].Name)
}

func TestWalker_Build_Symlinks(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}

	root := t.TempDir()
	mkdirs(t, root, "real")
	touch(t, root, filepath.Join("real", "f.txt"))
	require.NoError(t, os.Symlink("real", filepath.Join(root, "link")))
	require.NoError(t, os.Symlink("missing", filepath.Join(root, "dangling")))

	snapshot := fs.NewWalker().Build(root, domain.TreeConfig{})
	byName := map[string]domain.TreeEntry{}
	for _, e := range snapshot.Entries {
		byName[e.Name] = e
	}

	link := byName["link"]
	assert.True(t, link.IsSymlink)
	assert.Equal(t, "real", link.SymlinkTarget)
	assert.False(t, link.IsDir, "links are not descended without follow")
	assert.Equal(t, "missing", byName["dangling"].SymlinkTarget)
	assert.Len(t, snapshot.Entries, 4)

	followed := fs.NewWalker().Build(root, domain.TreeConfig{FollowSymlinks: true})
	assert.Len(t, followed.Entries, 5, "followed link contributes its child")
}

func TestWalker_Build_SymlinkLoop(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}

	root := t.TempDir()
	mkdirs(t, root, "a")
	require.NoError(t, os.Symlink("..", filepath.Join(root, "a", "up")))

	snapshot := fs.NewWalker().Build(root, domain.TreeConfig{FollowSymlinks: true})
	require.Len(t, snapshot.Entries, 2)

	up := snapshot.Entries[1]
	assert.Equal(t, "up", up.Name)
	assert.True(t, up.IsSymlink)
	assert.Equal(t, fs.LoopDetected, up.Err)
}

func TestWalker_Build_UnreadableDirectory(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	root := t.TempDir()
	mkdirs(t, root, "locked", "open")
	touch(t, root, filepath.Join("locked", "secret"))
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, domain.DirPerm) })

	snapshot := fs.NewWalker().Build(root, domain.TreeConfig{})
	require.Len(t, snapshot.Entries, 2)

	entry := snapshot.Entries[0]
	assert.Equal(t, "locked", entry.Name)
	assert.True(t, entry.IsDir)
	assert.Equal(t, "permission denied", entry.Err)
	assert.Equal(t, "open", snapshot.Entries[1].Name)
}

func TestWalker_Build_MissingRoot(t *testing.T) {
	t.Parallel()

	snapshot := fs.NewWalker().Build(filepath.Join(t.TempDir(), "gone"), domain.TreeConfig{})
	assert.Empty(t, snapshot.Entries)
	assert.Zero(t, snapshot.TotalEntries)
}
