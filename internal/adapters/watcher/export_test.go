package watcher

import "os"

// SetStat replaces the root check used after each batch.
func SetStat(w *Watcher, fn func(string) (os.FileInfo, error)) {
	w.stat = fn
}
