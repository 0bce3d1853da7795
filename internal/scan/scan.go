// Package scan enumerates candidate media files beneath a library root.
package scan

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Files returns a lazy depth-first sequence of absolute paths under root whose
// extension (case-insensitive) appears in extensions. Unreadable subtrees are
// skipped silently and the walk continues with whatever is enumerable.
// Symbolic links to files are included. Files whose name carries tempMarker
// are leftovers from an interrupted run and are never yielded.
func Files(root string, extensions map[string]struct{}, tempMarker string) iter.Seq[string] {
	return func(yield func(string) bool) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return
		}
		_ = filepath.WalkDir(absRoot, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entry or subtree; keep walking the rest.
				return nil
			}
			if entry.IsDir() {
				return nil
			}
			name := entry.Name()
			if tempMarker != "" && strings.Contains(name, tempMarker) {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(name))
			if _, ok := extensions[ext]; !ok {
				return nil
			}
			if !yield(path) {
				return fs.SkipAll
			}
			return nil
		})
	}
}
