package encoding

import (
	"path/filepath"
	"strings"
)

// TempPath derives the hidden sibling path an encode writes to before the
// rename: /lib/movie.mkv becomes /lib/.movie<suffix>.mkv. The suffix doubles
// as the marker the scanner uses to ignore leftovers from interrupted runs.
func TempPath(sourcePath, suffix string) string {
	dir := filepath.Dir(sourcePath)
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		stem = "encoded"
	}
	return filepath.Join(dir, "."+stem+suffix+ext)
}
