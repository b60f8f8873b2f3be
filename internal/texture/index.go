package texture

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dice-cube-renderer/internal/pips"
)

// extRank orders skin formats; higher wins when a value has several files.
// Formats carrying alpha beat opaque ones.
var extRank = map[string]int{
	".bmp":  1,
	".jpg":  2,
	".jpeg": 2,
	".tga":  3,
	".png":  4,
}

// Index maps face values to skin image paths found in a directory.
type Index struct {
	entries map[pips.FaceValue]string
}

// BuildIndex scans dir (non-recursive) for files named "<n>.<ext>" or
// "face<n>.<ext>" with n in 1..6. A missing or empty dir gives an empty index.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[pips.FaceValue]string)}
	if dir == "" {
		return idx
	}

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		rank, ok := extRank[ext]
		if !ok {
			continue
		}
		v, ok := parseValue(strings.TrimSuffix(name, filepath.Ext(name)))
		if !ok {
			continue
		}

		path := filepath.Join(dir, name)
		existing, exists := idx.entries[v]
		if !exists || rank > extRank[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[v] = path
		}
	}

	return idx
}

func parseValue(stem string) (pips.FaceValue, bool) {
	stem = strings.TrimPrefix(strings.ToLower(stem), "face")
	n, err := strconv.Atoi(stem)
	if err != nil {
		return 0, false
	}
	v := pips.FaceValue(n)
	return v, v.Valid()
}

// ResolvePath returns the skin path for v, or ("", false).
func (idx *Index) ResolvePath(v pips.FaceValue) (string, bool) {
	path, ok := idx.entries[v]
	return path, ok
}

// Len returns the number of indexed skins.
func (idx *Index) Len() int {
	return len(idx.entries)
}
