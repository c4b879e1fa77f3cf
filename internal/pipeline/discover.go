package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Video file extensions included in the scan (lowercase, with leading dot).
// Matching is case-insensitive: ".MP4" is included.
var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".m4v":  true,
	".mkv":  true,
	".avi":  true,
	".webm": true,
	".flv":  true,
	".wmv":  true,
}

// Discover walks folder recursively, collects regular files with video
// extensions, and returns the paths sorted lexicographically for
// deterministic processing and report order.
func Discover(folder string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if videoExtensions[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
