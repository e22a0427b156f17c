package index

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Walk recursively collects every regular file under root whose path,
// relative to root and slash-separated, matches pattern — the
// directory-discovery step for indexing a whole manual tree rather than
// an explicit file list. Matching mirrors the teacher's
// FileWalker.matchPattern: a direct doublestar match against the full
// relative path, falling back to a basename-only match for patterns that
// carry no path separator (so a bare "*.1" pattern matches at any depth
// without requiring "**/*.1").
func Walk(root, pattern string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if matchPattern(filepath.ToSlash(rel), pattern) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func matchPattern(relPath, pattern string) bool {
	if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
		return true
	}
	if !strings.Contains(pattern, "/") {
		if matched, err := doublestar.Match(pattern, filepath.Base(relPath)); err == nil && matched {
			return true
		}
	}
	return false
}
