package lightbox

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultIgnoreDirs are directory names never scanned for HTML files
var DefaultIgnoreDirs = []string{"node_modules", "dist", ".git", "0"}

// FindHTMLFiles returns every .html file under root, in lexical order,
// skipping directories whose name is in ignore.
func FindHTMLFiles(root string, ignore []string) ([]string, error) {
	skip := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		skip[name] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".html") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, &Error{Message: "failed to scan " + root, Cause: err}
	}
	return files, nil
}

// FindHTMLFilesUnder returns every .html file below root/dir. A missing
// directory yields no files.
func FindHTMLFilesUnder(root, dir string) ([]string, error) {
	target := filepath.Join(root, dir)
	if info, err := os.Stat(target); err != nil || !info.IsDir() {
		return nil, nil
	}
	return FindHTMLFiles(target, nil)
}

// relToRoot returns path relative to root with forward slashes, or path itself
// when it is not below root.
func relToRoot(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
