package lightbox

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// DefaultRevertDir is the site directory whose annotations get stripped
const DefaultRevertDir = "0"

var attrPattern = regexp.MustCompile(`\s` + Attribute + `=(?:"[^"\n]*"|'[^'\n]*')`)

// StripAttribute removes every data-lightbox-src attribute from text
func StripAttribute(text string) string {
	return attrPattern.ReplaceAllString(text, "")
}

// RevertFile strips the attribute from the file at path, reporting whether it changed
func RevertFile(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, &Error{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}

	out := StripAttribute(string(content))
	if out == string(content) {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return false, &Error{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return true, nil
}

// Revert strips the attribute from every HTML file below root/dir and
// returns the changed files relative to root.
func Revert(root, dir string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &Error{Message: "failed to resolve site root", Cause: err}
	}

	files, err := FindHTMLFilesUnder(abs, dir)
	if err != nil {
		return nil, err
	}

	var changed []string
	for _, f := range files {
		ok, err := RevertFile(f)
		if err != nil {
			return changed, err
		}
		if ok {
			changed = append(changed, relToRoot(abs, f))
		}
	}
	return changed, nil
}
