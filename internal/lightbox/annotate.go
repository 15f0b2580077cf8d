package lightbox

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/site-tools/internal/logger"
	"github.com/jonathan/site-tools/internal/types"
)

// Attribute is the attribute read by the lightbox viewer
const Attribute = "data-lightbox-src"

// imgTagPattern captures the attributes before src, the double- or
// single-quoted src value, and the attributes after it.
var imgTagPattern = regexp.MustCompile(`(?is)<img\s+([^>]*?)src=(?:"([^"]*)"|'([^']*)')([^>]*)>`)

// Annotator inserts data-lightbox-src attributes into HTML files below Root
type Annotator struct {
	Root   string
	DryRun bool
}

// NewAnnotator creates an Annotator for the site rooted at root
func NewAnnotator(root string, dryRun bool) (*Annotator, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &Error{Message: "failed to resolve site root", Cause: err}
	}
	return &Annotator{Root: abs, DryRun: dryRun}, nil
}

// Run annotates every HTML file under the root except ignored directories
func (a *Annotator) Run(ignore []string) (scanned int, changes []types.FileChange, err error) {
	files, err := FindHTMLFiles(a.Root, ignore)
	if err != nil {
		return 0, nil, err
	}

	for _, f := range files {
		change, err := a.AnnotateFile(f)
		if err != nil {
			return len(files), changes, err
		}
		changes = append(changes, change)
	}
	return len(files), changes, nil
}

// AnnotateFile annotates one HTML file, writing it back unless DryRun is set
func (a *Annotator) AnnotateFile(path string) (types.FileChange, error) {
	change := types.FileChange{Path: relToRoot(a.Root, path)}

	content, err := os.ReadFile(path)
	if err != nil {
		return change, &Error{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}

	out, images, modified := a.Annotate(string(content), filepath.Dir(path))
	change.Images = images
	change.Modified = modified
	logger.Debug("annotated file", "path", change.Path, "images", len(images), "modified", modified)

	if a.DryRun || !modified {
		return change, nil
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return change, &Error{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return change, nil
}

// Annotate rewrites every <img> in text that does not yet carry the
// attribute and whose src resolves to an existing image. htmlDir is the
// directory of the document, used for relative src values and for the
// relative attribute value.
func (a *Annotator) Annotate(text, htmlDir string) (string, []types.ImageRef, bool) {
	var (
		sb       strings.Builder
		images   []types.ImageRef
		modified bool
		last     int
	)

	for _, m := range imgTagPattern.FindAllStringSubmatchIndex(text, -1) {
		sb.WriteString(text[last:m[0]])
		last = m[1]

		full := text[m[0]:m[1]]
		if strings.Contains(full, Attribute) {
			sb.WriteString(full)
			continue
		}

		quote, src := `"`, ""
		if m[4] >= 0 {
			src = text[m[4]:m[5]]
		} else {
			quote, src = `'`, text[m[6]:m[7]]
		}
		before := text[m[2]:m[3]]
		after := text[m[8]:m[9]]

		candidate := ResolveSrc(a.Root, htmlDir, src)
		largest := FindLargestVariant(candidate)
		images = append(images, types.ImageRef{Src: src, Candidate: candidate, Largest: largest})
		if largest == "" {
			sb.WriteString(full)
			continue
		}

		rel, err := filepath.Rel(htmlDir, largest)
		if err != nil {
			rel = largest
		}
		insert := fmt.Sprintf(` %s="%s"`, Attribute, filepath.ToSlash(rel))
		sb.WriteString("<img " + before + "src=" + quote + src + quote + insertAttr(after, insert) + ">")
		modified = true
	}
	sb.WriteString(text[last:])

	return sb.String(), images, modified
}

// ResolveSrc maps an <img> src to a filesystem path. "/"-prefixed values are
// relative to root, others to htmlDir; when the htmlDir-relative path does not
// exist the root-relative one is used if it does.
func ResolveSrc(root, htmlDir, src string) string {
	rootRel := filepath.Join(root, filepath.FromSlash(strings.TrimLeft(src, "/")))
	if strings.HasPrefix(src, "/") {
		return rootRel
	}
	candidate := filepath.Join(htmlDir, filepath.FromSlash(src))
	if !fileExists(candidate) && fileExists(rootRel) {
		return rootRel
	}
	return candidate
}

// insertAttr appends insert to the trailing attribute text, keeping a
// self-closing slash at the end.
func insertAttr(after, insert string) string {
	trimmed := strings.TrimRight(after, " \t\r\n")
	if !strings.HasSuffix(trimmed, "/") {
		return after + insert
	}
	body := strings.TrimRight(strings.TrimSuffix(trimmed, "/"), " \t\r\n")
	return body + insert + " /"
}
