package lightbox

import (
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/site-tools/internal/types"
)

// Audit checks every data-lightbox-src reference in the HTML files under
// root and reports whether each target exists.
func Audit(root string, ignore []string) (scanned int, findings []types.AuditFinding, err error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return 0, nil, &Error{Message: "failed to resolve site root", Cause: err}
	}

	files, err := FindHTMLFiles(abs, ignore)
	if err != nil {
		return 0, nil, err
	}

	for _, f := range files {
		found, err := AuditFile(abs, f)
		if err != nil {
			return len(files), findings, err
		}
		findings = append(findings, found...)
	}
	return len(files), findings, nil
}

// AuditFile checks the data-lightbox-src references of one HTML file
func AuditFile(root, path string) ([]types.AuditFinding, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &AuditError{File: path, Cause: err}
	}
	defer func() { _ = file.Close() }()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return nil, &AuditError{File: path, Cause: err}
	}

	rel := relToRoot(root, path)
	htmlDir := filepath.Dir(path)

	var findings []types.AuditFinding
	doc.Find("img[" + Attribute + "]").Each(func(_ int, s *goquery.Selection) {
		target, _ := s.Attr(Attribute)
		src, _ := s.Attr("src")

		resolved := ResolveSrc(root, htmlDir, target)
		findings = append(findings, types.AuditFinding{
			File:        rel,
			Src:         src,
			LightboxSrc: target,
			Resolved:    resolved,
			Missing:     target == "" || !fileExists(resolved),
		})
	})

	return findings, nil
}
