package lightbox

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// sizeTokenPattern finds an explicit size token such as -480, _800w or @1200 before the extension
	sizeTokenPattern = regexp.MustCompile(`[-_@]\d{2,4}w?\.[a-zA-Z]{2,4}$`)
	// trailingWordPattern strips a final -<word> or _<word> such as -1 or -small
	trailingWordPattern = regexp.MustCompile(`[-_][a-zA-Z0-9]+$`)
	// candidateSizePattern extracts the numeric token of a candidate file name
	candidateSizePattern = regexp.MustCompile(`(\d{2,4})\.[a-zA-Z]{2,4}$`)
)

type variant struct {
	path  string
	size  int   // numeric token in the name, 0 when absent
	bytes int64 // file size
}

// VariantPrefix returns the file name prefix shared by all resolution variants of name
func VariantPrefix(name string) string {
	if loc := sizeTokenPattern.FindStringIndex(name); loc != nil {
		return name[:loc[0]]
	}
	base := name
	if i := strings.LastIndex(name, "."); i >= 0 {
		base = name[:i]
	}
	return trailingWordPattern.ReplaceAllString(base, "")
}

// VariantSize returns the numeric size token of a file name, or 0
func VariantSize(name string) int {
	m := candidateSizePattern.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// FindLargestVariant returns the largest resolution variant of the image at
// imgPath found in the same directory: highest numeric size token first,
// then largest file. The image itself is a candidate. Returns "" when imgPath
// does not exist.
func FindLargestVariant(imgPath string) string {
	if !fileExists(imgPath) {
		return ""
	}
	dir := filepath.Dir(imgPath)
	prefix := VariantPrefix(filepath.Base(imgPath))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var candidates []variant
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		var size int64
		if info, err := e.Info(); err == nil {
			size = info.Size()
		}
		candidates = append(candidates, variant{
			path:  filepath.Join(dir, e.Name()),
			size:  VariantSize(e.Name()),
			bytes: size,
		})
	}
	if len(candidates) == 0 {
		return ""
	}

	// entries are name-sorted, so ties keep name order
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].size != candidates[j].size {
			return candidates[i].size > candidates[j].size
		}
		return candidates[i].bytes > candidates[j].bytes
	})
	return candidates[0].path
}
