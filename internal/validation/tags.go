package validation

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jonathan/site-tools/internal/types"
)

var (
	commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
	scriptPattern  = regexp.MustCompile(`(?i)<script[\s\S]*?</script>`)
	stylePattern   = regexp.MustCompile(`(?i)<style[\s\S]*?</style>`)

	// tagPattern matches <name ...>, </name> and <name/>. A '>' inside a quoted
	// attribute value ends the match early; that is a known limitation.
	tagPattern = regexp.MustCompile(`<\s*(/?)\s*([a-zA-Z0-9:-]+)([^>]*)>`)
)

// voidElements never have a closing tag. path is included by convention for inline SVG.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true, "path": true,
}

// IsVoidElement reports whether name is in the void element set
func IsVoidElement(name string) bool {
	return voidElements[strings.ToLower(name)]
}

// CheckFile reads the HTML file at path and checks its tag balance
func CheckFile(path string) (*types.TagReport, error) {
	text, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return NewTagReport(path, text), nil
}

// ReadDocument returns the full text of the HTML file at path
func ReadDocument(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", &FileNotFoundError{Path: path, Cause: err}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", &FileReadError{
			Message: fmt.Sprintf("failed to read HTML file: %s", path),
			Cause:   err,
		}
	}
	return string(content), nil
}

// NewTagReport checks text and wraps the result for file
func NewTagReport(file, text string) *types.TagReport {
	issues := CheckTags(text)
	return &types.TagReport{
		File:     file,
		Balanced: len(issues) == 0,
		Issues:   issues,
	}
}

// CheckTags scans an HTML document and returns every nesting problem found.
// Issues found during the scan come first in document order, followed by
// tags still open at the end of the document, outermost first.
func CheckTags(text string) []types.Issue {
	issues := []types.Issue{}
	var stack []types.OpenTag

	for _, tok := range Tokenize(Preprocess(text)) {
		if !tok.Closing {
			if !tok.SelfClosing {
				stack = append(stack, types.OpenTag{Name: tok.Name, Line: tok.Line})
			}
			continue
		}

		if len(stack) > 0 && stack[len(stack)-1].Name == tok.Name {
			stack = stack[:len(stack)-1]
			continue
		}

		found := -1
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].Name == tok.Name {
				found = i
				break
			}
		}

		if found < 0 {
			issues = append(issues, types.Issue{
				Type:    types.IssueUnexpectedClose,
				Line:    tok.Line,
				Tag:     tok.Name,
				Message: fmt.Sprintf("Unexpected closing tag </%s>", tok.Name),
			})
			continue
		}

		missing := make([]string, 0, len(stack)-found-1)
		for _, open := range stack[found+1:] {
			missing = append(missing, open.Name)
		}
		issues = append(issues, types.Issue{
			Type:    types.IssueMismatchedClose,
			Line:    tok.Line,
			Tag:     tok.Name,
			Message: fmt.Sprintf("Found closing </%s> but %d tag(s) were not closed: %s", tok.Name, len(missing), formatNameList(missing)),
		})
		stack = stack[:found]
	}

	for _, open := range stack {
		issues = append(issues, types.Issue{
			Type:    types.IssueUnclosed,
			Line:    open.Line,
			Tag:     open.Name,
			Message: fmt.Sprintf("Unclosed tag <%s> started at line %d", open.Name, open.Line),
		})
	}

	return issues
}

// Preprocess removes comments, then script blocks, then style blocks.
// Each removed block leaves its newlines behind so line numbers still
// match the original document.
func Preprocess(text string) string {
	text = commentPattern.ReplaceAllStringFunc(text, keepNewlines)
	text = scriptPattern.ReplaceAllStringFunc(text, keepNewlines)
	return stylePattern.ReplaceAllStringFunc(text, keepNewlines)
}

// Tokenize returns the tag-like matches of text in order of appearance
func Tokenize(text string) []types.TagToken {
	matches := tagPattern.FindAllStringSubmatchIndex(text, -1)
	tokens := make([]types.TagToken, 0, len(matches))

	line := 1
	last := 0
	for _, m := range matches {
		line += strings.Count(text[last:m[0]], "\n")
		last = m[0]

		name := strings.ToLower(text[m[4]:m[5]])
		attrs := text[m[6]:m[7]]
		tokens = append(tokens, types.TagToken{
			Name:        name,
			Closing:     m[3] > m[2],
			Line:        line,
			SelfClosing: strings.HasSuffix(strings.TrimSpace(attrs), "/") || voidElements[name],
		})
	}

	return tokens
}

func keepNewlines(block string) string {
	return strings.Repeat("\n", strings.Count(block, "\n"))
}

// formatNameList renders names as ['a', 'b']
func formatNameList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
