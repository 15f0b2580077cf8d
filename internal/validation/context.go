package validation

import "strings"

const (
	// contextBefore is how many lines before the flagged line are shown
	contextBefore = 3
	// contextAfter is how many lines after the flagged line are shown
	contextAfter = 3
)

// SplitLines splits text into lines, accepting \n and \r\n endings.
// A trailing newline does not produce an empty final line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// ContextWindow returns the 0-based half-open range of lines to display
// around the 1-based line, clipped to the document.
func ContextWindow(lineCount, line int) (start, end int) {
	start = max(0, line-1-contextBefore)
	end = min(lineCount, line+contextAfter)
	if start > end {
		start = end
	}
	return start, end
}
