package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/site-tools/internal/observability"
	"github.com/jonathan/site-tools/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHTML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var buf bytes.Buffer
	return reportError(&buf, err)
}

func TestCheckDocument_Balanced(t *testing.T) {
	path := writeHTML(t, "<!DOCTYPE html>\n<html><body><img src=\"x\"><br></body></html>\n")

	var out bytes.Buffer
	err := checkDocument(&out, path, "", observability.DefaultContextIssues)

	assert.Equal(t, 0, exitCode(err))
	assert.Equal(t, "No mismatched tags found.\n", out.String())
}

func TestCheckDocument_Issues(t *testing.T) {
	path := writeHTML(t, "<div>\n<p>hi\n</div>\n</span>\n<section>\n")

	var out bytes.Buffer
	err := checkDocument(&out, path, "", observability.DefaultContextIssues)

	assert.Equal(t, 1, exitCode(err))
	output := out.String()
	assert.Contains(t, output, "HTML tag issues found:\n")
	assert.Contains(t, output, "Line 3: Found closing </div> but 1 tag(s) were not closed: ['p']\n")
	assert.Contains(t, output, "Line 4: Unexpected closing tag </span>\n")
	assert.Contains(t, output, "Line 5: Unclosed tag <section> started at line 5\n")
	assert.Contains(t, output, ">    3: </div>\n")
}

func TestCheckDocument_FileNotFound(t *testing.T) {
	var out bytes.Buffer
	err := checkDocument(&out, "/nonexistent/page.html", "", observability.DefaultContextIssues)

	var stderr bytes.Buffer
	assert.Equal(t, 2, reportError(&stderr, err))
	assert.Equal(t, "File not found: /nonexistent/page.html\n", stderr.String())
	assert.Empty(t, out.String())
}

func TestCheckDocument_Idempotent(t *testing.T) {
	path := writeHTML(t, "<ul>\n<li>one\n</ul>\n")

	var first, second bytes.Buffer
	err1 := checkDocument(&first, path, "", observability.DefaultContextIssues)
	err2 := checkDocument(&second, path, "", observability.DefaultContextIssues)

	assert.Equal(t, exitCode(err1), exitCode(err2))
	assert.Equal(t, first.String(), second.String())
}

func TestCheckDocument_JSONOut(t *testing.T) {
	path := writeHTML(t, "<div>\n<p>\n")
	jsonOut := filepath.Join(t.TempDir(), "reports", "page.json")

	var out bytes.Buffer
	err := checkDocument(&out, path, jsonOut, 0)
	assert.Equal(t, 1, exitCode(err))
	assert.NotContains(t, out.String(), "--- Issue 1")

	data, err := os.ReadFile(jsonOut)
	require.NoError(t, err)

	var report types.TagReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, path, report.File)
	assert.False(t, report.Balanced)
	require.Len(t, report.Issues, 2)
	assert.Equal(t, "div", report.Issues[0].Tag)
	assert.Equal(t, types.IssueUnclosed, report.Issues[1].Type)
}
