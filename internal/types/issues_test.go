package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagReport_JSONFieldNames(t *testing.T) {
	report := TagReport{
		File:     "index.html",
		Balanced: false,
		Issues: []Issue{
			{Type: IssueUnclosed, Line: 3, Tag: "div", Message: "Unclosed tag <div> started at line 3"},
		},
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"file": "index.html"`)
	assert.Contains(t, string(jsonBytes), `"balanced": false`)
	assert.Contains(t, string(jsonBytes), `"type": "unclosed"`)
	assert.Contains(t, string(jsonBytes), `"line": 3`)
	assert.Contains(t, string(jsonBytes), `"tag": "div"`)
}

func TestImageRef_LargestOmittedWhenEmpty(t *testing.T) {
	jsonBytes, err := json.Marshal(ImageRef{Src: "a.jpg", Candidate: "/site/a.jpg"})
	require.NoError(t, err)
	assert.NotContains(t, string(jsonBytes), "largest")
}
