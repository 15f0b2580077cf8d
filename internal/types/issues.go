// Package types provides type definitions for structured data used throughout the site-tools system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Issue types reported by the tag balance checker
const (
	IssueMismatchedClose = "mismatched_close"
	IssueUnexpectedClose = "unexpected_close"
	IssueUnclosed        = "unclosed"
)

// TagToken is one lexical match of an opening or closing tag
type TagToken struct {
	Name        string // lowercased tag name
	Closing     bool
	Line        int // 1-based
	SelfClosing bool
}

// OpenTag is an entry on the open-tag stack
type OpenTag struct {
	Name string
	Line int
}

// Issue represents a single tag nesting anomaly
type Issue struct {
	Type    string `json:"type"`
	Line    int    `json:"line"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// TagReport is the result of checking one HTML document
type TagReport struct {
	File     string  `json:"file"`
	Balanced bool    `json:"balanced"`
	Issues   []Issue `json:"issues"`
}
