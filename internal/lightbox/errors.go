// Package lightbox annotates <img> tags with the largest available resolution
// variant for the lightbox viewer, and can revert or audit those annotations.
package lightbox

import "fmt"

// Error represents a failure while processing an HTML file
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lightbox error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("lightbox error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// AuditError represents a failure parsing HTML during an audit
type AuditError struct {
	File  string
	Cause error
}

func (e *AuditError) Error() string {
	return fmt.Sprintf("lightbox audit error: %s: %v", e.File, e.Cause)
}

func (e *AuditError) Unwrap() error {
	return e.Cause
}
