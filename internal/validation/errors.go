// Package validation provides functionality to validate HTML documents for tag balance and nesting.
package validation

import "fmt"

// UsageError represents a wrong command-line invocation
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// FileNotFoundError represents an input path that does not resolve to an existing file
type FileNotFoundError struct {
	Path  string
	Cause error
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("File not found: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() error {
	return e.Cause
}

// FileReadError represents an error reading a file
type FileReadError struct {
	Message string
	Cause   error
}

func (e *FileReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("file read error: %s", e.Message)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}
