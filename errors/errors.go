package errors

import "fmt"

// ParsingError is the single error kind returned for malformed input.
// Line and Column locate the character at which parsing gave up; both are
// 1-based. Err holds the lower-level cause, if any.
type ParsingError struct {
	Message string
	Line    int
	Column  int
	Err     error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("ntree: parsing error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (e *ParsingError) Unwrap() error { return e.Err }
