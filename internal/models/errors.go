package models

import "fmt"

// ValidationError reports malformed or out-of-range request data. It maps
// to a 400 response carrying the offending field and a message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ReferenceError reports a request that references a catalog entry that
// does not exist (or is of the wrong category).
type ReferenceError struct {
	Field string
	ID    int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: menu item %d not found", e.Field, e.ID)
}
