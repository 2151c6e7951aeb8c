package models

import "strings"

// ValidationError aggregates field-level validation messages. The API layer
// maps it to HTTP 400 with the messages joined for the client.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, ", ")
}
