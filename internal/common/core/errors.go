package core

import "fmt"

// ClientError is a type for errors that occur in the dispatcher packages.
// It is a format string that can be filled with arguments, which avoids
// repeating the same formatted messages across the client code.
type ClientError string

const (
	ErrFailedToMarshalRequest ClientError = "failed to marshal request %s: %s"
	ErrFailedToDecodeResponse ClientError = "failed to decode response for %s: %s"
	ErrFailedToReadResponse   ClientError = "failed to read response body for %s: %s"

	ErrFailedToParseURL  ClientError = "failed to parse URL %s: %s"
	ErrFailedToDoRequest ClientError = "failed to do request %s: %s"
	ErrFailedToDialNode  ClientError = "failed to dial node at %s: %s"
	ErrUnexpectedStatus  ClientError = "unexpected HTTP status %s"
)

// WithArgs returns a new error with the given arguments.
func (e ClientError) WithArgs(args ...any) error {
	return fmt.Errorf(string(e), args...)
}
