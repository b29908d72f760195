package href

import "fmt"

// DocumentError represents a document that could not be read.
//
// The collector does not abort when a document fails, it
// wraps the error with the document's index and continues.
type DocumentError struct {
	// Index is the index of the document passed to Collect.
	Index int

	// Err is the underlying error.
	Err error
}

// Error implementation.
func (err *DocumentError) Error() string {
	return fmt.Sprintf("href: document %d - %s", err.Index, err.Err)
}

// Unwrap returns the underlying error.
func (err *DocumentError) Unwrap() error {
	return err.Err
}
