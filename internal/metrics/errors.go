package metrics

import (
	"errors"
	"fmt"
)

var (
	ErrInitFailed      = errors.New("telemetry provider initialization failed")
	ErrNoDevice        = errors.New("GPU device not found")
	ErrZeroMemoryTotal = errors.New("GPU reported zero total memory")
)

// CollectionError reports which query aborted a collection.
type CollectionError struct {
	Query string
	Err   error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("collect %s: %v", e.Query, e.Err)
}

func (e *CollectionError) Unwrap() error {
	return e.Err
}

func collectionErr(query string, err error) error {
	return &CollectionError{Query: query, Err: err}
}
