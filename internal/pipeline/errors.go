package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured means the backend connection is not set up; no
	// network operation is possible until it is.
	ErrNotConfigured = errors.New("backend is not configured")

	// ErrNoCountry means no country was selected for the submission.
	ErrNoCountry = errors.New("no country selected")

	// ErrMissingAsset means the image or the audio file is absent.
	ErrMissingAsset = errors.New("image and audio file are both required")
)

// BackendError wraps a failure returned by an upload or insert call,
// carrying the backend's message verbatim.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
