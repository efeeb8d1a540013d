package staging

import "errors"

var (
	// ErrMissingSource is returned when a declared artifact does not exist.
	ErrMissingSource = errors.New("source artifact not found")

	// ErrCreateDir is returned when the destination directory cannot be created.
	ErrCreateDir = errors.New("cannot create destination directory")
)
