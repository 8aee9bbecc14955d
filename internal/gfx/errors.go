package gfx

import (
	"github.com/pkg/errors"
)

// InitError is returned when the platform, window or renderer could not be
// brought up.
type InitError struct {
	// Op is the step that failed, ie. "Init", "CreateWindow" or "CreateRenderer"
	Op  string
	Err error
}

func (e *InitError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *InitError) Unwrap() error { return e.Err }

func (e *InitError) Cause() error { return e.Err }

// LoadError is returned when an image could not be decoded or uploaded
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return "load " + e.Path + ": " + e.Err.Error() }

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Cause() error { return e.Err }

// Describe splits an error into the context that failed and the underlying
// platform error, for printing as "<context> error: <cause>".
func Describe(err error) (string, error) {
	var initErr *InitError
	if errors.As(err, &initErr) {
		return initErr.Op, initErr.Err
	}
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return "LoadTexture", loadErr.Err
	}
	return "Run", err
}
