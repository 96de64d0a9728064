package app

import (
	"errors"
	"fmt"
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrNoPlayerSelected = errors.New("no player selected")
	ErrUnsupportedRole  = errors.New("only trainer accounts are supported")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrNotLoggedIn      = errors.New("not logged in")
)

// RequestError is a non-2xx answer from the backend.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
}
