package vehicle

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying a FinderError with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Kind is the category of a FinderError.
type Kind int

const (
	InvalidInput Kind = iota + 1
	NotFound
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case NotFound:
		return "NotFound"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// FinderError is returned by the Finder and the catalog sources.
type FinderError struct {
	Kind    Kind
	Message string
}

func (e *FinderError) Error() string {
	return e.Message
}

// Unwrap maps the error onto ErrInvalidInput or ErrNotFound.
func (e *FinderError) Unwrap() error {
	switch e.Kind {
	case InvalidInput:
		return ErrInvalidInput
	case NotFound:
		return ErrNotFound
	default:
		return nil
	}
}

func invalidInput(format string, args ...any) *FinderError {
	return &FinderError{Kind: InvalidInput, Message: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) *FinderError {
	return &FinderError{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}
