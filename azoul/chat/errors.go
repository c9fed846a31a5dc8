package chat

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResponse means neither the requested language nor English has a
	// candidate reply for a category.
	ErrNoResponse = errors.New("no response available")

	ErrInvalidPhrasebook = errors.New("invalid phrasebook")

	ErrEmptyMessage  = errors.New("message is required")
	ErrClosed        = errors.New("conversation is closed")
	ErrAwaitingReply = errors.New("a reply is still pending")
)

// ConfigurationError reports a hole in the response bank for one
// (language, category) pair.
type ConfigurationError struct {
	Language string
	Category Category
	Err      error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("response bank: %s/%s: %v", e.Language, e.Category, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
