package services

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrUnknownCollection = errors.New("unknown collection")
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
