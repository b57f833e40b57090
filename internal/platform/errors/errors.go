package apperrors

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrNoSuchSection   = errors.New("no such data section")
	ErrInvalidDocument = errors.New("invalid session document")
	ErrNotASaveFile    = errors.New("not a recognized save file")
)
