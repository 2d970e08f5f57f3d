package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyURL       = errors.New("empty URL")
	ErrInvalidURL     = errors.New("invalid URL")
	ErrLoginRequired  = errors.New("login required")
	ErrSessionExpired = errors.New("session expired")
	ErrAliasExists    = errors.New("alias already exists")
	ErrAliasTaken     = errors.New("alias taken by another user")
	ErrBusy           = errors.New("previous request is still in flight")
	ErrMissingPrimary = errors.New("primary identity not found")
	ErrSelfLink       = errors.New("cannot link an identity with itself")
)

// BackendError представляет неожиданный ответ бэкенда, не входящий
// в известные случаи (401, 409).
type BackendError struct {
	Status int
	Detail string
}

func (e *BackendError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("unexpected backend error: status %d", e.Status)
	}
	return fmt.Sprintf("unexpected backend error: status %d: %s", e.Status, e.Detail)
}

// LinkFailedError представляет отказ бэкенда связать учётные записи.
// Message содержит сообщение бэкенда либо общий текст.
type LinkFailedError struct {
	Message string
}

func (e *LinkFailedError) Error() string {
	return e.Message
}
