package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrUsernameTooShort   = errors.New("username too short")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTaskNotFound covers both a missing task and a task owned by
	// another user on read/delete paths, so callers cannot probe for
	// the existence of foreign tasks.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskNotOwned is returned by the update path only, which checks
	// existence before ownership.
	ErrTaskNotOwned = errors.New("task not owned by user")
)
