package errorvalues

import "errors"

var (
	ErrEmailTaken       = errors.New("account with such email already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("invalid email or password")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrWeakPassword     = errors.New("password must be at least 8 characters")

	ErrInvalidSection   = errors.New("invalid section id")
	ErrProgressNotFound = errors.New("no progress recorded for section")
	ErrInvalidQuizTotal = errors.New("quiz total must be positive")

	ErrInvalidToken = errors.New("invalid session token")
)
