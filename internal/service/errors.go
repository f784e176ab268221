package service

import "errors"

var (
	// ErrInvalidInput marks validation failures that are rejected before
	// any persistence call.
	ErrInvalidInput = errors.New("invalid input")

	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so the caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)
