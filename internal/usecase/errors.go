package usecase

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrMissingCredentials     = errors.New("missing provider credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInternal               = errors.New("internal error")
)
