package service

import "errors"

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrPhoneTaken       = errors.New("phone number already exists")
	ErrContactNotFound  = errors.New("contact not found")
	ErrInvalidContactID = errors.New("invalid contact id format")
)
