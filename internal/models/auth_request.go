package models

import "strings"

// SignupRequest represents the request body for user registration
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Normalize trims the identity fields and rejects whitespace-only values.
// The password is kept byte-for-byte.
func (r *SignupRequest) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)

	verr := &ValidationError{}
	verr.requireNonBlank("name", r.Name)
	verr.requireNonBlank("email", r.Email)
	verr.requireNonBlank("password", r.Password)
	return verr.OrNil()
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) Normalize() error {
	r.Email = strings.TrimSpace(r.Email)

	verr := &ValidationError{}
	verr.requireNonBlank("email", r.Email)
	verr.requireNonBlank("password", r.Password)
	return verr.OrNil()
}
