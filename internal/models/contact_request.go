package models

import "strings"

// CreateContactRequest represents the request body for adding a contact
type CreateContactRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Company     string `json:"company"`
	JobTitle    string `json:"jobTitle"`
}

func (r *CreateContactRequest) Normalize() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Company = strings.TrimSpace(r.Company)
	r.JobTitle = strings.TrimSpace(r.JobTitle)

	verr := &ValidationError{}
	verr.requireNonBlank("firstName", r.FirstName)
	verr.requireNonBlank("lastName", r.LastName)
	verr.requireNonBlank("email", r.Email)
	verr.requireNonBlank("phoneNumber", r.PhoneNumber)
	return verr.OrNil()
}

// UpdateContactRequest is a partial update: nil fields are left untouched.
type UpdateContactRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Company     *string `json:"company,omitempty"`
	JobTitle    *string `json:"jobTitle,omitempty"`
}

// Normalize trims every present field. Required fields may be omitted but
// not blanked; optional fields may be cleared with an empty string.
func (r *UpdateContactRequest) Normalize() error {
	for _, f := range []**string{&r.FirstName, &r.LastName, &r.Email, &r.PhoneNumber, &r.Company, &r.JobTitle} {
		if *f != nil {
			trimmed := strings.TrimSpace(**f)
			*f = &trimmed
		}
	}

	verr := &ValidationError{}
	if r.FirstName != nil {
		verr.requireNonBlank("firstName", *r.FirstName)
	}
	if r.LastName != nil {
		verr.requireNonBlank("lastName", *r.LastName)
	}
	if r.Email != nil {
		verr.requireNonBlank("email", *r.Email)
	}
	if r.PhoneNumber != nil {
		verr.requireNonBlank("phoneNumber", *r.PhoneNumber)
	}
	return verr.OrNil()
}
