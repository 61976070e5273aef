package entities

import "time"

// Contact represents an address book entry. Field names on the wire match
// what the browser client already sends and reads, hence "_id".
type Contact struct {
	ID          string    `json:"_id"` // UUID
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"` // Unique across all contacts
	Company     string    `json:"company,omitempty"`
	JobTitle    string    `json:"jobTitle,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ContactChanges describes a partial update; nil fields keep their stored value.
type ContactChanges struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Company     *string
	JobTitle    *string
}
