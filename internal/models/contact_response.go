package models

import "contacts-be/internal/entities"

// MessageResponse is the acknowledgement body used by most write endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// UpdateContactResponse returns the contact as stored after the update
type UpdateContactResponse struct {
	Message string            `json:"message"`
	Contact *entities.Contact `json:"contact"`
}
