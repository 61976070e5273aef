package controllers

import (
	"net/http"

	"contacts-be/internal/models"
	"contacts-be/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	contactService service.ContactService
}

func NewContactController(contactService service.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// ListContacts handles GET /contacts
func (cc *ContactController) ListContacts(c *gin.Context) {
	contacts, err := cc.contactService.ListContacts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// CreateContact handles POST /contacts
func (cc *ContactController) CreateContact(c *gin.Context) {
	var req models.CreateContactRequest
	if !bindJSON(c, &req, false) {
		return
	}

	if _, err := cc.contactService.CreateContact(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.MessageResponse{Message: "Contact created successfully"})
}

// UpdateContact handles PUT /contacts/:id
func (cc *ContactController) UpdateContact(c *gin.Context) {
	var req models.UpdateContactRequest
	if !bindJSON(c, &req, true) {
		return
	}

	contact, err := cc.contactService.UpdateContact(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UpdateContactResponse{
		Message: "Contact updated successfully",
		Contact: contact,
	})
}

// DeleteContact handles DELETE /contacts/:id
func (cc *ContactController) DeleteContact(c *gin.Context) {
	if err := cc.contactService.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Contact deleted successfully"})
}
