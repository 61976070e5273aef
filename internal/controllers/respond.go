package controllers

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"contacts-be/internal/middleware"
	"contacts-be/internal/models"
	"contacts-be/internal/service"
)

func init() {
	// Report validation failures by JSON field name rather than Go field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			switch name {
			case "-":
				return ""
			case "":
				return fld.Name
			}
			return name
		})
	}
}

type normalizer interface {
	Normalize() error
}

// bindJSON decodes and validates the body into req, writing a 400 on failure.
// With allowEmpty an empty body decodes as {}.
func bindJSON(c *gin.Context, req normalizer, allowEmpty bool) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			respondError(c, fromValidator(verrs))
			return false
		case allowEmpty && errors.Is(err, io.EOF):
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return false
		}
	}

	if err := req.Normalize(); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

func fromValidator(verrs validator.ValidationErrors) *models.ValidationError {
	out := &models.ValidationError{}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			out.Add(fe.Field(), "is required")
		} else {
			out.Add(fe.Field(), "is invalid")
		}
	}
	return out
}

// respondError maps service errors to status codes. Anything unrecognised is
// logged with the request id and answered with an opaque 500.
func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  verr.Fields,
		})
		return
	}

	status, message := http.StatusInternalServerError, "Server error"
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		status, message = http.StatusBadRequest, "Email already exists"
	case errors.Is(err, service.ErrPhoneTaken):
		status, message = http.StatusBadRequest, "Phone number already exists"
	case errors.Is(err, service.ErrInvalidContactID):
		status, message = http.StatusBadRequest, "Invalid contact ID format"
	case errors.Is(err, service.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, service.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, service.ErrUserNotFound):
		status, message = http.StatusNotFound, "User not found"
	case errors.Is(err, service.ErrContactNotFound):
		status, message = http.StatusNotFound, "Contact not found"
	}

	if status != http.StatusInternalServerError {
		c.JSON(status, gin.H{"message": message})
		return
	}

	requestID := c.GetString(middleware.RequestIDKey)
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
	_ = c.Error(err)
	c.JSON(status, gin.H{
		"message":   message,
		"requestId": requestID,
	})
}
