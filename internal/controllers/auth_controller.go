package controllers

import (
	"net/http"

	"contacts-be/internal/models"
	"contacts-be/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Signup handles POST /signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if !bindJSON(c, &req, false) {
		return
	}

	if err := ac.authService.Signup(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.MessageResponse{Message: "User created successfully"})
}

// Login handles POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req, false) {
		return
	}

	response, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
