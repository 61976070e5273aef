package models

// LoginResponse carries the bearer token issued on a successful login
type LoginResponse struct {
	Token string `json:"token"`
}
