package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"contacts-be/internal/entities"
	"contacts-be/internal/jwt"
	"contacts-be/internal/models"
	"contacts-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Signup(ctx context.Context, req *models.SignupRequest) error
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	hashCost   int
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		hashCost:   bcrypt.DefaultCost,
	}
}

// Signup hashes the password and stores a new user. Email uniqueness is left
// to the unique index so concurrent signups cannot both succeed.
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		verr := &models.ValidationError{}
		verr.Add("password", "must be at most 72 bytes")
		return verr
	}
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, req.Name, req.Email, string(hashedPassword))
	if repository.IsDuplicate(err, "email") {
		return ErrEmailTaken
	}
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Str("user_id", user.ID).Msg("user signed up")
	return nil
}

// Login verifies the password and issues a bearer token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{Token: token}, nil
}

// Authenticate resolves a bearer token to a user that still exists.
func (s *authService) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
