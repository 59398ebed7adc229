package service

import (
	"context"
	"errors"
	"time"

	"github.com/taskman/taskman-go/internal/crypto"
	"github.com/taskman/taskman-go/internal/model"
	"github.com/taskman/taskman-go/internal/repository"
)

var (
	ErrMissingCredentials = errors.New("username and password required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration and login.
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Register creates a new user account. Only a salted hash of the password is
// stored, never the plaintext.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         model.DefaultRole,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues an access token. All failure modes
// report the same ErrInvalidCredentials so nothing is disclosed about which
// part was wrong.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.TokenResponse, error) {
	if req.Username == "" || req.Password == "" {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TokenResponse{}, ErrInvalidCredentials
		}
		return model.TokenResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.TokenResponse{}, err
	}
	if !match {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{AccessToken: token}, nil
}
