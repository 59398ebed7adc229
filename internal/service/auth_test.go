package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taskman/taskman-go/internal/model"
	"github.com/taskman/taskman-go/internal/repository"
)

func newTestAuthService() *AuthService {
	return NewAuthService(
		repository.NewUserRepository(nil),
		"test-secret",
		time.Hour,
	)
}

func TestRegister_MissingUsername(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "",
		Password: "password123",
	})

	if !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestRegister_MissingPassword(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "alice",
		Password: "",
	})

	if !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc := newTestAuthService()

	// Missing username, missing password, and missing both must all report
	// the same generic failure as a wrong password would.
	cases := []model.LoginRequest{
		{Username: "alice"},
		{Password: "password123"},
		{},
	}

	for _, req := range cases {
		if _, err := svc.Login(context.Background(), req); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("login %+v: expected ErrInvalidCredentials, got %v", req, err)
		}
	}
}
