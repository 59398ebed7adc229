package handler

import (
	"errors"
	"net/http"

	"github.com/taskman/taskman-go/internal/model"
	"github.com/taskman/taskman-go/internal/service"
	"github.com/taskman/taskman-go/internal/validate"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /auth/register requests.
//
//	@Summary	Register a new user
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		model.RegisterRequest	true	"Credentials"
//	@Success	201		{object}	map[string]string
//	@Failure	400		{object}	map[string]string
//	@Router		/auth/register [post]
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := validate.DefaultPolicy.DecodeJSON(r.Body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, msgResponse("Invalid request body"))
		return
	}

	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, msgResponse("Username and password required"))
		return
	}

	if _, err := h.service.Register(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			writeJSON(w, http.StatusBadRequest, msgResponse("Username and password required"))
		case errors.Is(err, service.ErrUsernameTaken):
			writeJSON(w, http.StatusBadRequest, msgResponse("Username already exists"))
		default:
			writeInternalError(w)
		}
		return
	}

	writeJSON(w, http.StatusCreated, msgResponse("User registered successfully"))
}

// HandleLogin handles POST /auth/login requests.
//
//	@Summary	Log in and obtain an access token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		model.LoginRequest	true	"Credentials"
//	@Success	200		{object}	model.TokenResponse
//	@Failure	401		{object}	map[string]string
//	@Router		/auth/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := validate.DefaultPolicy.DecodeJSON(r.Body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, msgResponse("Invalid request body"))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, msgResponse("Invalid credentials"))
			return
		}
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
