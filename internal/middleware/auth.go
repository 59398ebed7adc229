package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskman/taskman-go/internal/crypto"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenAuth returns middleware that validates the identity token from the
// Authorization header. The header carries the raw token value with no scheme
// prefix; clients sending "Bearer <token>" are rejected.
func TokenAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				writeAuthError(w, "Missing Authorization Header")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				if errors.Is(err, crypto.ErrExpiredToken) {
					writeAuthError(w, "Token has expired")
					return
				}
				writeAuthError(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithUserID returns a context carrying the given user ID, as TokenAuth
// would set it.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func writeAuthError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
