package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taskman/taskman-go/internal/crypto"
)

const testSecret = "test-secret"

func authRequest(t *testing.T, token string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if token != "" {
		r.Header.Set("Authorization", token)
	}
	return httptest.NewRecorder(), r
}

func decodeMsg(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	return body["msg"]
}

func TestTokenAuth_MissingHeader(t *testing.T) {
	handler := TokenAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run without a token")
	}))

	rec, req := authRequest(t, "")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if msg := decodeMsg(t, rec); msg != "Missing Authorization Header" {
		t.Errorf("unexpected msg: %q", msg)
	}
}

func TestTokenAuth_ValidToken(t *testing.T) {
	token, err := crypto.GenerateToken(42, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var gotUserID int64
	handler := TokenAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		if !ok {
			t.Fatal("expected user id in context")
		}
		gotUserID = id
	}))

	rec, req := authRequest(t, token)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if gotUserID != 42 {
		t.Errorf("expected user id 42, got %d", gotUserID)
	}
}

// The header carries the raw token value; a conventional Bearer prefix makes
// the value unparsable and must be rejected.
func TestTokenAuth_BearerPrefixRejected(t *testing.T) {
	token, err := crypto.GenerateToken(42, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	handler := TokenAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run for a prefixed token")
	}))

	rec, req := authRequest(t, "Bearer "+token)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if msg := decodeMsg(t, rec); msg != "Invalid token" {
		t.Errorf("unexpected msg: %q", msg)
	}
}

func TestTokenAuth_ExpiredToken(t *testing.T) {
	token, err := crypto.GenerateToken(42, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	handler := TokenAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run for an expired token")
	}))

	rec, req := authRequest(t, token)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if msg := decodeMsg(t, rec); msg != "Token has expired" {
		t.Errorf("unexpected msg: %q", msg)
	}
}
