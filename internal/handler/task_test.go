package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/taskman/taskman-go/internal/middleware"
)

// taskRequest builds a request carrying an authenticated user and a task_id
// route parameter, as the router and auth middleware would.
func taskRequest(method, taskID, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, "/tasks/"+taskID, nil)
	} else {
		r = httptest.NewRequest(method, "/tasks/"+taskID, strings.NewReader(body))
	}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("task_id", taskID)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(middleware.WithUserID(ctx, 1))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	return body
}

func TestHandleGet_Unauthenticated(t *testing.T) {
	h := NewTaskHandler(nil)

	rec := httptest.NewRecorder()
	h.HandleGet(rec, httptest.NewRequest(http.MethodGet, "/tasks/1", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["msg"] != "Missing Authorization Header" {
		t.Errorf("unexpected body: %v", body)
	}
}

// A non-numeric id can never name a task, so it reads like an unmapped route.
func TestHandleGet_NonNumericID(t *testing.T) {
	h := NewTaskHandler(nil)

	rec := httptest.NewRecorder()
	h.HandleGet(rec, taskRequest(http.MethodGet, "abc", ""))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Resource not found" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestHandleDelete_NonNumericID(t *testing.T) {
	h := NewTaskHandler(nil)

	rec := httptest.NewRecorder()
	h.HandleDelete(rec, taskRequest(http.MethodDelete, "0", ""))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Resource not found" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestHandleUpdate_WrongTypedField(t *testing.T) {
	h := NewTaskHandler(nil)

	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, taskRequest(http.MethodPut, "1", `{"completed": "notabool"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["msg"] != "Invalid input" {
		t.Errorf("unexpected msg: %v", body["msg"])
	}
	fields, ok := body["errors"].(map[string]any)
	if !ok {
		t.Fatalf("expected field errors, got %v", body)
	}
	if _, ok := fields["completed"]; !ok {
		t.Errorf("expected an error for completed, got %v", fields)
	}
}

func TestHandleCreate_MalformedBody(t *testing.T) {
	h := NewTaskHandler(nil)

	r := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader("{not json"))
	r = r.WithContext(middleware.WithUserID(r.Context(), 1))

	rec := httptest.NewRecorder()
	h.HandleCreate(rec, r)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["msg"] != "Invalid request body" {
		t.Errorf("unexpected body: %v", body)
	}
}
