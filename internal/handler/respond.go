package handler

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// msgResponse is the body shape used for domain-level outcomes, matching the
// API contract ({"msg": ...}).
func msgResponse(msg string) map[string]string {
	return map[string]string{"msg": msg}
}

// errorResponse is the body shape used by the global handlers (unmapped
// routes, internal faults).
func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func writeInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
}
