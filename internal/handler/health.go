package handler

import "net/http"

const (
	// APIVersion is reported by the health endpoint and the swagger spec.
	APIVersion     = "1.0.0"
	apiDescription = "A multi-user task management REST API"
)

// HealthResponse is the body of the root health endpoint.
type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Environment string `json:"environment"`
}

// HealthHandler reports service liveness and build metadata.
type HealthHandler struct {
	env string
}

// NewHealthHandler creates a new HealthHandler for the given environment name.
func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env}
}

// HandleHealth handles GET / requests.
//
//	@Summary	Health check
//	@Tags		meta
//	@Produce	json
//	@Success	200	{object}	handler.HealthResponse
//	@Router		/ [get]
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		Message:     "Task Manager API is running!",
		Version:     APIVersion,
		Description: apiDescription,
		Environment: h.env,
	})
}
