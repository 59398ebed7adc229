package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taskman/taskman-go/internal/middleware"
	"github.com/taskman/taskman-go/internal/model"
	"github.com/taskman/taskman-go/internal/service"
	"github.com/taskman/taskman-go/internal/validate"
)

// TaskHandler handles HTTP requests for task operations. The owning user is
// always taken from the verified token in the request context.
type TaskHandler struct {
	service *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{service: svc}
}

// HandleList handles GET /tasks requests.
//
//	@Summary	List the user's tasks, paginated
//	@Tags		tasks
//	@Produce	json
//	@Param		completed	query		string	false	"Filter by completion ('true' or 'false')"
//	@Param		page		query		int		false	"1-indexed page"
//	@Param		per_page	query		int		false	"Page size"
//	@Success	200			{object}	model.TaskPage
//	@Failure	401			{object}	map[string]string
//	@Router		/tasks [get]
func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, msgResponse("Missing Authorization Header"))
		return
	}

	opts := service.ListOptions{
		Page:    queryInt(r, "page"),
		PerPage: queryInt(r, "per_page"),
	}

	// Tri-state filter: absent means no filter, any present value compares
	// case-insensitively against "true".
	if v := r.URL.Query().Get("completed"); r.URL.Query().Has("completed") && v != "" {
		completed := strings.EqualFold(v, "true")
		opts.Completed = &completed
	}

	page, err := h.service.List(r.Context(), userID, opts)
	if err != nil {
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// HandleGet handles GET /tasks/{task_id} requests.
//
//	@Summary	Fetch a single task
//	@Tags		tasks
//	@Produce	json
//	@Param		task_id	path		int	true	"Task id"
//	@Success	200		{object}	model.Task
//	@Failure	404		{object}	map[string]string
//	@Router		/tasks/{task_id} [get]
func (h *TaskHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, msgResponse("Missing Authorization Header"))
		return
	}

	taskID, ok := taskIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse("Resource not found"))
		return
	}

	task, err := h.service.Get(r.Context(), userID, taskID)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeJSON(w, http.StatusNotFound, msgResponse("Task not found"))
			return
		}
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// HandleCreate handles POST /tasks requests.
//
//	@Summary	Create a task
//	@Tags		tasks
//	@Accept		json
//	@Produce	json
//	@Param		body	body		model.CreateTaskRequest	true	"Task fields"
//	@Success	201		{object}	model.Task
//	@Failure	400		{object}	map[string]string
//	@Router		/tasks [post]
func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, msgResponse("Missing Authorization Header"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateTaskRequest
	if err := validate.DefaultPolicy.DecodeJSON(r.Body, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	task, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		var fields validate.FieldErrors
		if errors.As(err, &fields) {
			writeValidationError(w, fields)
			return
		}
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// HandleUpdate handles PUT /tasks/{task_id} requests. Only fields present in
// the body are applied.
//
//	@Summary	Partially update a task
//	@Tags		tasks
//	@Accept		json
//	@Produce	json
//	@Param		task_id	path		int						true	"Task id"
//	@Param		body	body		model.UpdateTaskRequest	true	"Fields to change"
//	@Success	200		{object}	model.Task
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/tasks/{task_id} [put]
func (h *TaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, msgResponse("Missing Authorization Header"))
		return
	}

	taskID, ok := taskIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse("Resource not found"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateTaskRequest
	if err := validate.DefaultPolicy.DecodeJSON(r.Body, &req); err != nil {
		writeValidationError(w, err)
		return
	}

	task, err := h.service.Update(r.Context(), userID, taskID, req)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeJSON(w, http.StatusNotFound, msgResponse("Task not found"))
			return
		}
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// HandleDelete handles DELETE /tasks/{task_id} requests.
//
//	@Summary	Delete a task
//	@Tags		tasks
//	@Produce	json
//	@Param		task_id	path		int	true	"Task id"
//	@Success	200		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/tasks/{task_id} [delete]
func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, msgResponse("Missing Authorization Header"))
		return
	}

	taskID, ok := taskIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse("Resource not found"))
		return
	}

	if err := h.service.Delete(r.Context(), userID, taskID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeJSON(w, http.StatusNotFound, msgResponse("Task not found"))
			return
		}
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, msgResponse("Task deleted"))
}

// taskIDParam parses the task_id path parameter. A non-numeric id can never
// match a task, so callers report it like an unmapped route.
func taskIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "task_id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// queryInt returns the named query parameter as an int, or zero when absent
// or not numeric. Zero is below every valid value, so the service applies
// its default.
func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return n
}

func writeValidationError(w http.ResponseWriter, err error) {
	var fields validate.FieldErrors
	if errors.As(err, &fields) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"msg":    "Invalid input",
			"errors": fields,
		})
		return
	}
	writeJSON(w, http.StatusBadRequest, msgResponse("Invalid request body"))
}
