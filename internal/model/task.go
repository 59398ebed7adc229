package model

import "time"

// Task represents a task owned by a single user.
type Task struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Completed   bool      `db:"completed" json:"completed"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CreateTaskRequest represents a task creation payload.
// A completed flag sent on create is accepted and ignored; new tasks always
// start incomplete.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// UpdateTaskRequest represents a partial task update. Pointer fields
// distinguish "absent" (nil, leave unchanged) from an explicit value.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TaskPage is the paginated list envelope returned by GET /tasks.
type TaskPage struct {
	Tasks       []Task `json:"tasks"`
	Total       int64  `json:"total"`
	Pages       int    `json:"pages"`
	CurrentPage int    `json:"current_page"`
}
