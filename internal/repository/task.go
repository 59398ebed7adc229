package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/taskman/taskman-go/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskRepository handles task persistence operations. Every query is scoped
// by the owning user's id, so a task belonging to another user is
// indistinguishable from one that does not exist.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task and sets the generated ID on the task struct.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (user_id, title, description, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		task.UserID, task.Title, task.Description, task.Completed, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetByID retrieves a task by id, scoped to the owning user.
func (r *TaskRepository) GetByID(ctx context.Context, userID, taskID int64) (*model.Task, error) {
	query := `SELECT id, user_id, title, description, completed, created_at, updated_at
		FROM tasks WHERE id = ? AND user_id = ?`

	task := &model.Task{}
	if err := r.db.GetContext(ctx, task, query, taskID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

// Update writes the full task row back, scoped to the owning user. Existence
// is the caller's concern; a prior scoped GetByID establishes it.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, completed = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Completed, task.UpdatedAt, task.ID, task.UserID)
	return err
}

// Delete removes a task, scoped to the owning user. Deleting a task that is
// absent (or owned by someone else) reports ErrTaskNotFound.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, taskID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// List retrieves one page of a user's tasks in insertion order, optionally
// filtered by completion state (nil means no filter).
func (r *TaskRepository) List(ctx context.Context, userID int64, completed *bool, limit, offset int) ([]model.Task, error) {
	query := `SELECT id, user_id, title, description, completed, created_at, updated_at
		FROM tasks WHERE user_id = ?`
	args := []any{userID}

	if completed != nil {
		query += ` AND completed = ?`
		args = append(args, *completed)
	}

	query += ` ORDER BY id LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var tasks []model.Task
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Count returns the number of a user's tasks matching the optional
// completion filter.
func (r *TaskRepository) Count(ctx context.Context, userID int64, completed *bool) (int64, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE user_id = ?`
	args := []any{userID}

	if completed != nil {
		query += ` AND completed = ?`
		args = append(args, *completed)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}

	return total, nil
}
