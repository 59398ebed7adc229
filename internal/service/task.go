package service

import (
	"context"
	"time"

	"github.com/taskman/taskman-go/internal/model"
	"github.com/taskman/taskman-go/internal/repository"
	"github.com/taskman/taskman-go/internal/validate"
)

// ErrTaskNotFound is re-exported so handlers map store misses without
// importing the repository package.
var ErrTaskNotFound = repository.ErrTaskNotFound

// ListOptions carries the query parameters of a task list request.
// A nil Completed means no completion filter.
type ListOptions struct {
	Completed *bool
	Page      int
	PerPage   int
}

// TaskService handles task business logic. Every operation takes the
// authenticated user's id as its scoping key; ownership is never read from
// the request payload.
type TaskService struct {
	repo            *repository.TaskRepository
	defaultPageSize int
	maxPageSize     int
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo *repository.TaskRepository, defaultPageSize, maxPageSize int) *TaskService {
	return &TaskService{
		repo:            repo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// Create stores a new task for the user. New tasks always start incomplete.
func (s *TaskService) Create(ctx context.Context, userID int64, req model.CreateTaskRequest) (*model.Task, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &model.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Get returns the user's task with the given id.
func (s *TaskService) Get(ctx context.Context, userID, taskID int64) (*model.Task, error) {
	return s.repo.GetByID(ctx, userID, taskID)
}

// Update applies a partial update: only fields present in the request change,
// absent fields keep their prior values.
func (s *TaskService) Update(ctx context.Context, userID, taskID int64, req model.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.repo.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Delete removes the user's task. Deleting an already-deleted task reports
// ErrTaskNotFound, so a repeated delete fails idempotently instead of
// escalating.
func (s *TaskService) Delete(ctx context.Context, userID, taskID int64) error {
	return s.repo.Delete(ctx, userID, taskID)
}

// List returns one page of the user's tasks with pagination metadata.
// Pages are 1-indexed; a page past the end yields an empty item list with
// metadata intact.
func (s *TaskService) List(ctx context.Context, userID int64, opts ListOptions) (model.TaskPage, error) {
	page, perPage := s.normalize(opts.Page, opts.PerPage)

	total, err := s.repo.Count(ctx, userID, opts.Completed)
	if err != nil {
		return model.TaskPage{}, err
	}

	tasks, err := s.repo.List(ctx, userID, opts.Completed, perPage, (page-1)*perPage)
	if err != nil {
		return model.TaskPage{}, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	return model.TaskPage{
		Tasks:       tasks,
		Total:       total,
		Pages:       totalPages(total, perPage),
		CurrentPage: page,
	}, nil
}

// normalize clamps page and page size into their valid ranges.
func (s *TaskService) normalize(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = s.defaultPageSize
	}
	if perPage > s.maxPageSize {
		perPage = s.maxPageSize
	}
	return page, perPage
}

// totalPages returns the number of pages needed for total items, zero when
// there are none.
func totalPages(total int64, perPage int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
