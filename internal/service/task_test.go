package service

import (
	"context"
	"errors"
	"testing"

	"github.com/taskman/taskman-go/internal/model"
	"github.com/taskman/taskman-go/internal/repository"
	"github.com/taskman/taskman-go/internal/validate"
)

func newTestTaskService() *TaskService {
	return NewTaskService(repository.NewTaskRepository(nil), 10, 100)
}

func TestCreate_MissingTitle(t *testing.T) {
	svc := newTestTaskService()

	_, err := svc.Create(context.Background(), 1, model.CreateTaskRequest{
		Description: "no title here",
	})

	var fields validate.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fields["title"]; !ok {
		t.Errorf("expected a title error, got %v", fields)
	}
}

func TestCreate_EmptyTitle(t *testing.T) {
	svc := newTestTaskService()

	if _, err := svc.Create(context.Background(), 1, model.CreateTaskRequest{Title: ""}); err == nil {
		t.Error("empty title should be rejected before touching the store")
	}
}

func TestNormalize(t *testing.T) {
	svc := newTestTaskService()

	cases := []struct {
		page, perPage         int
		wantPage, wantPerPage int
	}{
		{1, 5, 1, 5},
		{0, 0, 1, 10},
		{-3, -1, 1, 10},
		{2, 500, 2, 100},
		{7, 100, 7, 100},
	}

	for _, c := range cases {
		page, perPage := svc.normalize(c.page, c.perPage)
		if page != c.wantPage || perPage != c.wantPerPage {
			t.Errorf("normalize(%d, %d) = (%d, %d), want (%d, %d)",
				c.page, c.perPage, page, perPage, c.wantPage, c.wantPerPage)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{15, 5, 3},
		{16, 5, 4},
	}

	for _, c := range cases {
		if got := totalPages(c.total, c.perPage); got != c.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", c.total, c.perPage, got, c.want)
		}
	}
}
