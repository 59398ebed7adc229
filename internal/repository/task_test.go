package repository

import "testing"

func TestNewTaskRepository(t *testing.T) {
	repo := NewTaskRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil TaskRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestTaskSentinelError(t *testing.T) {
	if ErrTaskNotFound.Error() != "task not found" {
		t.Fatalf("unexpected error message: %s", ErrTaskNotFound.Error())
	}
}
