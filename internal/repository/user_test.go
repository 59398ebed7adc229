package repository

import (
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestNewUserRepository(t *testing.T) {
	repo := NewUserRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil UserRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestUserSentinelErrors(t *testing.T) {
	if ErrUserNotFound.Error() != "user not found" {
		t.Fatalf("unexpected error message: %s", ErrUserNotFound.Error())
	}
	if ErrDuplicateUsername.Error() != "username already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateUsername.Error())
	}
}

func TestIsDuplicateEntry(t *testing.T) {
	if isDuplicateEntry(nil) {
		t.Fatal("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntry(ErrUserNotFound) {
		t.Fatal("a sentinel error should not be a duplicate entry error")
	}
	if !isDuplicateEntry(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice'"}) {
		t.Fatal("MySQL error 1062 should be a duplicate entry error")
	}
	if isDuplicateEntry(&mysql.MySQLError{Number: 1452, Message: "foreign key fails"}) {
		t.Fatal("other MySQL errors should not be duplicate entry errors")
	}
}
