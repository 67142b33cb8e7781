package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTestAttemptRepo(t *testing.T) (*attemptRepository, sqlmock.Sqlmock, *sql.DB) {
	wrapped, mock, db := newTestDB(t)
	repo := &attemptRepository{
		db:     wrapped,
		logger: wrapped.logger,
	}
	return repo, mock, db
}

func TestFindAttempt_Success(t *testing.T) {
	repo, mock, db := newTestAttemptRepo(t)
	defer db.Close()

	ctx := context.Background()

	last := time.Now()
	rows := sqlmock.
		NewRows([]string{"username", "attempts", "last_attempt"}).
		AddRow("alice", 2, last)

	mock.ExpectQuery("SELECT username").
		WithArgs("alice").
		WillReturnRows(rows)

	attempt, err := repo.FindAttempt(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempt.Attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempt.Attempts)
	}
}

func TestFindAttempt_NotFound(t *testing.T) {
	repo, mock, db := newTestAttemptRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT username").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindAttempt(ctx, "ghost")
	if !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("expected ErrAttemptNotFound, got %v", err)
	}
}

func TestRecordFailure_Upsert(t *testing.T) {
	repo, mock, db := newTestAttemptRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO login_attempts").
		WithArgs("alice", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.RecordFailure(ctx, "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecordFailure_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestAttemptRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO login_attempts").
		WillReturnError(errors.New("db network error"))

	err := repo.RecordFailure(ctx, "alice")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestResetWindow_Success(t *testing.T) {
	repo, mock, db := newTestAttemptRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE login_attempts").
		WithArgs(1, "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ResetWindow(ctx, "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteAttempt_Idempotent(t *testing.T) {
	repo, mock, db := newTestAttemptRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM login_attempts").
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteAttempt(ctx, "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
