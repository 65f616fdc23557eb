package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"travelsuzBack/internal/models"
)

func newCommentStore(t *testing.T) (*CommentStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &CommentStore{DB: db, Table: "travel_comments", Parent: "travel_id"}, mock
}

func TestCommentCreate(t *testing.T) {
	store, mock := newCommentStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO travel_comments (travel_id, text, created_at) VALUES (?, ?, ?)`)).
		WithArgs(9, "Ajoyib joy!", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(15, 1))

	created, err := store.Create(context.Background(), models.Comment{ParentID: 9, Text: "Ajoyib joy!"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 15 {
		t.Errorf("ID = %d, want 15", created.ID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCommentListNewestFirst(t *testing.T) {
	store, mock := newCommentStore(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "travel_id", "text", "created_at"}).
		AddRow(2, 9, "newer", now).
		AddRow(1, 9, "older", now.Add(-time.Hour))

	mock.ExpectQuery(`ORDER BY created_at DESC, id DESC`).
		WithArgs(9).
		WillReturnRows(rows)

	comments, err := store.ListByParent(context.Background(), 9)
	if err != nil {
		t.Fatalf("ListByParent: %v", err)
	}
	if len(comments) != 2 || comments[0].Text != "newer" {
		t.Errorf("comments = %+v, want newest first", comments)
	}
}
