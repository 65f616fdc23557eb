package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"travelsuzBack/internal/models"
	"travelsuzBack/internal/repositories"
	"travelsuzBack/internal/services"
)

func newUserHandler(t *testing.T) (*UserHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &UserHandler{
		Service: &services.UserService{
			UserRepo:   &repositories.UserRepository{DB: db},
			AccessTTL:  time.Hour,
			RefreshTTL: 24 * time.Hour,
		},
	}, mock
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("WriteField(%s): %v", key, err)
		}
	}
	writer.Close()
	return &buf, writer.FormDataContentType()
}

func authedRequest(method, target string, body *bytes.Buffer, contentType string, userID int, role string) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(req.Context(), "user_id", userID)
	ctx = context.WithValue(ctx, "role", role)
	return req.WithContext(ctx)
}

func userRow(id int, username string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "username", "email", "password", "first_name", "last_name",
		"phone_number", "avatar_path", "is_staff", "created_at", "updated_at",
	}).AddRow(id, username, "", "hash", "", "", "", nil, false, now, nil)
}

func TestUpdateUserForbiddenForNonStaffTargeting(t *testing.T) {
	h, mock := newUserHandler(t)

	req := authedRequest(http.MethodPut, "/users/update?id=8", nil, "", 5, models.RoleUser)
	rec := httptest.NewRecorder()
	h.UpdateUser(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdateUserStaffTargetsOtherAccount(t *testing.T) {
	h, mock := newUserHandler(t)

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \?`).
		WithArgs(8).
		WillReturnRows(userRow(8, "oldname"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users WHERE username = ? AND id != ?`)).
		WithArgs("newname", 8).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`UPDATE users`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \?`).
		WithArgs(8).
		WillReturnRows(userRow(8, "newname"))

	body, contentType := multipartBody(t, map[string]string{"username": "newname"})
	req := authedRequest(http.MethodPut, "/users/update?id=8", body, contentType, 1, models.RoleAdmin)
	rec := httptest.NewRecorder()
	h.UpdateUser(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var updated models.User
	if err := json.NewDecoder(rec.Body).Decode(&updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if updated.ID != 8 || updated.Username != "newname" {
		t.Errorf("updated = %+v, want target account with new username", updated)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdateUserSelfWithoutIDParam(t *testing.T) {
	h, mock := newUserHandler(t)

	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \?`).
		WithArgs(5).
		WillReturnRows(userRow(5, "aziz"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users WHERE username = ? AND id != ?`)).
		WithArgs("aziz", 5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`UPDATE users`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \?`).
		WithArgs(5).
		WillReturnRows(userRow(5, "aziz"))

	body, contentType := multipartBody(t, map[string]string{"first_name": "Aziz"})
	req := authedRequest(http.MethodPatch, "/users/update", body, contentType, 5, models.RoleUser)
	rec := httptest.NewRecorder()
	h.UpdateUser(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
