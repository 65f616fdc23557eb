package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"travelsuzBack/internal/models"
	"travelsuzBack/internal/repositories"
	"travelsuzBack/internal/services"
)

func newHotelHandler(t *testing.T) (*HotelHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := &repositories.HotelRepository{
		DB:       db,
		Images:   &repositories.ImageStore{DB: db, Table: "hotel_images", Parent: "hotel_id"},
		Comments: &repositories.CommentStore{DB: db, Table: "hotel_comments", Parent: "hotel_id"},
	}
	return &HotelHandler{
		Service:  &services.HotelService{HotelRepo: repo},
		Comments: &services.CommentService{Store: repo.Comments},
	}, mock
}

func hotelRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title_uz", "title_ru", "title_en",
		"description_uz", "description_ru", "description_en",
		"address_uz", "address_ru", "address_en",
		"phone_number", "phone_number_2", "price", "region_id", "location",
		"views", "created_at",
		"name_uz", "name_ru", "name_en",
	}).AddRow(
		7, "Registon mehmonxonasi", "", "Registan Hotel",
		"Tavsif", "", "",
		"Registon 1", "", "",
		"+998901234567", "", "250000", 2, []byte(`{"latitude":39.654,"longitude":66.975}`),
		13, time.Now(),
		"Samarqand", "Самарканд", "Samarkand",
	)
}

func TestGetHotelByIDIncrementsViewsAndLocalizes(t *testing.T) {
	h, mock := newHotelHandler(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE hotels SET views = views + 1 WHERE id = ?`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT .* FROM hotels h JOIN regions r`).
		WithArgs(7).
		WillReturnRows(hotelRow())
	mock.ExpectQuery(`SELECT id, name, path, type FROM hotel_images`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "path", "type"}).
			AddRow(1, "a.jpg", "/uploads/hotels/a.jpg", "image/jpeg"))

	req := httptest.NewRequest(http.MethodGet, "/hotels/7?:id=7&lang=en", nil)
	rec := httptest.NewRecorder()
	h.GetHotelByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var view models.HotelView
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view.Title != "Registan Hotel" {
		t.Errorf("Title = %q, want english variant", view.Title)
	}
	if view.Region != "Samarkand" {
		t.Errorf("Region = %q, want english variant", view.Region)
	}
	if view.Views != 13 {
		t.Errorf("Views = %d, want 13", view.Views)
	}
	if len(view.Images) != 1 || view.Images[0] != "/uploads/hotels/a.jpg" {
		t.Errorf("Images = %v", view.Images)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetHotelByIDNotFound(t *testing.T) {
	h, mock := newHotelHandler(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE hotels SET views = views + 1 WHERE id = ?`)).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest(http.MethodGet, "/hotels/99?:id=99", nil)
	rec := httptest.NewRecorder()
	h.GetHotelByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Hotel not found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestCreateHotelCommentOnMissingHotel(t *testing.T) {
	h, mock := newHotelHandler(t)

	mock.ExpectExec(`INSERT INTO hotel_comments`).
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})

	body := strings.NewReader(`{"text":"Zo'r!"}`)
	req := httptest.NewRequest(http.MethodPost, "/hotels/99/comments?:id=99", body)
	rec := httptest.NewRecorder()
	h.CreateHotelComment(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for missing parent", rec.Code)
	}
}

func TestListHotelsLocalized(t *testing.T) {
	h, mock := newHotelHandler(t)

	mock.ExpectQuery(`SELECT .* FROM hotels h JOIN regions r`).
		WillReturnRows(hotelRow())
	mock.ExpectQuery(`SELECT id, name, path, type FROM hotel_images`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "path", "type"}))

	req := httptest.NewRequest(http.MethodGet, "/hotels?lang=ru", nil)
	rec := httptest.NewRecorder()
	h.GetHotels(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var views []models.HotelView
	if err := json.NewDecoder(rec.Body).Decode(&views); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("len = %d, want 1", len(views))
	}
	if views[0].Title != "Registon mehmonxonasi" {
		t.Errorf("Title = %q, want uz fallback for missing ru", views[0].Title)
	}
	if views[0].Region != "Самарканд" {
		t.Errorf("Region = %q, want ru variant", views[0].Region)
	}
}

func TestCreateHotelRequiresTitle(t *testing.T) {
	h, mock := newHotelHandler(t)

	body, contentType := multipartBody(t, map[string]string{"phone_number": "+998901234567"})
	req := httptest.NewRequest(http.MethodPost, "/hotels", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.CreateHotel(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for missing title_uz", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "title_uz") {
		t.Errorf("body = %s, want the missing field named", rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetHotelCommentsUsesEntityKey(t *testing.T) {
	h, mock := newHotelHandler(t)

	mock.ExpectQuery(`ORDER BY created_at DESC, id DESC`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "text", "created_at"}).
			AddRow(3, 7, "Zo'r!", time.Now()))

	req := httptest.NewRequest(http.MethodGet, "/hotels/7/comments?:id=7", nil)
	rec := httptest.NewRecorder()
	h.GetHotelComments(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var comments []map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&comments); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("len = %d, want 1", len(comments))
	}
	if _, ok := comments[0]["hotel_id"]; !ok {
		t.Errorf("comment keys = %v, want hotel_id", comments[0])
	}
	if _, ok := comments[0]["parent_id"]; ok {
		t.Error("generic parent_id leaked into the response")
	}
}
