package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"travelsuzBack/internal/models"
)

func newHotelRepo(t *testing.T) (*HotelRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := &HotelRepository{
		DB:       db,
		Images:   &ImageStore{DB: db, Table: "hotel_images", Parent: "hotel_id"},
		Comments: &CommentStore{DB: db, Table: "hotel_comments", Parent: "hotel_id"},
	}
	return repo, mock
}

func TestIncrementViews(t *testing.T) {
	repo, mock := newHotelRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE hotels SET views = views + 1 WHERE id = ?`)).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.IncrementViews(context.Background(), 5); err != nil {
		t.Fatalf("IncrementViews: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestIncrementViewsNotFound(t *testing.T) {
	repo, mock := newHotelRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE hotels SET views = views + 1 WHERE id = ?`)).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.IncrementViews(context.Background(), 99); !errors.Is(err, models.ErrHotelNotFound) {
		t.Fatalf("IncrementViews = %v, want ErrHotelNotFound", err)
	}
}

func TestCreateHotelInsertsImagesInTx(t *testing.T) {
	repo, mock := newHotelRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO hotels`).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO hotel_images (hotel_id, name, path, type) VALUES (?, ?, ?, ?)`)).
		WithArgs(42, "a.jpg", "/uploads/hotels/a.jpg", "image/jpeg").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	hotel := models.Hotel{
		Title:    models.LocalizedText{Uz: "Mehmonxona"},
		Price:    "150000",
		RegionID: 1,
		Images:   []models.Image{{Name: "a.jpg", Path: "/uploads/hotels/a.jpg", Type: "image/jpeg"}},
	}
	created, err := repo.CreateHotel(context.Background(), hotel)
	if err != nil {
		t.Fatalf("CreateHotel: %v", err)
	}
	if created.ID != 42 {
		t.Errorf("ID = %d, want 42", created.ID)
	}
	if created.Views != 0 {
		t.Errorf("Views = %d, want 0", created.Views)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdateHotelReplacesImagesInTx(t *testing.T) {
	repo, mock := newHotelRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE hotels`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM hotel_images WHERE hotel_id = ?`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO hotel_images (hotel_id, name, path, type) VALUES (?, ?, ?, ?)`)).
		WithArgs(7, "new.jpg", "/uploads/hotels/new.jpg", "image/jpeg").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	hotel := models.Hotel{ID: 7, Title: models.LocalizedText{Uz: "Mehmonxona"}, Price: "150000", RegionID: 1}
	images := []models.Image{{Name: "new.jpg", Path: "/uploads/hotels/new.jpg", Type: "image/jpeg"}}
	if err := repo.UpdateHotel(context.Background(), hotel, true, images); err != nil {
		t.Fatalf("UpdateHotel: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdateHotelKeepsImagesWhenNotReplacing(t *testing.T) {
	repo, mock := newHotelRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE hotels`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	hotel := models.Hotel{ID: 7, Price: "150000", RegionID: 1}
	if err := repo.UpdateHotel(context.Background(), hotel, false, nil); err != nil {
		t.Fatalf("UpdateHotel: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDeleteHotelCascadesChildren(t *testing.T) {
	repo, mock := newHotelRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM hotel_images WHERE hotel_id = ?`)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM hotel_comments WHERE hotel_id = ?`)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM hotels WHERE id = ?`)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteHotel(context.Background(), 3); err != nil {
		t.Fatalf("DeleteHotel: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDeleteHotelNotFound(t *testing.T) {
	repo, mock := newHotelRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM hotel_images WHERE hotel_id = ?`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM hotel_comments WHERE hotel_id = ?`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM hotels WHERE id = ?`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := repo.DeleteHotel(context.Background(), 99); !errors.Is(err, models.ErrHotelNotFound) {
		t.Fatalf("DeleteHotel = %v, want ErrHotelNotFound", err)
	}
}
