package repositories

import (
	"context"
	"database/sql"
	"time"

	"travelsuzBack/internal/models"
)

type HotelRepository struct {
	DB       *sql.DB
	Images   *ImageStore
	Comments *CommentStore
}

const hotelColumns = `
        h.id, h.title_uz, h.title_ru, h.title_en,
        h.description_uz, h.description_ru, h.description_en,
        h.address_uz, h.address_ru, h.address_en,
        h.phone_number, h.phone_number_2, h.price, h.region_id, h.location,
        h.views, h.created_at,
        r.name_uz, r.name_ru, r.name_en`

func scanHotel(row interface{ Scan(...interface{}) error }) (models.Hotel, error) {
	var h models.Hotel
	var location []byte
	err := row.Scan(
		&h.ID, &h.Title.Uz, &h.Title.Ru, &h.Title.En,
		&h.Description.Uz, &h.Description.Ru, &h.Description.En,
		&h.Address.Uz, &h.Address.Ru, &h.Address.En,
		&h.PhoneNumber, &h.PhoneNumber2, &h.Price, &h.RegionID, &location,
		&h.Views, &h.CreatedAt,
		&h.RegionName.Uz, &h.RegionName.Ru, &h.RegionName.En,
	)
	if err != nil {
		return models.Hotel{}, err
	}
	h.Location, err = unmarshalLocation(location)
	return h, err
}

func (r *HotelRepository) CreateHotel(ctx context.Context, h models.Hotel) (models.Hotel, error) {
	location, err := marshalLocation(h.Location)
	if err != nil {
		return models.Hotel{}, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Hotel{}, err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO hotels (title_uz, title_ru, title_en,
                            description_uz, description_ru, description_en,
                            address_uz, address_ru, address_en,
                            phone_number, phone_number_2, price, region_id, location, views, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)
    `
	h.CreatedAt = time.Now()
	h.Views = 0
	result, err := tx.ExecContext(ctx, query,
		h.Title.Uz, h.Title.Ru, h.Title.En,
		h.Description.Uz, h.Description.Ru, h.Description.En,
		h.Address.Uz, h.Address.Ru, h.Address.En,
		h.PhoneNumber, h.PhoneNumber2, h.Price, h.RegionID, location, h.CreatedAt,
	)
	if err != nil {
		return models.Hotel{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Hotel{}, err
	}
	h.ID = int(id)

	if err := r.Images.Insert(ctx, tx, h.ID, h.Images); err != nil {
		return models.Hotel{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Hotel{}, err
	}
	return h, nil
}

func (r *HotelRepository) GetHotels(ctx context.Context, regionID int) ([]models.Hotel, error) {
	query := `SELECT` + hotelColumns + ` FROM hotels h JOIN regions r ON h.region_id = r.id`
	args := []interface{}{}
	if regionID > 0 {
		query += ` WHERE h.region_id = ?`
		args = append(args, regionID)
	}
	query += ` ORDER BY h.id`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := []models.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range hotels {
		if hotels[i].Images, err = r.Images.ListByParent(ctx, hotels[i].ID); err != nil {
			return nil, err
		}
	}
	return hotels, nil
}

func (r *HotelRepository) GetHotelByID(ctx context.Context, id int) (models.Hotel, error) {
	query := `SELECT` + hotelColumns + ` FROM hotels h JOIN regions r ON h.region_id = r.id WHERE h.id = ?`
	h, err := scanHotel(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Hotel{}, models.ErrHotelNotFound
	}
	if err != nil {
		return models.Hotel{}, err
	}
	if h.Images, err = r.Images.ListByParent(ctx, h.ID); err != nil {
		return models.Hotel{}, err
	}
	return h, nil
}

// IncrementViews bumps the counter in a single statement so concurrent detail
// reads never lose an update.
func (r *HotelRepository) IncrementViews(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE hotels SET views = views + 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrHotelNotFound
	}
	return nil
}

// UpdateHotel writes the merged row. When replaceImages is set, the existing
// image rows are dropped and the new set inserted in the same transaction.
func (r *HotelRepository) UpdateHotel(ctx context.Context, h models.Hotel, replaceImages bool, images []models.Image) error {
	location, err := marshalLocation(h.Location)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        UPDATE hotels
        SET title_uz = ?, title_ru = ?, title_en = ?,
            description_uz = ?, description_ru = ?, description_en = ?,
            address_uz = ?, address_ru = ?, address_en = ?,
            phone_number = ?, phone_number_2 = ?, price = ?, region_id = ?, location = ?
        WHERE id = ?
    `
	if _, err := tx.ExecContext(ctx, query,
		h.Title.Uz, h.Title.Ru, h.Title.En,
		h.Description.Uz, h.Description.Ru, h.Description.En,
		h.Address.Uz, h.Address.Ru, h.Address.En,
		h.PhoneNumber, h.PhoneNumber2, h.Price, h.RegionID, location, h.ID,
	); err != nil {
		return err
	}

	if replaceImages {
		if err := r.Images.Replace(ctx, tx, h.ID, images); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *HotelRepository) DeleteHotel(ctx context.Context, id int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.Images.DeleteByParent(ctx, tx, id); err != nil {
		return err
	}
	if err := r.Comments.DeleteByParent(ctx, tx, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM hotels WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrHotelNotFound
	}
	return tx.Commit()
}
