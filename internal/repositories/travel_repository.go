package repositories

import (
	"context"
	"database/sql"
	"time"

	"travelsuzBack/internal/models"
)

type TravelRepository struct {
	DB       *sql.DB
	Images   *ImageStore
	Comments *CommentStore
}

const travelColumns = `
        t.id, t.title_uz, t.title_ru, t.title_en,
        t.description_uz, t.description_ru, t.description_en,
        t.address_uz, t.address_ru, t.address_en,
        t.place_type, t.ticket_price,
        t.region_id, t.location, t.views, t.created_at,
        r.name_uz, r.name_ru, r.name_en`

func scanTravel(row interface{ Scan(...interface{}) error }) (models.Travel, error) {
	var tr models.Travel
	var location []byte
	err := row.Scan(
		&tr.ID, &tr.Title.Uz, &tr.Title.Ru, &tr.Title.En,
		&tr.Description.Uz, &tr.Description.Ru, &tr.Description.En,
		&tr.Address.Uz, &tr.Address.Ru, &tr.Address.En,
		&tr.PlaceType, &tr.TicketPrice,
		&tr.RegionID, &location, &tr.Views, &tr.CreatedAt,
		&tr.RegionName.Uz, &tr.RegionName.Ru, &tr.RegionName.En,
	)
	if err != nil {
		return models.Travel{}, err
	}
	tr.Location, err = unmarshalLocation(location)
	return tr, err
}

func (r *TravelRepository) CreateTravel(ctx context.Context, tr models.Travel) (models.Travel, error) {
	location, err := marshalLocation(tr.Location)
	if err != nil {
		return models.Travel{}, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Travel{}, err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO travels (title_uz, title_ru, title_en,
                             description_uz, description_ru, description_en,
                             address_uz, address_ru, address_en,
                             place_type, ticket_price,
                             region_id, location, views, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)
    `
	tr.CreatedAt = time.Now()
	tr.Views = 0
	result, err := tx.ExecContext(ctx, query,
		tr.Title.Uz, tr.Title.Ru, tr.Title.En,
		tr.Description.Uz, tr.Description.Ru, tr.Description.En,
		tr.Address.Uz, tr.Address.Ru, tr.Address.En,
		tr.PlaceType, tr.TicketPrice,
		tr.RegionID, location, tr.CreatedAt,
	)
	if err != nil {
		return models.Travel{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Travel{}, err
	}
	tr.ID = int(id)

	if err := r.Images.Insert(ctx, tx, tr.ID, tr.Images); err != nil {
		return models.Travel{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Travel{}, err
	}
	return tr, nil
}

func (r *TravelRepository) GetTravels(ctx context.Context, regionID int) ([]models.Travel, error) {
	query := `SELECT` + travelColumns + ` FROM travels t JOIN regions r ON t.region_id = r.id`
	args := []interface{}{}
	if regionID > 0 {
		query += ` WHERE t.region_id = ?`
		args = append(args, regionID)
	}
	query += ` ORDER BY t.id`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	travels := []models.Travel{}
	for rows.Next() {
		tr, err := scanTravel(rows)
		if err != nil {
			return nil, err
		}
		travels = append(travels, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range travels {
		if travels[i].Images, err = r.Images.ListByParent(ctx, travels[i].ID); err != nil {
			return nil, err
		}
	}
	return travels, nil
}

func (r *TravelRepository) GetTravelByID(ctx context.Context, id int) (models.Travel, error) {
	query := `SELECT` + travelColumns + ` FROM travels t JOIN regions r ON t.region_id = r.id WHERE t.id = ?`
	tr, err := scanTravel(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Travel{}, models.ErrTravelNotFound
	}
	if err != nil {
		return models.Travel{}, err
	}
	if tr.Images, err = r.Images.ListByParent(ctx, tr.ID); err != nil {
		return models.Travel{}, err
	}
	return tr, nil
}

func (r *TravelRepository) IncrementViews(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE travels SET views = views + 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrTravelNotFound
	}
	return nil
}

func (r *TravelRepository) UpdateTravel(ctx context.Context, tr models.Travel, replaceImages bool, images []models.Image) error {
	location, err := marshalLocation(tr.Location)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        UPDATE travels
        SET title_uz = ?, title_ru = ?, title_en = ?,
            description_uz = ?, description_ru = ?, description_en = ?,
            address_uz = ?, address_ru = ?, address_en = ?,
            place_type = ?, ticket_price = ?,
            region_id = ?, location = ?
        WHERE id = ?
    `
	if _, err := tx.ExecContext(ctx, query,
		tr.Title.Uz, tr.Title.Ru, tr.Title.En,
		tr.Description.Uz, tr.Description.Ru, tr.Description.En,
		tr.Address.Uz, tr.Address.Ru, tr.Address.En,
		tr.PlaceType, tr.TicketPrice,
		tr.RegionID, location, tr.ID,
	); err != nil {
		return err
	}

	if replaceImages {
		if err := r.Images.Replace(ctx, tx, tr.ID, images); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *TravelRepository) DeleteTravel(ctx context.Context, id int) error {
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
	result, err := tx.ExecContext(ctx, `DELETE FROM travels WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrTravelNotFound
	}
	return tx.Commit()
}
