package repositories

import (
	"context"
	"database/sql"
	"time"

	"travelsuzBack/internal/models"
)

type RestaurantRepository struct {
	DB       *sql.DB
	Images   *ImageStore
	Comments *CommentStore
}

const restaurantColumns = `
        t.id, t.name_uz, t.name_ru, t.name_en,
        t.description_uz, t.description_ru, t.description_en,
        t.address_uz, t.address_ru, t.address_en,
        t.category_uz, t.category_ru, t.category_en,
        t.price_range_uz, t.price_range_ru, t.price_range_en,
        t.phone_number, t.opening_time, t.closing_time,
        t.region_id, t.location, t.views, t.created_at,
        r.name_uz, r.name_ru, r.name_en`

func scanRestaurant(row interface{ Scan(...interface{}) error }) (models.Restaurant, error) {
	var rest models.Restaurant
	var location []byte
	err := row.Scan(
		&rest.ID, &rest.Name.Uz, &rest.Name.Ru, &rest.Name.En,
		&rest.Description.Uz, &rest.Description.Ru, &rest.Description.En,
		&rest.Address.Uz, &rest.Address.Ru, &rest.Address.En,
		&rest.Category.Uz, &rest.Category.Ru, &rest.Category.En,
		&rest.PriceRange.Uz, &rest.PriceRange.Ru, &rest.PriceRange.En,
		&rest.PhoneNumber, &rest.OpeningTime, &rest.ClosingTime,
		&rest.RegionID, &location, &rest.Views, &rest.CreatedAt,
		&rest.RegionName.Uz, &rest.RegionName.Ru, &rest.RegionName.En,
	)
	if err != nil {
		return models.Restaurant{}, err
	}
	rest.Location, err = unmarshalLocation(location)
	return rest, err
}

func (r *RestaurantRepository) CreateRestaurant(ctx context.Context, rest models.Restaurant) (models.Restaurant, error) {
	location, err := marshalLocation(rest.Location)
	if err != nil {
		return models.Restaurant{}, err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Restaurant{}, err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO restaurants (name_uz, name_ru, name_en,
                                 description_uz, description_ru, description_en,
                                 address_uz, address_ru, address_en,
                                 category_uz, category_ru, category_en,
                                 price_range_uz, price_range_ru, price_range_en,
                                 phone_number, opening_time, closing_time,
                                 region_id, location, views, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)
    `
	rest.CreatedAt = time.Now()
	rest.Views = 0
	result, err := tx.ExecContext(ctx, query,
		rest.Name.Uz, rest.Name.Ru, rest.Name.En,
		rest.Description.Uz, rest.Description.Ru, rest.Description.En,
		rest.Address.Uz, rest.Address.Ru, rest.Address.En,
		rest.Category.Uz, rest.Category.Ru, rest.Category.En,
		rest.PriceRange.Uz, rest.PriceRange.Ru, rest.PriceRange.En,
		rest.PhoneNumber, rest.OpeningTime, rest.ClosingTime,
		rest.RegionID, location, rest.CreatedAt,
	)
	if err != nil {
		return models.Restaurant{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Restaurant{}, err
	}
	rest.ID = int(id)

	if err := r.Images.Insert(ctx, tx, rest.ID, rest.Images); err != nil {
		return models.Restaurant{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Restaurant{}, err
	}
	return rest, nil
}

func (r *RestaurantRepository) GetRestaurants(ctx context.Context, regionID int) ([]models.Restaurant, error) {
	query := `SELECT` + restaurantColumns + ` FROM restaurants t JOIN regions r ON t.region_id = r.id`
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

	restaurants := []models.Restaurant{}
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range restaurants {
		if restaurants[i].Images, err = r.Images.ListByParent(ctx, restaurants[i].ID); err != nil {
			return nil, err
		}
	}
	return restaurants, nil
}

func (r *RestaurantRepository) GetRestaurantByID(ctx context.Context, id int) (models.Restaurant, error) {
	query := `SELECT` + restaurantColumns + ` FROM restaurants t JOIN regions r ON t.region_id = r.id WHERE t.id = ?`
	rest, err := scanRestaurant(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Restaurant{}, models.ErrRestaurantNotFound
	}
	if err != nil {
		return models.Restaurant{}, err
	}
	if rest.Images, err = r.Images.ListByParent(ctx, rest.ID); err != nil {
		return models.Restaurant{}, err
	}
	return rest, nil
}

func (r *RestaurantRepository) IncrementViews(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE restaurants SET views = views + 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrRestaurantNotFound
	}
	return nil
}

func (r *RestaurantRepository) UpdateRestaurant(ctx context.Context, rest models.Restaurant, replaceImages bool, images []models.Image) error {
	location, err := marshalLocation(rest.Location)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        UPDATE restaurants
        SET name_uz = ?, name_ru = ?, name_en = ?,
            description_uz = ?, description_ru = ?, description_en = ?,
            address_uz = ?, address_ru = ?, address_en = ?,
            category_uz = ?, category_ru = ?, category_en = ?,
            price_range_uz = ?, price_range_ru = ?, price_range_en = ?,
            phone_number = ?, opening_time = ?, closing_time = ?,
            region_id = ?, location = ?
        WHERE id = ?
    `
	if _, err := tx.ExecContext(ctx, query,
		rest.Name.Uz, rest.Name.Ru, rest.Name.En,
		rest.Description.Uz, rest.Description.Ru, rest.Description.En,
		rest.Address.Uz, rest.Address.Ru, rest.Address.En,
		rest.Category.Uz, rest.Category.Ru, rest.Category.En,
		rest.PriceRange.Uz, rest.PriceRange.Ru, rest.PriceRange.En,
		rest.PhoneNumber, rest.OpeningTime, rest.ClosingTime,
		rest.RegionID, location, rest.ID,
	); err != nil {
		return err
	}

	if replaceImages {
		if err := r.Images.Replace(ctx, tx, rest.ID, images); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *RestaurantRepository) DeleteRestaurant(ctx context.Context, id int) error {
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
	result, err := tx.ExecContext(ctx, `DELETE FROM restaurants WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrRestaurantNotFound
	}
	return tx.Commit()
}
