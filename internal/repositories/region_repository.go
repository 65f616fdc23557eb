package repositories

import (
	"context"
	"database/sql"
	"time"

	"travelsuzBack/internal/models"
)

type RegionRepository struct {
	DB *sql.DB
}

func (r *RegionRepository) CreateRegion(ctx context.Context, region models.Region) (models.Region, error) {
	query := `INSERT INTO regions (name_uz, name_ru, name_en, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	region.CreatedAt = time.Now()
	region.UpdatedAt = &region.CreatedAt
	res, err := r.DB.ExecContext(ctx, query, region.Name.Uz, region.Name.Ru, region.Name.En,
		region.CreatedAt, region.UpdatedAt)
	if err != nil {
		return models.Region{}, err
	}
	id, _ := res.LastInsertId()
	region.ID = int(id)
	return region, nil
}

func (r *RegionRepository) GetRegions(ctx context.Context) ([]models.Region, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name_uz, name_ru, name_en, created_at, updated_at FROM regions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regions := []models.Region{}
	for rows.Next() {
		var region models.Region
		if err := rows.Scan(&region.ID, &region.Name.Uz, &region.Name.Ru, &region.Name.En,
			&region.CreatedAt, &region.UpdatedAt); err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	return regions, rows.Err()
}

func (r *RegionRepository) GetRegionByID(ctx context.Context, id int) (models.Region, error) {
	var region models.Region
	query := `SELECT id, name_uz, name_ru, name_en, created_at, updated_at FROM regions WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&region.ID, &region.Name.Uz, &region.Name.Ru,
		&region.Name.En, &region.CreatedAt, &region.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.Region{}, models.ErrRegionNotFound
	}
	if err != nil {
		return models.Region{}, err
	}
	return region, nil
}

func (r *RegionRepository) UpdateRegion(ctx context.Context, region models.Region) (models.Region, error) {
	query := `UPDATE regions SET name_uz = ?, name_ru = ?, name_en = ?, updated_at = ? WHERE id = ?`
	updatedAt := time.Now()
	region.UpdatedAt = &updatedAt
	_, err := r.DB.ExecContext(ctx, query, region.Name.Uz, region.Name.Ru, region.Name.En,
		region.UpdatedAt, region.ID)
	if err != nil {
		return models.Region{}, err
	}
	return region, nil
}

// DeleteRegion refuses to remove a region that content still references, so
// a region delete can never silently take hotels, restaurants or travels
// down with it.
func (r *RegionRepository) DeleteRegion(ctx context.Context, id int) error {
	var refs int
	query := `
        SELECT (SELECT COUNT(*) FROM hotels WHERE region_id = ?)
             + (SELECT COUNT(*) FROM restaurants WHERE region_id = ?)
             + (SELECT COUNT(*) FROM travels WHERE region_id = ?)
    `
	if err := r.DB.QueryRowContext(ctx, query, id, id, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return models.ErrRegionInUse
	}

	result, err := r.DB.ExecContext(ctx, `DELETE FROM regions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrRegionNotFound
	}
	return nil
}
