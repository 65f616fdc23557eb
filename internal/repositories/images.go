package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"travelsuzBack/internal/models"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// ImageStore manages the image child rows of one content entity type.
// The same store logic backs hotels, restaurants and travels; only the table
// and parent column differ per instance.
type ImageStore struct {
	DB     *sql.DB
	Table  string
	Parent string
}

func (s *ImageStore) Insert(ctx context.Context, tx execer, parentID int, images []models.Image) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, name, path, type) VALUES (?, ?, ?, ?)`, s.Table, s.Parent)
	for _, img := range images {
		if _, err := tx.ExecContext(ctx, query, parentID, img.Name, img.Path, img.Type); err != nil {
			return err
		}
	}
	return nil
}

// Replace removes every existing image row of the parent before inserting the
// new set. Callers run it inside the same transaction as the parent update.
func (s *ImageStore) Replace(ctx context.Context, tx execer, parentID int, images []models.Image) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, s.Table, s.Parent)
	if _, err := tx.ExecContext(ctx, query, parentID); err != nil {
		return err
	}
	return s.Insert(ctx, tx, parentID, images)
}

func (s *ImageStore) DeleteByParent(ctx context.Context, tx execer, parentID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, s.Table, s.Parent)
	_, err := tx.ExecContext(ctx, query, parentID)
	return err
}

func (s *ImageStore) ListByParent(ctx context.Context, parentID int) ([]models.Image, error) {
	query := fmt.Sprintf(`SELECT id, name, path, type FROM %s WHERE %s = ? ORDER BY id`, s.Table, s.Parent)
	rows, err := s.DB.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []models.Image{}
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(&img.ID, &img.Name, &img.Path, &img.Type); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}
