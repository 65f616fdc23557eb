package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"travelsuzBack/internal/models"
)

// CommentStore manages the comment child rows of one content entity type,
// parameterized the same way as ImageStore.
type CommentStore struct {
	DB     *sql.DB
	Table  string
	Parent string
}

func (s *CommentStore) Create(ctx context.Context, c models.Comment) (models.Comment, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, text, created_at) VALUES (?, ?, ?)`, s.Table, s.Parent)
	c.CreatedAt = time.Now()
	result, err := s.DB.ExecContext(ctx, query, c.ParentID, c.Text, c.CreatedAt)
	if err != nil {
		return models.Comment{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Comment{}, err
	}
	c.ID = int(id)
	return c, nil
}

func (s *CommentStore) ListByParent(ctx context.Context, parentID int) ([]models.Comment, error) {
	query := fmt.Sprintf(`SELECT id, %s, text, created_at FROM %s WHERE %s = ? ORDER BY created_at DESC, id DESC`,
		s.Parent, s.Table, s.Parent)
	rows, err := s.DB.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ParentID, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *CommentStore) DeleteByParent(ctx context.Context, tx execer, parentID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, s.Table, s.Parent)
	_, err := tx.ExecContext(ctx, query, parentID)
	return err
}
