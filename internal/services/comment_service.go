package services

import (
	"context"

	"travelsuzBack/internal/models"
	"travelsuzBack/internal/repositories"
)

// CommentService serves the comment operations of one content entity type.
// One instance per domain, all backed by the same store logic.
type CommentService struct {
	Store *repositories.CommentStore
}

func (s *CommentService) CreateComment(ctx context.Context, c models.Comment) (models.Comment, error) {
	return s.Store.Create(ctx, c)
}

func (s *CommentService) GetCommentsByParent(ctx context.Context, parentID int) ([]models.Comment, error) {
	return s.Store.ListByParent(ctx, parentID)
}
