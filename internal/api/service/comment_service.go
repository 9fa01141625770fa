package service

import (
	"context"

	"news-backend/internal/api/models"
	"news-backend/internal/api/repository"
)

// CommentService defines the interface for comment-related business logic.
type CommentService interface {
	Add(ctx context.Context, userID, newsID int64, text string) (*models.Comment, error)
	ListByNews(ctx context.Context, newsID int64) ([]models.CommentWithAuthor, error)
	Delete(ctx context.Context, commentID, requesterID int64) error
	Update(ctx context.Context, commentID, requesterID int64, text string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

// Add inserts a comment; the repository bumps the article's comment_count in
// the same transaction.
func (s *commentService) Add(ctx context.Context, userID, newsID int64, text string) (*models.Comment, error) {
	comment := &models.Comment{
		UserID:      userID,
		NewsID:      newsID,
		CommentText: text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByNews returns an article's comments with author names, newest first.
func (s *commentService) ListByNews(ctx context.Context, newsID int64) ([]models.CommentWithAuthor, error) {
	return s.commentRepo.ListByNews(ctx, newsID)
}

// Delete removes a comment after the ownership check. Only the author may
// delete, and the requester identity comes from verified token claims.
func (s *commentService) Delete(ctx context.Context, commentID, requesterID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != requesterID {
		return ErrNotCommentOwner
	}
	return s.commentRepo.Delete(ctx, commentID, comment.NewsID)
}

// Update overwrites a comment's text after the same ownership check as
// Delete.
func (s *commentService) Update(ctx context.Context, commentID, requesterID int64, text string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != requesterID {
		return ErrNotCommentOwner
	}
	return s.commentRepo.UpdateText(ctx, commentID, text)
}
