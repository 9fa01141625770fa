package service

import (
	"context"

	"news-backend/internal/api/repository"
)

// LikeService defines the interface for like-related business logic.
type LikeService interface {
	Toggle(ctx context.Context, newsID, userID int64) (action string, likeCount int, err error)
	Check(ctx context.Context, userID, newsID int64) (bool, error)
}

type likeService struct {
	likeRepo repository.LikeRepository
}

// NewLikeService creates a new LikeService.
func NewLikeService(likeRepo repository.LikeRepository) LikeService {
	return &likeService{likeRepo: likeRepo}
}

// Toggle flips the caller's like on an article and returns the resulting
// action and counter value.
func (s *likeService) Toggle(ctx context.Context, newsID, userID int64) (string, int, error) {
	return s.likeRepo.Toggle(ctx, newsID, userID)
}

// Check reports whether the user currently likes the article.
func (s *likeService) Check(ctx context.Context, userID, newsID int64) (bool, error) {
	return s.likeRepo.Exists(ctx, userID, newsID)
}
