package service

import (
	"context"

	"news-backend/internal/api/models"
	"news-backend/internal/api/repository"
)

// NewsService defines the interface for article-related business logic.
type NewsService interface {
	Create(ctx context.Context, title, description, category string, image []byte) (models.NewsItem, error)
	ListWithLikes(ctx context.Context) ([]models.NewsWithLikes, error)
	ListPublished(ctx context.Context, category string) ([]models.NewsItem, error)
	Search(ctx context.Context, query string) ([]models.NewsItem, error)
}

type newsService struct {
	newsRepo repository.NewsRepository
}

// NewNewsService creates a new NewsService.
func NewNewsService(newsRepo repository.NewsRepository) NewsService {
	return &newsService{newsRepo: newsRepo}
}

// Create stores a new article with its raw image bytes.
func (s *newsService) Create(ctx context.Context, title, description, category string, image []byte) (models.NewsItem, error) {
	news := &models.News{
		Title:       title,
		Description: description,
		Category:    category,
		Image:       image,
	}
	if err := s.newsRepo.Create(ctx, news); err != nil {
		return models.NewsItem{}, err
	}
	return news.ToNewsItem(), nil
}

// ListWithLikes returns every article newest-first with its aggregate like
// count.
func (s *newsService) ListWithLikes(ctx context.Context) ([]models.NewsWithLikes, error) {
	rows, err := s.newsRepo.ListWithLikes(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]models.NewsWithLikes, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToNewsWithLikes())
	}
	return items, nil
}

// ListPublished returns already-published articles, optionally filtered by
// category.
func (s *newsService) ListPublished(ctx context.Context, category string) ([]models.NewsItem, error) {
	rows, err := s.newsRepo.ListPublished(ctx, category)
	if err != nil {
		return nil, err
	}
	items := make([]models.NewsItem, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToNewsItem())
	}
	return items, nil
}

// Search returns articles matching the query in title or description.
func (s *newsService) Search(ctx context.Context, query string) ([]models.NewsItem, error) {
	rows, err := s.newsRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	items := make([]models.NewsItem, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].ToNewsItem())
	}
	return items, nil
}
