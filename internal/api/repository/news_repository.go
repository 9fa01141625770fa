package repository

import (
	"context"
	"fmt"

	"news-backend/internal/api/models"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
)

var newsTracer = otel.Tracer("repository.news")

// NewsRepository defines the interface for article data operations.
type NewsRepository interface {
	Create(ctx context.Context, news *models.News) error
	ListWithLikes(ctx context.Context) ([]models.News, error)
	ListPublished(ctx context.Context, category string) ([]models.News, error)
	Search(ctx context.Context, query string) ([]models.News, error)
}

type postgresNewsRepository struct {
	db *sqlx.DB
}

// NewNewsRepository creates a Postgres-backed NewsRepository.
func NewNewsRepository(db *sqlx.DB) NewsRepository {
	return &postgresNewsRepository{db: db}
}

// Create inserts an article with its raw image bytes and fills in the
// generated id and publish time.
func (r *postgresNewsRepository) Create(ctx context.Context, news *models.News) error {
	ctx, span := newsTracer.Start(ctx, "NewsRepository.Create")
	defer span.End()

	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO news (title, description, category, image)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, published_at`,
		news.Title, news.Description, news.Category, news.Image,
	).Scan(&news.ID, &news.PublishedAt)
	if err != nil {
		return fmt.Errorf("failed to create news: %w", err)
	}
	return nil
}

// ListWithLikes returns every article newest-first, each annotated with the
// aggregate count of its like rows rather than the denormalized counter.
func (r *postgresNewsRepository) ListWithLikes(ctx context.Context) ([]models.News, error) {
	ctx, span := newsTracer.Start(ctx, "NewsRepository.ListWithLikes")
	defer span.End()

	var items []models.News
	err := r.db.SelectContext(ctx, &items,
		`SELECT news.id, news.title, news.description, news.category,
		        news.published_at, news.image,
		        COALESCE(like_counts.total_likes, 0) AS like_count
		 FROM news
		 LEFT JOIN (
		     SELECT news_id, COUNT(*) AS total_likes
		     FROM likes
		     GROUP BY news_id
		 ) AS like_counts ON news.id = like_counts.news_id
		 ORDER BY news.published_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return items, nil
}

// ListPublished returns articles whose publish time is not in the future,
// optionally filtered by a case-insensitive category match.
func (r *postgresNewsRepository) ListPublished(ctx context.Context, category string) ([]models.News, error) {
	ctx, span := newsTracer.Start(ctx, "NewsRepository.ListPublished")
	defer span.End()

	var items []models.News
	var err error
	if category != "" {
		err = r.db.SelectContext(ctx, &items,
			`SELECT id, title, description, category, published_at, image
			 FROM news
			 WHERE category ILIKE $1 AND published_at <= NOW()`, category)
	} else {
		err = r.db.SelectContext(ctx, &items,
			`SELECT id, title, description, category, published_at, image
			 FROM news
			 WHERE published_at <= NOW()`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list published news: %w", err)
	}
	return items, nil
}

// Search matches the query as a case-insensitive substring of the title or
// the description.
func (r *postgresNewsRepository) Search(ctx context.Context, query string) ([]models.News, error) {
	ctx, span := newsTracer.Start(ctx, "NewsRepository.Search")
	defer span.End()

	var items []models.News
	err := r.db.SelectContext(ctx, &items,
		`SELECT id, title, description, category, published_at, image
		 FROM news
		 WHERE title ILIKE $1 OR description ILIKE $1`,
		"%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search news: %w", err)
	}
	return items, nil
}
