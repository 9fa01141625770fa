package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"news-backend/internal/api/models"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
)

var commentTracer = otel.Tracer("repository.comment")

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByNews(ctx context.Context, newsID int64) ([]models.CommentWithAuthor, error)
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	Delete(ctx context.Context, id, newsID int64) error
	UpdateText(ctx context.Context, id int64, text string) error
}

type postgresCommentRepository struct {
	db *sqlx.DB
}

// NewCommentRepository creates a Postgres-backed CommentRepository.
func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &postgresCommentRepository{db: db}
}

// Create inserts the comment and bumps the parent article's comment_count in
// one transaction; either both writes land or neither does.
func (r *postgresCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	ctx, span := commentTracer.Start(ctx, "CommentRepository.Create")
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin comment transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowxContext(ctx,
		`INSERT INTO comments (user_id, news_id, comment_text)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		comment.UserID, comment.NewsID, comment.CommentText,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE news SET comment_count = comment_count + 1 WHERE id = $1`,
		comment.NewsID); err != nil {
		return fmt.Errorf("failed to increment comment count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit comment transaction: %w", err)
	}
	return nil
}

// ListByNews returns an article's comments joined to their author's name,
// newest first.
func (r *postgresCommentRepository) ListByNews(ctx context.Context, newsID int64) ([]models.CommentWithAuthor, error) {
	ctx, span := commentTracer.Start(ctx, "CommentRepository.ListByNews")
	defer span.End()

	var comments []models.CommentWithAuthor
	err := r.db.SelectContext(ctx, &comments,
		`SELECT c.id, c.comment_text, c.created_at, u.id AS user_id, u.name AS user_name
		 FROM comments c
		 JOIN users u ON c.user_id = u.id
		 WHERE c.news_id = $1
		 ORDER BY c.created_at DESC`, newsID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// GetByID retrieves one comment. A missing comment is not an application
// error.
func (r *postgresCommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	ctx, span := commentTracer.Start(ctx, "CommentRepository.GetByID")
	defer span.End()

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment,
		`SELECT id, user_id, news_id, comment_text, created_at FROM comments WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

// Delete removes the comment and decrements the parent article's
// comment_count, floored at zero, in one transaction.
func (r *postgresCommentRepository) Delete(ctx context.Context, id, newsID int64) error {
	ctx, span := commentTracer.Start(ctx, "CommentRepository.Delete")
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM comments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE news SET comment_count = GREATEST(comment_count - 1, 0) WHERE id = $1`,
		newsID); err != nil {
		return fmt.Errorf("failed to decrement comment count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete transaction: %w", err)
	}
	return nil
}

// UpdateText overwrites a comment's text.
func (r *postgresCommentRepository) UpdateText(ctx context.Context, id int64, text string) error {
	ctx, span := commentTracer.Start(ctx, "CommentRepository.UpdateText")
	defer span.End()

	if _, err := r.db.ExecContext(ctx,
		`UPDATE comments SET comment_text = $1 WHERE id = $2`, text, id); err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return nil
}
