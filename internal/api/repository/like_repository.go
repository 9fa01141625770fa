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

var likeTracer = otel.Tracer("repository.like")

// Like toggle outcomes reported to the client.
const (
	ActionLiked   = "liked"
	ActionUnliked = "unliked"
)

// LikeRepository defines the interface for like data operations.
type LikeRepository interface {
	Toggle(ctx context.Context, newsID, userID int64) (action string, likeCount int, err error)
	Exists(ctx context.Context, userID, newsID int64) (bool, error)
}

type postgresLikeRepository struct {
	db *sqlx.DB
}

// NewLikeRepository creates a Postgres-backed LikeRepository.
func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &postgresLikeRepository{db: db}
}

// Toggle flips the (news, user) like state in a single transaction. The
// branch is decided by the rows-affected count of the DELETE, so two
// concurrent toggles serialize on the like row and the counter can never
// drift past the number of like rows. The counter decrement is floored at
// zero.
func (r *postgresLikeRepository) Toggle(ctx context.Context, newsID, userID int64) (string, int, error) {
	ctx, span := likeTracer.Start(ctx, "LikeRepository.Toggle")
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to begin toggle transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM likes WHERE news_id = $1 AND user_id = $2`, newsID, userID)
	if err != nil {
		return "", 0, fmt.Errorf("failed to delete like: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return "", 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	var action string
	if deleted > 0 {
		action = ActionUnliked
		if _, err := tx.ExecContext(ctx,
			`UPDATE news SET like_count = GREATEST(like_count - 1, 0) WHERE id = $1`, newsID); err != nil {
			return "", 0, fmt.Errorf("failed to decrement like count: %w", err)
		}
	} else {
		action = ActionLiked
		res, err := tx.ExecContext(ctx,
			`INSERT INTO likes (news_id, user_id) VALUES ($1, $2)
			 ON CONFLICT (news_id, user_id) DO NOTHING`, newsID, userID)
		if err != nil {
			return "", 0, fmt.Errorf("failed to insert like: %w", err)
		}
		inserted, err := res.RowsAffected()
		if err != nil {
			return "", 0, fmt.Errorf("failed to read rows affected: %w", err)
		}
		if inserted > 0 {
			if _, err := tx.ExecContext(ctx,
				`UPDATE news SET like_count = like_count + 1 WHERE id = $1`, newsID); err != nil {
				return "", 0, fmt.Errorf("failed to increment like count: %w", err)
			}
		}
	}

	var likeCount int
	if err := tx.GetContext(ctx, &likeCount,
		`SELECT like_count FROM news WHERE id = $1`, newsID); err != nil {
		return "", 0, fmt.Errorf("failed to read like count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", 0, fmt.Errorf("failed to commit toggle transaction: %w", err)
	}
	return action, likeCount, nil
}

// Exists reports whether a like row exists for the (user, news) pair.
func (r *postgresLikeRepository) Exists(ctx context.Context, userID, newsID int64) (bool, error) {
	ctx, span := likeTracer.Start(ctx, "LikeRepository.Exists")
	defer span.End()

	var like models.Like
	err := r.db.GetContext(ctx, &like,
		`SELECT news_id, user_id FROM likes WHERE user_id = $1 AND news_id = $2`, userID, newsID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return true, nil
}
