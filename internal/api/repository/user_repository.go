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

var userTracer = otel.Tracer("repository.user")

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	SaveToken(ctx context.Context, id int64, token string) error
	UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error)
}

type postgresUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a Postgres-backed UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

// GetByID retrieves one user row. A missing user is not an application error.
func (r *postgresUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, span := userTracer.Start(ctx, "UserRepository.GetByID")
	defer span.End()

	var user models.User
	err := r.db.GetContext(ctx, &user,
		`SELECT id, name, email, password, token FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// GetByEmail retrieves one user row by exact email match.
func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, span := userTracer.Start(ctx, "UserRepository.GetByEmail")
	defer span.End()

	var user models.User
	err := r.db.GetContext(ctx, &user,
		`SELECT id, name, email, password, token FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// Create inserts a new user and fills in the generated id.
func (r *postgresUserRepository) Create(ctx context.Context, user *models.User) error {
	ctx, span := userTracer.Start(ctx, "UserRepository.Create")
	defer span.End()

	err := r.db.GetContext(ctx, &user.ID,
		`INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id`,
		user.Name, user.Email, user.Password)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// SaveToken records the last-issued token on the user row. Advisory state:
// verification stays stateless.
func (r *postgresUserRepository) SaveToken(ctx context.Context, id int64, token string) error {
	ctx, span := userTracer.Start(ctx, "UserRepository.SaveToken")
	defer span.End()

	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET token = $1 WHERE id = $2`, token, id)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// UpdatePassword overwrites the stored hash for the given email and reports
// whether a row was actually updated.
func (r *postgresUserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error) {
	ctx, span := userTracer.Start(ctx, "UserRepository.UpdatePassword")
	defer span.End()

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password = $1 WHERE email = $2`, passwordHash, email)
	if err != nil {
		return false, fmt.Errorf("failed to update password: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}
