package service

import (
	"context"
	"fmt"
	"time"

	"news-backend/internal/api/models"
	"news-backend/internal/api/repository"
	"news-backend/internal/auth"
	"news-backend/internal/mail"

	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = time.Hour

// UserService defines the interface for user-related business logic.
type UserService interface {
	GetInfo(ctx context.Context, id int64) (*models.User, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (token string, userID int64, err error)
	SendResetLink(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, newPassword string) (token string, err error)
}

type userService struct {
	userRepo      repository.UserRepository
	mailer        mail.Mailer
	jwtSecret     string
	resetLinkBase string
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, mailer mail.Mailer, jwtSecret, resetLinkBase string) UserService {
	return &userService{
		userRepo:      userRepo,
		mailer:        mailer,
		jwtSecret:     jwtSecret,
		resetLinkBase: resetLinkBase,
	}
}

// GetInfo fetches one user row. Returns ErrUserNotFound for a missing id.
func (s *userService) GetInfo(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Register creates a new user after the duplicate-email check. The password
// is stored only as a bcrypt hash.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a non-expiring bearer token. The
// token is also written to the user row as advisory last-issued state. The
// error is identical for an unknown email and a wrong password.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (string, int64, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", 0, err
	}
	if user == nil {
		return "", 0, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	token, err := auth.Sign(user.ID, user.Email, s.jwtSecret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}
	if err := s.userRepo.SaveToken(ctx, user.ID, token); err != nil {
		return "", 0, err
	}
	return token, user.ID, nil
}

// SendResetLink emails a reset link to an existing user. The link embeds the
// address itself; there is no one-time reset token, so the flow's security
// rests on email delivery.
func (s *userService) SendResetLink(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	resetURL := fmt.Sprintf("%s/reset-password?email=%s", s.resetLinkBase, email)
	return s.mailer.SendResetLink(ctx, email, resetURL)
}

// ResetPassword overwrites the stored hash and issues a fresh token with a
// 1 hour expiry.
func (s *userService) ResetPassword(ctx context.Context, email, newPassword string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	updated, err := s.userRepo.UpdatePassword(ctx, email, string(hash))
	if err != nil {
		return "", err
	}
	if !updated {
		return "", ErrUserNotFound
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	token, err := auth.SignWithExpiry(user.ID, user.Email, s.jwtSecret, resetTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
