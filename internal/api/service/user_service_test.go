package service

import (
	"context"
	"errors"
	"testing"

	"news-backend/internal/api/models"
	"news-backend/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID int64
	tokens map[int64]string
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]*models.User),
		nextID: 1,
		tokens: make(map[int64]string),
	}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			copy := *u
			return &copy, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	copy := *u
	return &copy, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	user.ID = f.nextID
	f.nextID++
	copy := *user
	f.users[user.Email] = &copy
	return nil
}

func (f *fakeUserRepo) SaveToken(ctx context.Context, id int64, token string) error {
	if f.err != nil {
		return f.err
	}
	f.tokens[id] = token
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return false, nil
	}
	u.Password = passwordHash
	return true, nil
}

type fakeMailer struct {
	to  string
	url string
	err error
}

func (f *fakeMailer) SendResetLink(ctx context.Context, to, resetURL string) error {
	if f.err != nil {
		return f.err
	}
	f.to = to
	f.url = resetURL
	return nil
}

func newTestUserService(repo *fakeUserRepo, mailer *fakeMailer) UserService {
	return NewUserService(repo, mailer, testSecret, "http://localhost:60966")
}

func registerUser(t *testing.T, svc UserService, email, password string) *models.User {
	t.Helper()
	user, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Reader",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo, &fakeMailer{})

	user := registerUser(t, svc, "reader@gmail.com", "secret")

	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo, &fakeMailer{})

	first := registerUser(t, svc, "reader@gmail.com", "secret")

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Impostor",
		Email:    "reader@gmail.com",
		Password: "other-secret",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// First user's row is untouched.
	stored, err := repo.GetByEmail(context.Background(), "reader@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "Reader", stored.Name)
}

func TestLogin_IssuesAndPersistsToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo, &fakeMailer{})
	user := registerUser(t, svc, "reader@gmail.com", "secret")

	token, userID, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "reader@gmail.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	claims, err := auth.Verify(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, "reader@gmail.com", claims.Email)

	// The advisory token column holds the issued token.
	assert.Equal(t, token, repo.tokens[user.ID])
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo, &fakeMailer{})
	registerUser(t, svc, "reader@gmail.com", "secret")

	_, _, errUnknown := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@gmail.com",
		Password: "secret",
	})
	_, _, errWrongPass := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "reader@gmail.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestSendResetLink(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	svc := newTestUserService(repo, mailer)
	registerUser(t, svc, "reader@gmail.com", "secret")

	err := svc.SendResetLink(context.Background(), "reader@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "reader@gmail.com", mailer.to)
	assert.Equal(t, "http://localhost:60966/reset-password?email=reader@gmail.com", mailer.url)
}

func TestSendResetLink_UnknownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	svc := newTestUserService(repo, mailer)

	err := svc.SendResetLink(context.Background(), "nobody@gmail.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, mailer.to, "no mail should be sent for an unknown address")
}

func TestResetPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo, &fakeMailer{})
	registerUser(t, svc, "reader@gmail.com", "old-secret")

	token, err := svc.ResetPassword(context.Background(), "reader@gmail.com", "new-secret")
	require.NoError(t, err)

	// Reset tokens expire, unlike login tokens.
	claims, err := auth.Verify(token, testSecret)
	require.NoError(t, err)
	assert.NotNil(t, claims.ExpiresAt)

	// The old password no longer works; the new one does.
	_, _, err = svc.Login(context.Background(), &models.LoginRequest{Email: "reader@gmail.com", Password: "old-secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(context.Background(), &models.LoginRequest{Email: "reader@gmail.com", Password: "new-secret"})
	assert.NoError(t, err)
}

func TestResetPassword_UnknownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo, &fakeMailer{})

	_, err := svc.ResetPassword(context.Background(), "nobody@gmail.com", "new-secret")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetInfo_RepoFailurePropagates(t *testing.T) {
	repo := newFakeUserRepo()
	repo.err = errors.New("connection refused")
	svc := newTestUserService(repo, &fakeMailer{})

	_, err := svc.GetInfo(context.Background(), 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}
