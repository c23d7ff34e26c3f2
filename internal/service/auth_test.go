package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository"
)

type fakeAuthUserRepo struct {
	byEmail map[string]domain.UserProfile
}

func newFakeAuthUserRepo() *fakeAuthUserRepo {
	return &fakeAuthUserRepo{byEmail: make(map[string]domain.UserProfile)}
}

func (f *fakeAuthUserRepo) Create(_ context.Context, user domain.UserProfile) (domain.UserProfile, error) {
	user.ID = uint(len(f.byEmail) + 1)
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeAuthUserRepo) FindByEmail(_ context.Context, email string) (domain.UserProfile, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return domain.UserProfile{}, repository.ErrUserNotFound
	}
	return user, nil
}

func TestAuthService_Signup(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.UserProfile{
		Email:    "golfer@example.com",
		Password: "fairway123",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "fairway123", created.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("fairway123")))

	_, err = svc.Signup(context.Background(), domain.UserProfile{
		Email:    "golfer@example.com",
		Password: "different1",
	})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.UserProfile{
		Email:    "golfer@example.com",
		Password: "fairway123",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "golfer@example.com", "fairway123")

		require.NoError(t, err)
		assert.Equal(t, "golfer@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "golfer@example.com", "hooks-it-left")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "fairway123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
