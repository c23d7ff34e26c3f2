package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository"
)

var (
	ErrUserEmailExists  = repository.ErrUserEmailExists
	ErrWrongPassword    = errors.New("wrong password")
	ErrUserNotFound     = repository.ErrUserNotFound
	ErrDisplayNameTaken = repository.ErrDisplayNameTaken
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.UserProfile) (domain.UserProfile, error)
	FindByEmail(ctx context.Context, email string) (domain.UserProfile, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Signup creates the auth user. The profile document starts empty: userType,
// display name and the onboarding flags are filled in by the onboarding flow,
// which the navigation gate walks the new user through.
func (s *AuthService) Signup(ctx context.Context, user domain.UserProfile) (domain.UserProfile, error) {
	if err := s.checkEmailExists(ctx, user.Email); err != nil {
		return domain.UserProfile{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserProfile{}, err
	}
	user.Password = string(hash)

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.UserProfile, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.UserProfile{}, ErrUserNotFound
		}

		return domain.UserProfile{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.UserProfile{}, ErrWrongPassword
	}

	return user, nil
}

func (s *AuthService) checkEmailExists(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return ErrUserEmailExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}
	return nil
}
