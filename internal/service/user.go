package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository"
)

var ErrTooManyChallengeBadges = errors.New("at most three challenge badges can be displayed")

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.UserProfile, error)
	FindByDisplayName(ctx context.Context, displayName string) (domain.UserProfile, error)
	Update(ctx context.Context, user domain.UserProfile) (domain.UserProfile, error)
}

// ProfileChangePublisher receives the before/after snapshot of every profile
// write. The fan-out worker sits behind it.
type ProfileChangePublisher interface {
	Publish(change domain.ProfileChange)
}

type UserService struct {
	repo      UserRepository
	publisher ProfileChangePublisher
}

func NewUserService(repo UserRepository, publisher ProfileChangePublisher) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.UserProfile, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// IsDisplayNameTaken is the expected-domain-error check signup and profile
// setup run before committing a name.
func (s *UserService) IsDisplayNameTaken(ctx context.Context, displayName string) (bool, error) {
	_, err := s.repo.FindByDisplayName(ctx, displayName)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return false, nil
	}

	return false, fmt.Errorf("s.repo.FindByDisplayName -> %w", err)
}

func (s *UserService) SetUserType(ctx context.Context, userID uint, userType domain.UserType) (domain.UserProfile, error) {
	return s.mutate(ctx, userID, func(u *domain.UserProfile) {
		u.UserType = userType
	})
}

func (s *UserService) SetupProfile(ctx context.Context, userID uint, displayName string, handicap float64) (domain.UserProfile, error) {
	taken, err := s.IsDisplayNameTaken(ctx, displayName)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if taken {
		return domain.UserProfile{}, ErrDisplayNameTaken
	}

	return s.mutate(ctx, userID, func(u *domain.UserProfile) {
		u.DisplayName = displayName
		u.Handicap = &handicap
	})
}

func (s *UserService) CompleteLocker(ctx context.Context, userID uint) (domain.UserProfile, error) {
	return s.mutate(ctx, userID, func(u *domain.UserProfile) {
		u.LockerCompleted = true
	})
}

func (s *UserService) SubmitVerification(ctx context.Context, userID uint) (domain.UserProfile, error) {
	now := time.Now()
	return s.mutate(ctx, userID, func(u *domain.UserProfile) {
		u.VerificationSubmittedAt = &now
	})
}

func (s *UserService) AcceptTerms(ctx context.Context, userID uint) (domain.UserProfile, error) {
	return s.mutate(ctx, userID, func(u *domain.UserProfile) {
		u.AcceptedTerms = true
	})
}

func (s *UserService) CompleteWelcomeTour(ctx context.Context, userID uint) (domain.UserProfile, error) {
	return s.mutate(ctx, userID, func(u *domain.UserProfile) {
		u.HasSeenWelcomeTour = true
	})
}

func (s *UserService) UpdateGameIdentity(ctx context.Context, userID uint, gameIdentity string) (domain.UserProfile, error) {
	return s.mutate(ctx, userID, func(u *domain.UserProfile) {
		u.GameIdentity = gameIdentity
	})
}

func (s *UserService) UpdateChallengeBadges(ctx context.Context, userID uint, badgeIDs []string) (domain.UserProfile, error) {
	if len(badgeIDs) > domain.MaxChallengeBadges {
		return domain.UserProfile{}, ErrTooManyChallengeBadges
	}

	return s.mutate(ctx, userID, func(u *domain.UserProfile) {
		u.ChallengeBadges = badgeIDs
	})
}

func (s *UserService) RegisterPushToken(ctx context.Context, userID uint, token string) (domain.UserProfile, error) {
	return s.mutate(ctx, userID, func(u *domain.UserProfile) {
		u.ExpoPushToken = token
	})
}

// mutate applies fn to the loaded profile, saves it and publishes the
// before/after pair. Every profile write goes through here so the fan-out
// worker sees every change.
func (s *UserService) mutate(ctx context.Context, userID uint, fn func(*domain.UserProfile)) (domain.UserProfile, error) {
	before, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	after := before
	fn(&after)

	updated, err := s.repo.Update(ctx, after)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	if s.publisher != nil {
		s.publisher.Publish(domain.ProfileChange{
			UserID: userID,
			Before: before,
			After:  updated,
		})
	}

	return updated, nil
}
