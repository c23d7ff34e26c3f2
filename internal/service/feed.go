package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository"
)

var (
	ErrThoughtNotFound = repository.ErrThoughtNotFound
	ErrAlreadyLiked    = repository.ErrAlreadyLiked
	ErrNotLiked        = repository.ErrNotLiked
	ErrLikeRateLimited = errors.New("too many likes, slow down")
)

const (
	likeRateWindow = time.Minute
	likeRateLimit  = 30
)

type FeedThoughtRepository interface {
	Create(ctx context.Context, thought domain.Thought) (domain.Thought, error)
	FindByID(ctx context.Context, id uint) (domain.Thought, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Thought, error)
	CreateLike(ctx context.Context, thoughtID, userID uint) (domain.Like, error)
	DeleteLike(ctx context.Context, thoughtID, userID uint) error
	CountRecentLikesByUser(ctx context.Context, userID uint, window time.Duration) (int64, error)
}

type FeedUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.UserProfile, error)
}

type LikeNotifier interface {
	NotifyLike(ctx context.Context, thought domain.Thought, likerID uint)
}

type FeedService struct {
	thoughts FeedThoughtRepository
	users    FeedUserRepository
	notifier LikeNotifier
}

func NewFeedService(thoughts FeedThoughtRepository, users FeedUserRepository, notifier LikeNotifier) *FeedService {
	return &FeedService{
		thoughts: thoughts,
		users:    users,
		notifier: notifier,
	}
}

// PostThought stamps the author's denormalized fields onto the new thought
// from the current profile; the fan-out keeps them fresh afterwards.
func (s *FeedService) PostThought(ctx context.Context, authorID uint, body string) (domain.Thought, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return domain.Thought{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}

	created, err := s.thoughts.Create(ctx, domain.Thought{
		AuthorID:              authorID,
		Body:                  body,
		AuthorDisplayName:     author.DisplayName,
		AuthorChallengeBadges: author.ChallengeBadges,
		AuthorGameIdentity:    author.GameIdentity,
	})
	if err != nil {
		return domain.Thought{}, fmt.Errorf("s.thoughts.Create -> %w", err)
	}

	return created, nil
}

func (s *FeedService) ListRecent(ctx context.Context, limit int) ([]domain.Thought, error) {
	thoughts, err := s.thoughts.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("s.thoughts.ListRecent -> %w", err)
	}

	return thoughts, nil
}

// LikeThought applies the fail-open rate limit, records the like and fires
// the notification best-effort.
func (s *FeedService) LikeThought(ctx context.Context, thoughtID, userID uint) (domain.Like, error) {
	// Rate-limit check fails open: a limiter error must never block a like.
	count, err := s.thoughts.CountRecentLikesByUser(ctx, userID, likeRateWindow)
	if err != nil {
		zap.L().Warn("feed: like rate check failed, allowing",
			zap.Uint("user_id", userID), zap.Error(err))
	} else if count >= likeRateLimit {
		return domain.Like{}, ErrLikeRateLimited
	}

	thought, err := s.thoughts.FindByID(ctx, thoughtID)
	if err != nil {
		if errors.Is(err, repository.ErrThoughtNotFound) {
			return domain.Like{}, ErrThoughtNotFound
		}
		return domain.Like{}, fmt.Errorf("s.thoughts.FindByID -> %w", err)
	}

	like, err := s.thoughts.CreateLike(ctx, thoughtID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyLiked) {
			return domain.Like{}, ErrAlreadyLiked
		}
		return domain.Like{}, fmt.Errorf("s.thoughts.CreateLike -> %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyLike(ctx, thought, userID)
	}

	return like, nil
}

// UnlikeThought removes the like. Unliking something never liked is an
// expected domain error, not a failure.
func (s *FeedService) UnlikeThought(ctx context.Context, thoughtID, userID uint) error {
	if err := s.thoughts.DeleteLike(ctx, thoughtID, userID); err != nil {
		if errors.Is(err, repository.ErrNotLiked) {
			return ErrNotLiked
		}
		return fmt.Errorf("s.thoughts.DeleteLike -> %w", err)
	}

	return nil
}
