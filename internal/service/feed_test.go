package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository"
)

type fakeFeedThoughtRepo struct {
	thoughts map[uint]domain.Thought

	likeCount    int64
	likeCountErr error
	likeErr      error

	created *domain.Thought
	likes   []domain.Like
}

func (f *fakeFeedThoughtRepo) Create(_ context.Context, thought domain.Thought) (domain.Thought, error) {
	thought.ID = 1
	f.created = &thought
	return thought, nil
}

func (f *fakeFeedThoughtRepo) FindByID(_ context.Context, id uint) (domain.Thought, error) {
	thought, ok := f.thoughts[id]
	if !ok {
		return domain.Thought{}, repository.ErrThoughtNotFound
	}
	return thought, nil
}

func (f *fakeFeedThoughtRepo) ListRecent(context.Context, int) ([]domain.Thought, error) {
	return nil, nil
}

func (f *fakeFeedThoughtRepo) CreateLike(_ context.Context, thoughtID, userID uint) (domain.Like, error) {
	if f.likeErr != nil {
		return domain.Like{}, f.likeErr
	}
	like := domain.Like{ID: uint(len(f.likes) + 1), ThoughtID: thoughtID, UserID: userID}
	f.likes = append(f.likes, like)
	return like, nil
}

func (f *fakeFeedThoughtRepo) DeleteLike(_ context.Context, thoughtID, userID uint) error {
	for i, like := range f.likes {
		if like.ThoughtID == thoughtID && like.UserID == userID {
			f.likes = append(f.likes[:i], f.likes[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotLiked
}

func (f *fakeFeedThoughtRepo) CountRecentLikesByUser(context.Context, uint, time.Duration) (int64, error) {
	if f.likeCountErr != nil {
		return 0, f.likeCountErr
	}
	return f.likeCount, nil
}

type fakeFeedUserRepo struct {
	user domain.UserProfile
}

func (f *fakeFeedUserRepo) FindByID(context.Context, uint) (domain.UserProfile, error) {
	return f.user, nil
}

type fakeLikeNotifier struct {
	notified []uint
}

func (f *fakeLikeNotifier) NotifyLike(_ context.Context, _ domain.Thought, likerID uint) {
	f.notified = append(f.notified, likerID)
}

func TestFeedService_PostThought_StampsAuthorFields(t *testing.T) {
	thoughts := &fakeFeedThoughtRepo{}
	users := &fakeFeedUserRepo{user: domain.UserProfile{
		ID:              1,
		DisplayName:     "chip-in-charlie",
		ChallengeBadges: []string{"ace"},
		GameIdentity:    "grinder",
	}}
	svc := NewFeedService(thoughts, users, &fakeLikeNotifier{})

	created, err := svc.PostThought(context.Background(), 1, "pured every iron today")

	require.NoError(t, err)
	assert.Equal(t, "chip-in-charlie", created.AuthorDisplayName)
	assert.Equal(t, []string{"ace"}, created.AuthorChallengeBadges)
	assert.Equal(t, "grinder", created.AuthorGameIdentity)
	assert.Equal(t, "pured every iron today", created.Body)
}

func TestFeedService_LikeThought(t *testing.T) {
	thought := domain.Thought{ID: 5, AuthorID: 2}

	t.Run("success notifies the author", func(t *testing.T) {
		thoughts := &fakeFeedThoughtRepo{thoughts: map[uint]domain.Thought{5: thought}}
		notifier := &fakeLikeNotifier{}
		svc := NewFeedService(thoughts, &fakeFeedUserRepo{}, notifier)

		like, err := svc.LikeThought(context.Background(), 5, 1)

		require.NoError(t, err)
		assert.Equal(t, uint(5), like.ThoughtID)
		assert.Equal(t, []uint{1}, notifier.notified)
	})

	t.Run("unknown thought", func(t *testing.T) {
		thoughts := &fakeFeedThoughtRepo{thoughts: map[uint]domain.Thought{}}
		svc := NewFeedService(thoughts, &fakeFeedUserRepo{}, &fakeLikeNotifier{})

		_, err := svc.LikeThought(context.Background(), 99, 1)

		assert.ErrorIs(t, err, ErrThoughtNotFound)
	})

	t.Run("duplicate like", func(t *testing.T) {
		thoughts := &fakeFeedThoughtRepo{
			thoughts: map[uint]domain.Thought{5: thought},
			likeErr:  repository.ErrAlreadyLiked,
		}
		svc := NewFeedService(thoughts, &fakeFeedUserRepo{}, &fakeLikeNotifier{})

		_, err := svc.LikeThought(context.Background(), 5, 1)

		assert.ErrorIs(t, err, ErrAlreadyLiked)
	})

	t.Run("rate limit blocks at the threshold", func(t *testing.T) {
		thoughts := &fakeFeedThoughtRepo{
			thoughts:  map[uint]domain.Thought{5: thought},
			likeCount: likeRateLimit,
		}
		svc := NewFeedService(thoughts, &fakeFeedUserRepo{}, &fakeLikeNotifier{})

		_, err := svc.LikeThought(context.Background(), 5, 1)

		assert.ErrorIs(t, err, ErrLikeRateLimited)
		assert.Empty(t, thoughts.likes)
	})

	t.Run("rate limit fails open on counter errors", func(t *testing.T) {
		thoughts := &fakeFeedThoughtRepo{
			thoughts:     map[uint]domain.Thought{5: thought},
			likeCountErr: errors.New("counter unavailable"),
		}
		svc := NewFeedService(thoughts, &fakeFeedUserRepo{}, &fakeLikeNotifier{})

		_, err := svc.LikeThought(context.Background(), 5, 1)

		require.NoError(t, err)
		assert.Len(t, thoughts.likes, 1)
	})
}

func TestFeedService_UnlikeThought(t *testing.T) {
	thought := domain.Thought{ID: 5, AuthorID: 2}

	t.Run("removes an existing like", func(t *testing.T) {
		thoughts := &fakeFeedThoughtRepo{thoughts: map[uint]domain.Thought{5: thought}}
		svc := NewFeedService(thoughts, &fakeFeedUserRepo{}, &fakeLikeNotifier{})

		_, err := svc.LikeThought(context.Background(), 5, 1)
		require.NoError(t, err)

		require.NoError(t, svc.UnlikeThought(context.Background(), 5, 1))
		assert.Empty(t, thoughts.likes)
	})

	t.Run("never liked", func(t *testing.T) {
		thoughts := &fakeFeedThoughtRepo{thoughts: map[uint]domain.Thought{5: thought}}
		svc := NewFeedService(thoughts, &fakeFeedUserRepo{}, &fakeLikeNotifier{})

		err := svc.UnlikeThought(context.Background(), 5, 1)

		assert.ErrorIs(t, err, ErrNotLiked)
	})
}
