package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository"
)

type fakeUserRepo struct {
	users map[uint]domain.UserProfile
	names map[string]uint
}

func newFakeUserRepo(users ...domain.UserProfile) *fakeUserRepo {
	f := &fakeUserRepo{
		users: make(map[uint]domain.UserProfile),
		names: make(map[string]uint),
	}
	for _, u := range users {
		f.users[u.ID] = u
		if u.DisplayName != "" {
			f.names[u.DisplayName] = u.ID
		}
	}
	return f
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.UserProfile, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.UserProfile{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByDisplayName(_ context.Context, displayName string) (domain.UserProfile, error) {
	id, ok := f.names[displayName]
	if !ok {
		return domain.UserProfile{}, repository.ErrUserNotFound
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) Update(_ context.Context, user domain.UserProfile) (domain.UserProfile, error) {
	f.users[user.ID] = user
	if user.DisplayName != "" {
		f.names[user.DisplayName] = user.ID
	}
	return user, nil
}

type fakePublisher struct {
	changes []domain.ProfileChange
}

func (f *fakePublisher) Publish(change domain.ProfileChange) {
	f.changes = append(f.changes, change)
}

func TestUserService_MutationsPublishBeforeAndAfter(t *testing.T) {
	repo := newFakeUserRepo(domain.UserProfile{ID: 1, GameIdentity: "grinder"})
	publisher := &fakePublisher{}
	svc := NewUserService(repo, publisher)

	updated, err := svc.UpdateGameIdentity(context.Background(), 1, "bomber")

	require.NoError(t, err)
	assert.Equal(t, "bomber", updated.GameIdentity)

	require.Len(t, publisher.changes, 1)
	change := publisher.changes[0]
	assert.Equal(t, uint(1), change.UserID)
	assert.Equal(t, "grinder", change.Before.GameIdentity)
	assert.Equal(t, "bomber", change.After.GameIdentity)
}

func TestUserService_UpdateChallengeBadges(t *testing.T) {
	repo := newFakeUserRepo(domain.UserProfile{ID: 1})
	publisher := &fakePublisher{}
	svc := NewUserService(repo, publisher)

	t.Run("within the display cap", func(t *testing.T) {
		updated, err := svc.UpdateChallengeBadges(context.Background(), 1, []string{"a", "b", "c"})

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, updated.ChallengeBadges)
		assert.Len(t, publisher.changes, 1)
	})

	t.Run("over the cap", func(t *testing.T) {
		_, err := svc.UpdateChallengeBadges(context.Background(), 1, []string{"a", "b", "c", "d"})

		assert.ErrorIs(t, err, ErrTooManyChallengeBadges)
		assert.Len(t, publisher.changes, 1, "a rejected update publishes nothing")
	})
}

func TestUserService_SetupProfile(t *testing.T) {
	repo := newFakeUserRepo(
		domain.UserProfile{ID: 1},
		domain.UserProfile{ID: 2, DisplayName: "taken-name"},
	)
	svc := NewUserService(repo, &fakePublisher{})

	t.Run("sets name and handicap", func(t *testing.T) {
		updated, err := svc.SetupProfile(context.Background(), 1, "fresh-name", 9.2)

		require.NoError(t, err)
		assert.Equal(t, "fresh-name", updated.DisplayName)
		require.NotNil(t, updated.Handicap)
		assert.Equal(t, 9.2, *updated.Handicap)
		assert.True(t, updated.HasProfile())
	})

	t.Run("rejects a taken display name", func(t *testing.T) {
		_, err := svc.SetupProfile(context.Background(), 1, "taken-name", 9.2)

		assert.ErrorIs(t, err, ErrDisplayNameTaken)
	})
}

func TestUserService_OnboardingFlags(t *testing.T) {
	repo := newFakeUserRepo(domain.UserProfile{ID: 1, UserType: domain.UserTypePro})
	svc := NewUserService(repo, &fakePublisher{})
	ctx := context.Background()

	_, err := svc.CompleteLocker(ctx, 1)
	require.NoError(t, err)

	_, err = svc.SubmitVerification(ctx, 1)
	require.NoError(t, err)

	_, err = svc.AcceptTerms(ctx, 1)
	require.NoError(t, err)

	user, err := svc.CompleteWelcomeTour(ctx, 1)
	require.NoError(t, err)

	assert.True(t, user.LockerCompleted)
	assert.NotNil(t, user.VerificationSubmittedAt)
	assert.False(t, user.NeedsVerification())
	assert.True(t, user.AcceptedTerms)
	assert.True(t, user.HasSeenWelcomeTour)
}

func TestUserService_RegisterPushToken(t *testing.T) {
	repo := newFakeUserRepo(domain.UserProfile{ID: 1})
	svc := NewUserService(repo, &fakePublisher{})

	updated, err := svc.RegisterPushToken(context.Background(), 1, "ExponentPushToken[abc]")

	require.NoError(t, err)
	assert.Equal(t, "ExponentPushToken[abc]", updated.ExpoPushToken)
}
