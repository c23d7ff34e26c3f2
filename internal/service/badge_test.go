package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
)

type fakeBadgeUserRepo struct {
	user    domain.UserProfile
	findErr error

	updated     *domain.UserProfile
	updateCalls int
}

func (f *fakeBadgeUserRepo) FindByID(context.Context, uint) (domain.UserProfile, error) {
	if f.findErr != nil {
		return domain.UserProfile{}, f.findErr
	}
	return f.user, nil
}

func (f *fakeBadgeUserRepo) Update(_ context.Context, user domain.UserProfile) (domain.UserProfile, error) {
	f.updateCalls++
	f.updated = &user
	return user, nil
}

type fakeBadgeLeaderRepo struct {
	leader      domain.CourseLeader
	leaderErr   error
	lowmanCount int64

	leaderReads int
	appended    []domain.HoleInOneRecord
}

func (f *fakeBadgeLeaderRepo) FindByCourseID(context.Context, string) (domain.CourseLeader, error) {
	f.leaderReads++
	if f.leaderErr != nil {
		return domain.CourseLeader{}, f.leaderErr
	}
	return f.leader, nil
}

func (f *fakeBadgeLeaderRepo) AppendHoleInOne(_ context.Context, _, _ string, record domain.HoleInOneRecord) error {
	f.appended = append(f.appended, record)
	return nil
}

func (f *fakeBadgeLeaderRepo) CountLowmanCourses(context.Context, uint) (int64, error) {
	return f.lowmanCount, nil
}

func TestBadgeService_HoleInOne_AwardsUnconditionally(t *testing.T) {
	users := &fakeBadgeUserRepo{user: domain.UserProfile{ID: 1, DisplayName: "ace-machine"}}
	leaders := &fakeBadgeLeaderRepo{}
	svc := NewBadgeService(users, leaders, 0)

	// Gross zero would skip the lowman branch entirely; the hole-in-one
	// branch must not care.
	awarded := svc.AwardBadgesForScore(context.Background(), 1, "c1", "Pebble Beach", 0, true, 7)

	require.Len(t, awarded, 1)
	assert.Equal(t, domain.BadgeHoleInOne, awarded[0].Type)
	assert.Equal(t, "c1", awarded[0].CourseID)

	require.NotNil(t, users.updated)
	require.Len(t, users.updated.Badges, 1)

	require.Len(t, leaders.appended, 1)
	assert.Equal(t, 7, leaders.appended[0].HoleNumber)
	assert.Equal(t, uint(1), leaders.appended[0].UserID)

	assert.Zero(t, leaders.leaderReads, "hole-in-one must not evaluate the lowman")
}

func TestBadgeService_ZeroGrossWithoutHoleInOne_NoAward(t *testing.T) {
	users := &fakeBadgeUserRepo{user: domain.UserProfile{ID: 1}}
	leaders := &fakeBadgeLeaderRepo{}
	svc := NewBadgeService(users, leaders, 0)

	awarded := svc.AwardBadgesForScore(context.Background(), 1, "c1", "Pebble Beach", 0, false, 0)

	assert.Nil(t, awarded)
	assert.Zero(t, users.updateCalls)
	assert.Zero(t, leaders.leaderReads)
}

func TestBadgeService_UserLoadFailure_SkipsAwards(t *testing.T) {
	users := &fakeBadgeUserRepo{findErr: errors.New("read timeout")}
	svc := NewBadgeService(users, &fakeBadgeLeaderRepo{}, 0)

	awarded := svc.AwardBadgesForScore(context.Background(), 1, "c1", "Pebble Beach", 72, true, 3)

	assert.Nil(t, awarded)
}

func TestBadgeService_Lowman_AwardedWhenLeading(t *testing.T) {
	users := &fakeBadgeUserRepo{user: domain.UserProfile{ID: 1, DisplayName: "lowman"}}
	leaders := &fakeBadgeLeaderRepo{
		leader:      domain.CourseLeader{CourseID: "c1", LowmanUserID: 1},
		lowmanCount: 1,
	}
	svc := NewBadgeService(users, leaders, 0)

	awarded := svc.AwardBadgesForScore(context.Background(), 1, "c1", "Pebble Beach", 68, false, 0)

	require.Len(t, awarded, 1)
	assert.Equal(t, domain.BadgeLowman, awarded[0].Type)
	require.NotNil(t, awarded[0].Score)
	assert.Equal(t, 68, *awarded[0].Score)
}

func TestBadgeService_Lowman_NotLeadingNoAward(t *testing.T) {
	users := &fakeBadgeUserRepo{user: domain.UserProfile{ID: 1}}
	leaders := &fakeBadgeLeaderRepo{
		leader: domain.CourseLeader{CourseID: "c1", LowmanUserID: 2},
	}
	svc := NewBadgeService(users, leaders, 0)

	awarded := svc.AwardBadgesForScore(context.Background(), 1, "c1", "Pebble Beach", 68, false, 0)

	assert.Nil(t, awarded)
	assert.Zero(t, users.updateCalls)
}

func TestBadgeService_ScratchAtTwoCourses(t *testing.T) {
	users := &fakeBadgeUserRepo{user: domain.UserProfile{ID: 1}}
	leaders := &fakeBadgeLeaderRepo{
		leader:      domain.CourseLeader{CourseID: "c2", LowmanUserID: 1},
		lowmanCount: 2,
	}
	svc := NewBadgeService(users, leaders, 0)

	awarded := svc.AwardBadgesForScore(context.Background(), 1, "c2", "Augusta", 70, false, 0)

	require.Len(t, awarded, 2)
	assert.Equal(t, domain.BadgeLowman, awarded[0].Type)
	assert.Equal(t, domain.BadgeScratch, awarded[1].Type)
}

func TestBadgeService_AceReplacesScratch(t *testing.T) {
	users := &fakeBadgeUserRepo{user: domain.UserProfile{
		ID: 1,
		Badges: []domain.Badge{
			{Type: domain.BadgeLowman, CourseID: "c1"},
			{Type: domain.BadgeLowman, CourseID: "c2"},
			{Type: domain.BadgeScratch},
		},
	}}
	leaders := &fakeBadgeLeaderRepo{
		leader:      domain.CourseLeader{CourseID: "c3", LowmanUserID: 1},
		lowmanCount: 3,
	}
	svc := NewBadgeService(users, leaders, 0)

	awarded := svc.AwardBadgesForScore(context.Background(), 1, "c3", "St Andrews", 69, false, 0)

	require.Len(t, awarded, 2)
	assert.Equal(t, domain.BadgeAce, awarded[1].Type)

	require.NotNil(t, users.updated)
	var tiers, lowmans int
	for _, b := range users.updated.Badges {
		switch {
		case b.Type.IsTier():
			tiers++
			assert.Equal(t, domain.BadgeAce, b.Type)
		case b.Type == domain.BadgeLowman:
			lowmans++
		}
	}
	assert.Equal(t, 1, tiers, "tier badges are exclusive")
	assert.Equal(t, 3, lowmans, "per-course lowman badges must survive a tier swap")
}

func TestBadgeService_TierNotReawarded(t *testing.T) {
	users := &fakeBadgeUserRepo{user: domain.UserProfile{
		ID:     1,
		Badges: []domain.Badge{{Type: domain.BadgeAce}},
	}}
	leaders := &fakeBadgeLeaderRepo{
		leader:      domain.CourseLeader{CourseID: "c1", LowmanUserID: 2},
		lowmanCount: 5,
	}
	svc := NewBadgeService(users, leaders, 0)

	awarded := svc.AwardBadgesForScore(context.Background(), 1, "c1", "Pebble Beach", 74, false, 0)

	assert.Nil(t, awarded)
	assert.Zero(t, users.updateCalls)
}

func TestBadgeService_SettleDelay_CancelledContext(t *testing.T) {
	users := &fakeBadgeUserRepo{user: domain.UserProfile{ID: 1}}
	leaders := &fakeBadgeLeaderRepo{
		leader: domain.CourseLeader{CourseID: "c1", LowmanUserID: 1},
	}
	svc := NewBadgeService(users, leaders, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	awarded := svc.AwardBadgesForScore(ctx, 1, "c1", "Pebble Beach", 70, false, 0)

	assert.Nil(t, awarded)
	assert.Zero(t, leaders.leaderReads)
}
