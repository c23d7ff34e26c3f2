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

type fakeGateUserRepo struct {
	users map[uint]domain.UserProfile
	err   error
}

func (f *fakeGateUserRepo) FindByID(_ context.Context, id uint) (domain.UserProfile, error) {
	if f.err != nil {
		return domain.UserProfile{}, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return domain.UserProfile{}, repository.ErrUserNotFound
	}
	return user, nil
}

type fakeGateEffects struct {
	chimes chan struct{}
}

func newFakeGateEffects() *fakeGateEffects {
	return &fakeGateEffects{chimes: make(chan struct{}, 8)}
}

func (f *fakeGateEffects) PlayOpenChime(context.Context, uint) error {
	f.chimes <- struct{}{}
	return nil
}

func (f *fakeGateEffects) RefreshLocation(context.Context, uint) error { return nil }

func (f *fakeGateEffects) SeedNearbyCourses(context.Context, uint) error { return nil }

func floatPtr(f float64) *float64 { return &f }

func completeGolfer(id uint) domain.UserProfile {
	return domain.UserProfile{
		ID:                 id,
		UserType:           domain.UserTypeGolfer,
		DisplayName:        "chip-in-charlie",
		Handicap:           floatPtr(12.4),
		LockerCompleted:    true,
		AcceptedTerms:      true,
		HasSeenWelcomeTour: true,
	}
}

func TestGateService_Resolve(t *testing.T) {
	now := time.Now()

	verifiedPro := completeGolfer(2)
	verifiedPro.UserType = domain.UserTypePro
	verifiedPro.VerificationSubmittedAt = &now

	unverifiedPro := verifiedPro
	unverifiedPro.ID = 3
	unverifiedPro.VerificationSubmittedAt = nil

	courseUser := domain.UserProfile{
		ID:                      4,
		UserType:                domain.UserTypeCourse,
		VerificationSubmittedAt: &now,
		AcceptedTerms:           true,
		HasSeenWelcomeTour:      true,
	}

	noType := domain.UserProfile{ID: 5}

	noProfile := domain.UserProfile{ID: 6, UserType: domain.UserTypeGolfer}

	noLocker := domain.UserProfile{
		ID:          7,
		UserType:    domain.UserTypeGolfer,
		DisplayName: "shanks",
		Handicap:    floatPtr(20),
	}

	noTerms := completeGolfer(8)
	noTerms.AcceptedTerms = false

	noTour := completeGolfer(9)
	noTour.HasSeenWelcomeTour = false

	users := map[uint]domain.UserProfile{
		1: completeGolfer(1),
		2: verifiedPro,
		3: unverifiedPro,
		4: courseUser,
		5: noType,
		6: noProfile,
		7: noLocker,
		8: noTerms,
		9: noTour,
	}

	tests := []struct {
		name         string
		userID       uint
		currentRoute string
		want         domain.GateDecision
	}{
		{
			name:         "anonymous stays on landing",
			userID:       0,
			currentRoute: domain.RouteLanding,
			want:         domain.StayPut(),
		},
		{
			name:         "anonymous stays on auth routes",
			userID:       0,
			currentRoute: "/auth/login",
			want:         domain.StayPut(),
		},
		{
			name:         "anonymous bounced off protected route",
			userID:       0,
			currentRoute: domain.RouteClubhouse,
			want:         domain.RedirectTo(domain.RouteLanding),
		},
		{
			name:         "missing profile document goes to user type",
			userID:       99,
			currentRoute: domain.RouteClubhouse,
			want:         domain.RedirectTo(domain.RouteUserType),
		},
		{
			name:         "missing profile document already on user type stays",
			userID:       99,
			currentRoute: domain.RouteUserType,
			want:         domain.StayPut(),
		},
		{
			name:         "in-progress onboarding route is never redirected",
			userID:       8,
			currentRoute: domain.RouteLocker,
			want:         domain.StayPut(),
		},
		{
			name:         "welcome tour counts as onboarding flow",
			userID:       9,
			currentRoute: domain.RouteWelcomeTour,
			want:         domain.StayPut(),
		},
		{
			name:         "missing user type",
			userID:       5,
			currentRoute: domain.RouteClubhouse,
			want:         domain.RedirectTo(domain.RouteUserType),
		},
		{
			name:         "golfer with empty profile sent to setup",
			userID:       6,
			currentRoute: domain.RouteClubhouse,
			want:         domain.RedirectTo(domain.RouteSetupProfile),
		},
		{
			name:         "profile done but locker pending",
			userID:       7,
			currentRoute: domain.RouteClubhouse,
			want:         domain.RedirectTo(domain.RouteLocker),
		},
		{
			name:         "course account skips profile and locker",
			userID:       4,
			currentRoute: domain.RouteLanding,
			want:         domain.RedirectTo(domain.RouteClubhouse),
		},
		{
			name:         "pro without verification",
			userID:       3,
			currentRoute: domain.RouteClubhouse,
			want:         domain.RedirectTo(domain.RouteVerification),
		},
		{
			name:         "verified pro passes the verification gate",
			userID:       2,
			currentRoute: domain.RouteClubhouse,
			want:         domain.StayPut(),
		},
		{
			name:         "terms not accepted",
			userID:       8,
			currentRoute: domain.RouteClubhouse,
			want:         domain.RedirectTo(domain.RouteTerms),
		},
		{
			name:         "welcome tour not seen",
			userID:       9,
			currentRoute: domain.RouteClubhouse,
			want:         domain.RedirectTo(domain.RouteWelcomeTour),
		},
		{
			name:         "fully onboarded on landing goes to clubhouse",
			userID:       1,
			currentRoute: domain.RouteLanding,
			want:         domain.RedirectTo(domain.RouteClubhouse),
		},
		{
			name:         "fully onboarded elsewhere stays",
			userID:       1,
			currentRoute: "/courses/pebble-beach",
			want:         domain.StayPut(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewGateService(&fakeGateUserRepo{users: users}, newFakeGateEffects())

			got := svc.Resolve(context.Background(), domain.NewGateSession(), tt.userID, tt.currentRoute)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGateService_Resolve_ProfileReadErrorStaysPut(t *testing.T) {
	repo := &fakeGateUserRepo{err: errors.New("connection reset")}
	svc := NewGateService(repo, newFakeGateEffects())

	got := svc.Resolve(context.Background(), domain.NewGateSession(), 1, domain.RouteClubhouse)

	assert.Equal(t, domain.StayPut(), got)
}

func TestGateService_Resolve_FirstMatchWins(t *testing.T) {
	// Missing user type and missing profile at once: the user-type rule sits
	// earlier in the order, so it must win.
	repo := &fakeGateUserRepo{users: map[uint]domain.UserProfile{1: {ID: 1}}}
	svc := NewGateService(repo, newFakeGateEffects())

	got := svc.Resolve(context.Background(), domain.NewGateSession(), 1, domain.RouteClubhouse)

	assert.Equal(t, domain.RedirectTo(domain.RouteUserType), got)
}

func TestGateService_Resolve_SideEffectsFireOncePerSession(t *testing.T) {
	repo := &fakeGateUserRepo{users: map[uint]domain.UserProfile{1: completeGolfer(1)}}
	effects := newFakeGateEffects()
	svc := NewGateService(repo, effects)

	session := domain.NewGateSession()

	svc.Resolve(context.Background(), session, 1, domain.RouteClubhouse)

	select {
	case <-effects.chimes:
	case <-time.After(time.Second):
		t.Fatal("expected the open chime on the first pass")
	}

	svc.Resolve(context.Background(), session, 1, domain.RouteClubhouse)
	svc.Resolve(context.Background(), session, 1, domain.RouteLanding)

	select {
	case <-effects.chimes:
		t.Fatal("side effects fired more than once for the session")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestGateService_Resolve_SideEffectsSkippedWhileOnboarding(t *testing.T) {
	incomplete := domain.UserProfile{ID: 1, UserType: domain.UserTypeGolfer}
	repo := &fakeGateUserRepo{users: map[uint]domain.UserProfile{1: incomplete}}
	effects := newFakeGateEffects()
	svc := NewGateService(repo, effects)

	session := domain.NewGateSession()
	svc.Resolve(context.Background(), session, 1, domain.RouteClubhouse)

	select {
	case <-effects.chimes:
		t.Fatal("side effects must not fire before onboarding completes")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestGateSession_MarkOpened(t *testing.T) {
	session := domain.NewGateSession()

	require.True(t, session.MarkOpened())
	require.False(t, session.MarkOpened())
	require.False(t, session.MarkOpened())
}
