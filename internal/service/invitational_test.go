package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository"
)

type fakeInvitationalRepo struct {
	invitationals []domain.Invitational

	updatedID     uint
	updatedRoster []domain.RosterEntry
	updateCalls   int
}

func (f *fakeInvitationalRepo) Create(_ context.Context, invitational domain.Invitational) (domain.Invitational, error) {
	invitational.ID = uint(len(f.invitationals) + 1)
	f.invitationals = append(f.invitationals, invitational)
	return invitational, nil
}

func (f *fakeInvitationalRepo) FindByID(_ context.Context, id uint) (domain.Invitational, error) {
	for _, inv := range f.invitationals {
		if inv.ID == id {
			return inv, nil
		}
	}
	return domain.Invitational{}, repository.ErrInvitationalNotFound
}

func (f *fakeInvitationalRepo) FindByStatuses(_ context.Context, statuses []domain.InvitationalStatus) ([]domain.Invitational, error) {
	var out []domain.Invitational
	for _, inv := range f.invitationals {
		for _, status := range statuses {
			if inv.Status == status {
				out = append(out, inv)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeInvitationalRepo) UpdateRoster(_ context.Context, id uint, roster []domain.RosterEntry) error {
	f.updateCalls++
	f.updatedID = id
	f.updatedRoster = roster
	return nil
}

type fakeInvitationalUserRepo struct {
	users map[uint]domain.UserProfile
}

func (f *fakeInvitationalUserRepo) FindByID(_ context.Context, id uint) (domain.UserProfile, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.UserProfile{}, repository.ErrUserNotFound
	}
	return user, nil
}

type fakeClaimNotifier struct {
	claims []uint
}

func (f *fakeClaimNotifier) NotifyInviteClaimed(_ context.Context, _ domain.Invitational, claimerID uint) {
	f.claims = append(f.claims, claimerID)
}

func invitationalFixture() (*fakeInvitationalRepo, *fakeInvitationalUserRepo, *fakeClaimNotifier, *InvitationalService) {
	repo := &fakeInvitationalRepo{invitationals: []domain.Invitational{
		{
			ID:     1,
			Name:   "Spring Member-Guest",
			HostID: 10,
			Status: domain.InvitationalOpen,
			Roster: []domain.RosterEntry{
				{UserID: 10, DisplayName: "host"},
				{DisplayName: "Uncle Rico", InviteCode: "ABC123", Ghost: true},
				{DisplayName: "Happy", InviteCode: "ZZZ999", Ghost: true},
			},
		},
		{
			ID:     2,
			Name:   "Closed Classic",
			HostID: 11,
			Status: domain.InvitationalClosed,
			Roster: []domain.RosterEntry{
				{DisplayName: "Ghost", InviteCode: "DDD444", Ghost: true},
			},
		},
	}}
	users := &fakeInvitationalUserRepo{users: map[uint]domain.UserProfile{
		10: {ID: 10, DisplayName: "host"},
		20: {ID: 20, DisplayName: "claimer"},
	}}
	notifier := &fakeClaimNotifier{}

	return repo, users, notifier, NewInvitationalService(repo, users, notifier)
}

func TestInvitationalService_CreateInvitational(t *testing.T) {
	_, _, _, svc := invitationalFixture()

	created, err := svc.CreateInvitational(context.Background(), 10, "Fall Four-Ball", []string{"Shooter", "Danny"})

	require.NoError(t, err)
	require.Len(t, created.Roster, 3)

	host := created.Roster[0]
	assert.Equal(t, uint(10), host.UserID)
	assert.False(t, host.Ghost)
	assert.Empty(t, host.InviteCode)

	codes := map[string]bool{}
	for _, entry := range created.Roster[1:] {
		assert.True(t, entry.Ghost)
		assert.Zero(t, entry.UserID)
		assert.Len(t, entry.InviteCode, 6)
		codes[entry.InviteCode] = true
	}
	assert.Len(t, codes, 2, "invite codes must be distinct")

	assert.Equal(t, domain.InvitationalOpen, created.Status)
}

func TestInvitationalService_GetInvitational(t *testing.T) {
	_, _, _, svc := invitationalFixture()

	found, err := svc.GetInvitational(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Spring Member-Guest", found.Name)

	_, err = svc.GetInvitational(context.Background(), 99)
	assert.ErrorIs(t, err, ErrInvitationalNotFound)
}

func TestInvitationalService_ClaimInviteCode_Success(t *testing.T) {
	repo, _, notifier, svc := invitationalFixture()

	result, err := svc.ClaimInviteCode(context.Background(), 20, "abc123")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, uint(1), result.InvitationalID)
	assert.Equal(t, "Spring Member-Guest", result.InvitationalName)
	assert.Empty(t, result.Error)

	require.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, uint(1), repo.updatedID)

	claimed := repo.updatedRoster[1]
	assert.Equal(t, uint(20), claimed.UserID)
	assert.Equal(t, "claimer", claimed.DisplayName)
	assert.False(t, claimed.Ghost)
	assert.Empty(t, claimed.InviteCode)

	// The other ghost slot is untouched.
	assert.Equal(t, "ZZZ999", repo.updatedRoster[2].InviteCode)

	assert.Equal(t, []uint{20}, notifier.claims)
}

func TestInvitationalService_ClaimInviteCode_TrimsAndUppercases(t *testing.T) {
	_, _, _, svc := invitationalFixture()

	result, err := svc.ClaimInviteCode(context.Background(), 20, "  zzz999 ")

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestInvitationalService_ClaimInviteCode_Failures(t *testing.T) {
	tests := []struct {
		name      string
		userID    uint
		code      string
		wantError string
	}{
		{
			name:      "wrong length",
			userID:    20,
			code:      "ABC",
			wantError: "invite code must be 6 characters",
		},
		{
			name:      "unknown code",
			userID:    20,
			code:      "NOPE00",
			wantError: "invite code not found or already claimed",
		},
		{
			name:      "code on a closed invitational",
			userID:    20,
			code:      "DDD444",
			wantError: "invite code not found or already claimed",
		},
		{
			name:      "claimer already on the roster",
			userID:    10,
			code:      "ABC123",
			wantError: "you are already on this roster",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, notifier, svc := invitationalFixture()

			result, err := svc.ClaimInviteCode(context.Background(), tt.userID, tt.code)

			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, tt.wantError, result.Error)
			assert.Zero(t, repo.updateCalls)
			assert.Empty(t, notifier.claims)
		})
	}
}

func TestInvitationalService_ClaimInviteCode_AlreadyClaimedSlot(t *testing.T) {
	repo, _, _, svc := invitationalFixture()

	first, err := svc.ClaimInviteCode(context.Background(), 20, "ABC123")
	require.NoError(t, err)
	require.True(t, first.Success)

	// Reflect the write the way the store would.
	repo.invitationals[0].Roster = repo.updatedRoster

	second, err := svc.ClaimInviteCode(context.Background(), 20, "ABC123")
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Equal(t, "invite code not found or already claimed", second.Error)
}
