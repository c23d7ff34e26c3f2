package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository"
)

const inviteCodeLength = 6

var ErrInvitationalNotFound = repository.ErrInvitationalNotFound

type InvitationalRepository interface {
	Create(ctx context.Context, invitational domain.Invitational) (domain.Invitational, error)
	FindByID(ctx context.Context, id uint) (domain.Invitational, error)
	FindByStatuses(ctx context.Context, statuses []domain.InvitationalStatus) ([]domain.Invitational, error)
	UpdateRoster(ctx context.Context, id uint, roster []domain.RosterEntry) error
}

type InvitationalUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.UserProfile, error)
}

type ClaimNotifier interface {
	NotifyInviteClaimed(ctx context.Context, invitational domain.Invitational, claimerID uint)
}

type InvitationalService struct {
	repo     InvitationalRepository
	users    InvitationalUserRepository
	notifier ClaimNotifier
}

func NewInvitationalService(repo InvitationalRepository, users InvitationalUserRepository, notifier ClaimNotifier) *InvitationalService {
	return &InvitationalService{
		repo:     repo,
		users:    users,
		notifier: notifier,
	}
}

// CreateInvitational builds the roster with ghost entries, one invite code
// per unclaimed slot.
func (s *InvitationalService) CreateInvitational(ctx context.Context, hostID uint, name string, ghostNames []string) (domain.Invitational, error) {
	host, err := s.users.FindByID(ctx, hostID)
	if err != nil {
		return domain.Invitational{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}

	roster := []domain.RosterEntry{{
		UserID:      host.ID,
		DisplayName: host.DisplayName,
	}}
	for _, ghostName := range ghostNames {
		roster = append(roster, domain.RosterEntry{
			DisplayName: ghostName,
			InviteCode:  newInviteCode(),
			Ghost:       true,
		})
	}

	created, err := s.repo.Create(ctx, domain.Invitational{
		Name:   name,
		HostID: hostID,
		Status: domain.InvitationalOpen,
		Roster: roster,
	})
	if err != nil {
		return domain.Invitational{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *InvitationalService) GetInvitational(ctx context.Context, id uint) (domain.Invitational, error) {
	invitational, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationalNotFound) {
			return domain.Invitational{}, ErrInvitationalNotFound
		}
		return domain.Invitational{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return invitational, nil
}

// ClaimInviteCode looks the code up across open and active invitationals and
// replaces the matching ghost entry with the caller. Domain failures come
// back inside the result, never as errors.
func (s *InvitationalService) ClaimInviteCode(ctx context.Context, userID uint, code string) (domain.ClaimInviteResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != inviteCodeLength {
		return domain.ClaimInviteResult{Error: "invite code must be 6 characters"}, nil
	}

	claimer, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return domain.ClaimInviteResult{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}

	invitationals, err := s.repo.FindByStatuses(ctx, []domain.InvitationalStatus{
		domain.InvitationalOpen,
		domain.InvitationalActive,
	})
	if err != nil {
		return domain.ClaimInviteResult{}, fmt.Errorf("s.repo.FindByStatuses -> %w", err)
	}

	for _, invitational := range invitationals {
		idx := -1
		onRoster := false
		for i, entry := range invitational.Roster {
			if entry.UserID == userID {
				onRoster = true
			}
			if entry.Ghost && entry.InviteCode == code {
				idx = i
			}
		}
		if idx < 0 {
			continue
		}
		if onRoster {
			return domain.ClaimInviteResult{Error: "you are already on this roster"}, nil
		}

		roster := invitational.Roster
		roster[idx] = domain.RosterEntry{
			UserID:      claimer.ID,
			DisplayName: claimer.DisplayName,
		}
		if err := s.repo.UpdateRoster(ctx, invitational.ID, roster); err != nil {
			return domain.ClaimInviteResult{}, fmt.Errorf("s.repo.UpdateRoster -> %w", err)
		}

		if s.notifier != nil {
			s.notifier.NotifyInviteClaimed(ctx, invitational, claimer.ID)
		}

		zap.L().Info("invite code claimed",
			zap.Uint("invitational_id", invitational.ID),
			zap.Uint("user_id", claimer.ID))

		return domain.ClaimInviteResult{
			Success:          true,
			InvitationalID:   invitational.ID,
			InvitationalName: invitational.Name,
		}, nil
	}

	return domain.ClaimInviteResult{Error: "invite code not found or already claimed"}, nil
}

// newInviteCode derives a 6-char upper-alphanumeric code from a fresh uuid.
func newInviteCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return raw[:inviteCodeLength]
}
