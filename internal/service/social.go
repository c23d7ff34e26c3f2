package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
)

var ErrThreadNeedsParticipants = errors.New("a thread needs at least two participants")

type SocialThreadRepository interface {
	CreateThread(ctx context.Context, thread domain.MessageThread) (domain.MessageThread, error)
	CreateLeague(ctx context.Context, league domain.League) (domain.League, error)
	CreateMember(ctx context.Context, member domain.LeagueMember) (domain.LeagueMember, error)
}

type SocialUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.UserProfile, error)
}

type SocialService struct {
	social SocialThreadRepository
	users  SocialUserRepository
}

func NewSocialService(social SocialThreadRepository, users SocialUserRepository) *SocialService {
	return &SocialService{
		social: social,
		users:  users,
	}
}

// CreateThread opens a message thread between the creator and the given
// participants. The participant badge map is stamped from each member's
// current profile; the fan-out keeps the copies fresh afterwards.
func (s *SocialService) CreateThread(ctx context.Context, creatorID uint, participantIDs []uint) (domain.MessageThread, error) {
	ids := dedupeIDs(append([]uint{creatorID}, participantIDs...))
	if len(ids) < 2 {
		return domain.MessageThread{}, ErrThreadNeedsParticipants
	}

	badges := make(map[uint][]string, len(ids))
	for _, id := range ids {
		user, err := s.users.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return domain.MessageThread{}, ErrUserNotFound
			}
			return domain.MessageThread{}, fmt.Errorf("s.users.FindByID -> %w", err)
		}
		badges[id] = user.ChallengeBadges
	}

	created, err := s.social.CreateThread(ctx, domain.MessageThread{
		ParticipantIDs:    ids,
		ParticipantBadges: badges,
	})
	if err != nil {
		return domain.MessageThread{}, fmt.Errorf("s.social.CreateThread -> %w", err)
	}

	return created, nil
}

func (s *SocialService) CreateLeague(ctx context.Context, founderID uint, name string) (domain.League, error) {
	league, err := s.social.CreateLeague(ctx, domain.League{Name: name})
	if err != nil {
		return domain.League{}, fmt.Errorf("s.social.CreateLeague -> %w", err)
	}

	if _, err := s.JoinLeague(ctx, league.ID, founderID); err != nil {
		return domain.League{}, fmt.Errorf("s.JoinLeague -> %w", err)
	}

	return league, nil
}

// JoinLeague adds the user's member row, stamping the denormalized display
// name and badge copy from the current profile.
func (s *SocialService) JoinLeague(ctx context.Context, leagueID, userID uint) (domain.LeagueMember, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return domain.LeagueMember{}, ErrUserNotFound
		}
		return domain.LeagueMember{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}

	member, err := s.social.CreateMember(ctx, domain.LeagueMember{
		LeagueID:        leagueID,
		UserID:          userID,
		DisplayName:     user.DisplayName,
		ChallengeBadges: user.ChallengeBadges,
		JoinedAt:        time.Now(),
	})
	if err != nil {
		return domain.LeagueMember{}, fmt.Errorf("s.social.CreateMember -> %w", err)
	}

	return member, nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
