package repository

import (
	"context"
	"fmt"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository/dao"
)

type SocialDAO interface {
	FindThreadsByParticipant(ctx context.Context, userID uint) ([]dao.MessageThread, error)
	UpdateThreadParticipantBadges(ctx context.Context, threadID uint, badges map[uint][]string) error
	InsertThread(ctx context.Context, thread dao.MessageThread) (dao.MessageThread, error)
	FindMembershipsByUser(ctx context.Context, userID uint) ([]dao.LeagueMember, error)
	UpdateMemberBadges(ctx context.Context, memberID uint, badges []string) error
	InsertLeague(ctx context.Context, league dao.League) (dao.League, error)
	InsertMember(ctx context.Context, member dao.LeagueMember) (dao.LeagueMember, error)
}

type SocialRepository struct {
	dao SocialDAO
}

func NewSocialRepository(dao SocialDAO) *SocialRepository {
	return &SocialRepository{
		dao: dao,
	}
}

func (r *SocialRepository) FindThreadsByParticipant(ctx context.Context, userID uint) ([]domain.MessageThread, error) {
	found, err := r.dao.FindThreadsByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindThreadsByParticipant -> %w", err)
	}

	threads := make([]domain.MessageThread, 0, len(found))
	for _, t := range found {
		threads = append(threads, domain.MessageThread{
			ID:                t.ID,
			ParticipantIDs:    t.ParticipantIDs,
			ParticipantBadges: t.ParticipantBadges,
			CreatedAt:         t.CreatedAt,
			UpdatedAt:         t.UpdatedAt,
		})
	}

	return threads, nil
}

func (r *SocialRepository) UpdateThreadParticipantBadges(ctx context.Context, threadID uint, badges map[uint][]string) error {
	if err := r.dao.UpdateThreadParticipantBadges(ctx, threadID, badges); err != nil {
		return fmt.Errorf("r.dao.UpdateThreadParticipantBadges -> %w", err)
	}

	return nil
}

func (r *SocialRepository) CreateThread(ctx context.Context, thread domain.MessageThread) (domain.MessageThread, error) {
	created, err := r.dao.InsertThread(ctx, dao.MessageThread{
		ParticipantIDs:    thread.ParticipantIDs,
		ParticipantBadges: thread.ParticipantBadges,
	})
	if err != nil {
		return domain.MessageThread{}, fmt.Errorf("r.dao.InsertThread -> %w", err)
	}

	thread.ID = created.ID
	thread.CreatedAt = created.CreatedAt
	thread.UpdatedAt = created.UpdatedAt

	return thread, nil
}

func (r *SocialRepository) FindMembershipsByUser(ctx context.Context, userID uint) ([]domain.LeagueMember, error) {
	found, err := r.dao.FindMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindMembershipsByUser -> %w", err)
	}

	members := make([]domain.LeagueMember, 0, len(found))
	for _, m := range found {
		members = append(members, domain.LeagueMember{
			ID:              m.ID,
			LeagueID:        m.LeagueID,
			UserID:          m.UserID,
			DisplayName:     m.DisplayName,
			ChallengeBadges: m.ChallengeBadges,
			JoinedAt:        m.JoinedAt,
		})
	}

	return members, nil
}

func (r *SocialRepository) UpdateMemberBadges(ctx context.Context, memberID uint, badges []string) error {
	if err := r.dao.UpdateMemberBadges(ctx, memberID, badges); err != nil {
		return fmt.Errorf("r.dao.UpdateMemberBadges -> %w", err)
	}

	return nil
}

func (r *SocialRepository) CreateLeague(ctx context.Context, league domain.League) (domain.League, error) {
	created, err := r.dao.InsertLeague(ctx, dao.League{
		Name: league.Name,
	})
	if err != nil {
		return domain.League{}, fmt.Errorf("r.dao.InsertLeague -> %w", err)
	}

	league.ID = created.ID
	league.CreatedAt = created.CreatedAt
	league.UpdatedAt = created.UpdatedAt

	return league, nil
}

func (r *SocialRepository) CreateMember(ctx context.Context, member domain.LeagueMember) (domain.LeagueMember, error) {
	created, err := r.dao.InsertMember(ctx, dao.LeagueMember{
		LeagueID:        member.LeagueID,
		UserID:          member.UserID,
		DisplayName:     member.DisplayName,
		ChallengeBadges: member.ChallengeBadges,
		JoinedAt:        member.JoinedAt,
	})
	if err != nil {
		return domain.LeagueMember{}, fmt.Errorf("r.dao.InsertMember -> %w", err)
	}

	member.ID = created.ID

	return member, nil
}
