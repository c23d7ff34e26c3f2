package repository

import (
	"context"
	"fmt"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository/dao"
)

type LeaderboardDAO interface {
	ListAll(ctx context.Context) ([]dao.Leaderboard, error)
	FindByCourseID(ctx context.Context, courseID string) (dao.Leaderboard, error)
	Insert(ctx context.Context, board dao.Leaderboard) (dao.Leaderboard, error)
	SaveScoreArrays(ctx context.Context, boards []dao.Leaderboard) error
}

type LeaderboardRepository struct {
	dao LeaderboardDAO
}

func NewLeaderboardRepository(dao LeaderboardDAO) *LeaderboardRepository {
	return &LeaderboardRepository{
		dao: dao,
	}
}

func (r *LeaderboardRepository) ListAll(ctx context.Context) ([]domain.Leaderboard, error) {
	found, err := r.dao.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListAll -> %w", err)
	}

	boards := make([]domain.Leaderboard, 0, len(found))
	for _, b := range found {
		boards = append(boards, r.daoToDomain(b))
	}

	return boards, nil
}

func (r *LeaderboardRepository) SaveScoreArrays(ctx context.Context, boards []domain.Leaderboard) error {
	daoBoards := make([]dao.Leaderboard, 0, len(boards))
	for _, b := range boards {
		daoBoards = append(daoBoards, r.domainToDAO(b))
	}

	if err := r.dao.SaveScoreArrays(ctx, daoBoards); err != nil {
		return fmt.Errorf("r.dao.SaveScoreArrays -> %w", err)
	}

	return nil
}

func (r *LeaderboardRepository) daoToDomain(b dao.Leaderboard) domain.Leaderboard {
	return domain.Leaderboard{
		ID:        b.ID,
		CourseID:  b.CourseID,
		AllTime:   entriesToDomain(b.AllTime),
		Eighteen:  entriesToDomain(b.Eighteen),
		Nine:      entriesToDomain(b.Nine),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (r *LeaderboardRepository) domainToDAO(b domain.Leaderboard) dao.Leaderboard {
	return dao.Leaderboard{
		ID:       b.ID,
		CourseID: b.CourseID,
		AllTime:  entriesToDAO(b.AllTime),
		Eighteen: entriesToDAO(b.Eighteen),
		Nine:     entriesToDAO(b.Nine),
	}
}

func entriesToDomain(entries []dao.ScoreEntry) []domain.LeaderboardEntry {
	out := make([]domain.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.LeaderboardEntry{
			UserID:          e.UserID,
			DisplayName:     e.DisplayName,
			ChallengeBadges: e.ChallengeBadges,
			NetScore:        e.NetScore,
			PostedAt:        e.PostedAt,
		})
	}
	return out
}

func entriesToDAO(entries []domain.LeaderboardEntry) []dao.ScoreEntry {
	out := make([]dao.ScoreEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, dao.ScoreEntry{
			UserID:          e.UserID,
			DisplayName:     e.DisplayName,
			ChallengeBadges: e.ChallengeBadges,
			NetScore:        e.NetScore,
			PostedAt:        e.PostedAt,
		})
	}
	return out
}
