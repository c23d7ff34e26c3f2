package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
)

type ScoreRepository interface {
	CreateScore(ctx context.Context, score domain.Score) (domain.Score, error)
}

// LeaderRecomputer triggers the async course-leader recompute after a score
// lands. The badge engine's settle delay exists to wait for this.
type LeaderRecomputer interface {
	TriggerRecompute(courseID, courseName string)
}

// ScoreBroadcaster pushes score events to live round watchers.
type ScoreBroadcaster interface {
	BroadcastScore(score domain.Score)
}

type ScoreService struct {
	scores      ScoreRepository
	recomputer  LeaderRecomputer
	badges      *BadgeService
	broadcaster ScoreBroadcaster
}

func NewScoreService(scores ScoreRepository, recomputer LeaderRecomputer, badges *BadgeService, broadcaster ScoreBroadcaster) *ScoreService {
	return &ScoreService{
		scores:      scores,
		recomputer:  recomputer,
		badges:      badges,
		broadcaster: broadcaster,
	}
}

// SubmitScore records the score, kicks the leader recompute, and runs the
// badge engine. The returned badges are the ones newly awarded.
func (s *ScoreService) SubmitScore(ctx context.Context, score domain.Score, hadHoleInOne bool, holeNumber int) (domain.Score, []domain.Badge, error) {
	created, err := s.scores.CreateScore(ctx, score)
	if err != nil {
		return domain.Score{}, nil, fmt.Errorf("s.scores.CreateScore -> %w", err)
	}

	s.recomputer.TriggerRecompute(created.CourseID, created.CourseName)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastScore(created)
	}

	awarded := s.badges.AwardBadgesForScore(ctx, created.UserID, created.CourseID, created.CourseName, created.Gross, hadHoleInOne, holeNumber)
	if len(awarded) > 0 {
		zap.L().Info("badges awarded",
			zap.Uint("user_id", created.UserID),
			zap.Int("count", len(awarded)))
	}

	return created, awarded, nil
}
