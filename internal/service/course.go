package service

import (
	"context"
	"fmt"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository"
)

var ErrCourseLeaderNotFound = repository.ErrCourseLeaderNotFound

type CourseLeaderReader interface {
	FindByCourseID(ctx context.Context, courseID string) (domain.CourseLeader, error)
}

type LeaderboardReader interface {
	ListAll(ctx context.Context) ([]domain.Leaderboard, error)
}

// CourseService serves the read side of courses: leader documents and the
// leaderboards. Both are written elsewhere (leader worker, score ingestion)
// and read here as-is, eventual consistency included.
type CourseService struct {
	leaders CourseLeaderReader
	boards  LeaderboardReader
}

func NewCourseService(leaders CourseLeaderReader, boards LeaderboardReader) *CourseService {
	return &CourseService{
		leaders: leaders,
		boards:  boards,
	}
}

func (s *CourseService) GetCourseLeader(ctx context.Context, courseID string) (domain.CourseLeader, error) {
	leader, err := s.leaders.FindByCourseID(ctx, courseID)
	if err != nil {
		return domain.CourseLeader{}, fmt.Errorf("s.leaders.FindByCourseID -> %w", err)
	}

	return leader, nil
}

func (s *CourseService) ListLeaderboards(ctx context.Context) ([]domain.Leaderboard, error) {
	boards, err := s.boards.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.boards.ListAll -> %w", err)
	}

	return boards, nil
}
