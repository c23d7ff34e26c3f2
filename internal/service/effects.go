package service

import (
	"context"

	"go.uber.org/zap"
)

type NearbyCourseSource interface {
	ListCourseIDs(ctx context.Context) ([]string, error)
}

// LaunchEffects implements the one-shot app-open tasks. The chime and the
// location refresh happen on the client; the server's share is recording the
// open and pre-reading course data so the first clubhouse screen is warm.
type LaunchEffects struct {
	courses NearbyCourseSource
}

func NewLaunchEffects(courses NearbyCourseSource) *LaunchEffects {
	return &LaunchEffects{
		courses: courses,
	}
}

func (e *LaunchEffects) PlayOpenChime(ctx context.Context, userID uint) error {
	zap.L().Debug("session opened", zap.Uint("user_id", userID))
	return nil
}

func (e *LaunchEffects) RefreshLocation(ctx context.Context, userID uint) error {
	zap.L().Debug("location refresh requested", zap.Uint("user_id", userID))
	return nil
}

func (e *LaunchEffects) SeedNearbyCourses(ctx context.Context, userID uint) error {
	ids, err := e.courses.ListCourseIDs(ctx)
	if err != nil {
		return err
	}

	zap.L().Debug("nearby courses seeded",
		zap.Uint("user_id", userID),
		zap.Int("count", len(ids)))
	return nil
}
