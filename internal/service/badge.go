package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
)

type BadgeUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.UserProfile, error)
	Update(ctx context.Context, user domain.UserProfile) (domain.UserProfile, error)
}

type BadgeLeaderRepository interface {
	FindByCourseID(ctx context.Context, courseID string) (domain.CourseLeader, error)
	AppendHoleInOne(ctx context.Context, courseID, courseName string, record domain.HoleInOneRecord) error
	CountLowmanCourses(ctx context.Context, userID uint) (int64, error)
}

// BadgeService awards badges after a score event. Every store operation in
// this path logs and continues; a failure partway leaves the user with some
// but not all eligible badges, which the app's best-effort model accepts.
type BadgeService struct {
	users   BadgeUserRepository
	leaders BadgeLeaderRepository

	// settleDelay is how long to wait for the course-leader recompute before
	// reading the lowman. If the recompute runs longer than this the check can
	// silently miss; a known weak point carried over as-is.
	settleDelay time.Duration
}

func NewBadgeService(users BadgeUserRepository, leaders BadgeLeaderRepository, settleDelay time.Duration) *BadgeService {
	return &BadgeService{
		users:       users,
		leaders:     leaders,
		settleDelay: settleDelay,
	}
}

// AwardBadgesForScore determines which badges the user newly qualifies for
// after a score (or hole-in-one) and persists them, returning the newly
// awarded badges.
func (s *BadgeService) AwardBadgesForScore(ctx context.Context, userID uint, courseID, courseName string, grossScore int, hadHoleInOne bool, holeNumber int) []domain.Badge {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		zap.L().Warn("badges: user load failed, skipping awards",
			zap.Uint("user_id", userID), zap.Error(err))
		return nil
	}

	if hadHoleInOne {
		return s.awardHoleInOne(ctx, &user, courseID, courseName, holeNumber)
	}

	if grossScore <= 0 {
		return nil
	}

	return s.awardLowmanTier(ctx, &user, courseID, courseName, grossScore)
}

// awardHoleInOne is unconditional: no gross-score checks run in this branch.
func (s *BadgeService) awardHoleInOne(ctx context.Context, user *domain.UserProfile, courseID, courseName string, holeNumber int) []domain.Badge {
	badge := domain.Badge{
		Type:        domain.BadgeHoleInOne,
		CourseID:    courseID,
		CourseName:  courseName,
		AchievedAt:  time.Now(),
		DisplayName: user.DisplayName,
	}

	user.Badges = append(user.Badges, badge)
	if _, err := s.users.Update(ctx, *user); err != nil {
		zap.L().Warn("badges: hole-in-one save failed",
			zap.Uint("user_id", user.ID), zap.Error(err))
		return nil
	}

	record := domain.HoleInOneRecord{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		HoleNumber:  holeNumber,
		AchievedAt:  badge.AchievedAt,
	}
	if err := s.leaders.AppendHoleInOne(ctx, courseID, courseName, record); err != nil {
		zap.L().Warn("badges: hole-in-one record append failed",
			zap.String("course_id", courseID), zap.Error(err))
	}

	return []domain.Badge{badge}
}

func (s *BadgeService) awardLowmanTier(ctx context.Context, user *domain.UserProfile, courseID, courseName string, grossScore int) []domain.Badge {
	// Wait out the async leader recompute. Not a synchronization primitive;
	// if the recompute is slower than this the lowman check misses.
	if s.settleDelay > 0 {
		select {
		case <-time.After(s.settleDelay):
		case <-ctx.Done():
			return nil
		}
	}

	leader, err := s.leaders.FindByCourseID(ctx, courseID)
	if err != nil {
		zap.L().Warn("badges: course leader read failed",
			zap.String("course_id", courseID), zap.Error(err))
		return nil
	}

	var awarded []domain.Badge

	if leader.LowmanUserID == user.ID {
		badge := domain.Badge{
			Type:        domain.BadgeLowman,
			CourseID:    courseID,
			CourseName:  courseName,
			AchievedAt:  time.Now(),
			Score:       &grossScore,
			DisplayName: user.DisplayName,
		}
		user.Badges = append(user.Badges, badge)
		awarded = append(awarded, badge)
	}

	count, err := s.leaders.CountLowmanCourses(ctx, user.ID)
	if err != nil {
		zap.L().Warn("badges: lowman course count failed",
			zap.Uint("user_id", user.ID), zap.Error(err))
		count = 0
	}

	if tier := tierForLowmanCount(count); tier != "" && !hasBadgeType(user.Badges, tier) {
		badge := domain.Badge{
			Type:        tier,
			AchievedAt:  time.Now(),
			DisplayName: user.DisplayName,
		}
		// Tier badges are exclusive: awarding one replaces any other tier
		// badge, never the per-course lowman badges.
		user.Badges = domain.ReplaceTierBadge(user.Badges, badge)
		awarded = append(awarded, badge)
	}

	if len(awarded) == 0 {
		return nil
	}

	if _, err := s.users.Update(ctx, *user); err != nil {
		zap.L().Warn("badges: award save failed",
			zap.Uint("user_id", user.ID), zap.Error(err))
		return nil
	}

	return awarded
}

func tierForLowmanCount(count int64) domain.BadgeType {
	switch {
	case count >= 3:
		return domain.BadgeAce
	case count == 2:
		return domain.BadgeScratch
	default:
		return ""
	}
}

func hasBadgeType(badges []domain.Badge, t domain.BadgeType) bool {
	for _, b := range badges {
		if b.Type == t {
			return true
		}
	}
	return false
}
