package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository"
)

type GateUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.UserProfile, error)
}

// GateSideEffects are the best-effort tasks fired once per session when every
// gate check passes. Failures are logged and never surface to the caller.
type GateSideEffects interface {
	PlayOpenChime(ctx context.Context, userID uint) error
	RefreshLocation(ctx context.Context, userID uint) error
	SeedNearbyCourses(ctx context.Context, userID uint) error
}

// GateService decides, for an auth/navigation event, whether the client must
// be redirected and where. Rules are evaluated top to bottom; the first match
// wins and short-circuits the rest.
type GateService struct {
	repo    GateUserRepository
	effects GateSideEffects
}

func NewGateService(repo GateUserRepository, effects GateSideEffects) *GateService {
	return &GateService{
		repo:    repo,
		effects: effects,
	}
}

// Resolve computes the gate decision for the current route. userID zero means
// no authenticated user. A profile read failure is treated as "stay put" so a
// flaky read can never bounce the user around.
func (s *GateService) Resolve(ctx context.Context, session *domain.GateSession, userID uint, currentRoute string) domain.GateDecision {
	// Rule 1: anonymous users only get the landing and auth routes.
	if userID == 0 {
		if domain.IsPublicRoute(currentRoute) {
			return domain.StayPut()
		}
		return domain.RedirectTo(domain.RouteLanding)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		// Rule 2: authenticated but no profile document yet.
		if errors.Is(err, repository.ErrUserNotFound) {
			if currentRoute == domain.RouteUserType {
				return domain.StayPut()
			}
			return domain.RedirectTo(domain.RouteUserType)
		}

		zap.L().Error("gate: profile read failed, staying put",
			zap.Uint("user_id", userID),
			zap.Error(err))
		return domain.StayPut()
	}

	// Rule 3: never yank a user out of an in-progress onboarding flow.
	if domain.IsOnboardingFlowRoute(currentRoute) {
		return domain.StayPut()
	}

	// Rules 4-9: walk the onboarding gaps in order.
	if target, ok := nextOnboardingStep(&user); ok {
		return domain.RedirectTo(target)
	}

	s.fireSideEffects(session, userID)

	// Rule 10: fully onboarded users on a public route go to the clubhouse.
	if domain.IsPublicRoute(currentRoute) {
		return domain.RedirectTo(domain.RouteClubhouse)
	}
	return domain.StayPut()
}

// nextOnboardingStep returns the first unmet prerequisite's route, in the
// fixed rule order, or false when the profile clears every gate.
func nextOnboardingStep(user *domain.UserProfile) (string, bool) {
	if user.UserType == "" {
		return domain.RouteUserType, true
	}
	if !user.HasProfile() && user.UserType != domain.UserTypeCourse {
		return domain.RouteSetupProfile, true
	}
	if !user.LockerCompleted && user.UserType != domain.UserTypeCourse {
		return domain.RouteLocker, true
	}
	if user.NeedsVerification() {
		return domain.RouteVerification, true
	}
	if !user.AcceptedTerms {
		return domain.RouteTerms, true
	}
	if !user.HasSeenWelcomeTour {
		return domain.RouteWelcomeTour, true
	}
	return "", false
}

// fireSideEffects runs the one-shot "app opened" tasks. Fire-and-forget: each
// failure is logged independently and none blocks or retries.
func (s *GateService) fireSideEffects(session *domain.GateSession, userID uint) {
	if session == nil || !session.MarkOpened() {
		return
	}
	if s.effects == nil {
		return
	}

	go func() {
		ctx := context.Background()

		if err := s.effects.PlayOpenChime(ctx, userID); err != nil {
			zap.L().Warn("gate: open chime failed", zap.Uint("user_id", userID), zap.Error(err))
		}
		if err := s.effects.RefreshLocation(ctx, userID); err != nil {
			zap.L().Warn("gate: location refresh failed", zap.Uint("user_id", userID), zap.Error(err))
		}
		if err := s.effects.SeedNearbyCourses(ctx, userID); err != nil {
			zap.L().Warn("gate: course seeding failed", zap.Uint("user_id", userID), zap.Error(err))
		}
	}()
}
