package domain

import (
	"strings"
	"sync"
)

// Navigation routes the onboarding gate can redirect to.
const (
	RouteLanding      = "/"
	RouteAuthPrefix   = "/auth/"
	RouteUserType     = "/onboarding/user-type"
	RouteSetupProfile = "/onboarding/setup-profile"
	RouteLocker       = "/onboarding/locker"
	RouteVerification = "/onboarding/verification"
	RouteTerms        = "/onboarding/terms"
	RouteWelcomeTour  = "/welcome-tour"
	RouteClubhouse    = "/clubhouse"

	routeOnboardingPrefix = "/onboarding/"
)

// GateDecision is the outcome of one gate evaluation. Stay means the client
// keeps its current route; otherwise it navigates to Redirect.
type GateDecision struct {
	Redirect string `json:"redirect,omitempty"`
	Stay     bool   `json:"stay"`
}

func StayPut() GateDecision {
	return GateDecision{Stay: true}
}

func RedirectTo(route string) GateDecision {
	return GateDecision{Redirect: route}
}

// GateSession holds per-app-session state for the gate. The opened flag makes
// the "app opened" side effects one-shot: they fire on the first evaluation
// that passes every check and never again for the session's lifetime.
type GateSession struct {
	mu     sync.Mutex
	opened bool
}

func NewGateSession() *GateSession {
	return &GateSession{}
}

// MarkOpened flips the one-shot flag and reports whether this call was the
// first to do so.
func (s *GateSession) MarkOpened() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return false
	}
	s.opened = true
	return true
}

func IsPublicRoute(route string) bool {
	return route == RouteLanding || IsAuthRoute(route)
}

func IsAuthRoute(route string) bool {
	return strings.HasPrefix(route, RouteAuthPrefix)
}

// IsOnboardingFlowRoute reports whether the route is inside the onboarding
// flow or the welcome tour, where an in-progress user is never redirected.
func IsOnboardingFlowRoute(route string) bool {
	return strings.HasPrefix(route, routeOnboardingPrefix) || route == RouteWelcomeTour
}
