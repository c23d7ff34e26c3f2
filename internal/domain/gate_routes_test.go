package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteClassification(t *testing.T) {
	assert.True(t, IsPublicRoute(RouteLanding))
	assert.True(t, IsPublicRoute("/auth/login"))
	assert.True(t, IsPublicRoute("/auth/signup"))
	assert.False(t, IsPublicRoute(RouteClubhouse))

	assert.True(t, IsOnboardingFlowRoute(RouteUserType))
	assert.True(t, IsOnboardingFlowRoute(RouteSetupProfile))
	assert.True(t, IsOnboardingFlowRoute(RouteWelcomeTour))
	assert.False(t, IsOnboardingFlowRoute(RouteClubhouse))
	assert.False(t, IsOnboardingFlowRoute(RouteLanding))
}

func TestEqualStringSlices(t *testing.T) {
	assert.True(t, EqualStringSlices(nil, nil))
	assert.True(t, EqualStringSlices(nil, []string{}))
	assert.True(t, EqualStringSlices([]string{"a", "b"}, []string{"a", "b"}))
	assert.False(t, EqualStringSlices([]string{"a", "b"}, []string{"b", "a"}))
	assert.False(t, EqualStringSlices([]string{"a"}, []string{"a", "b"}))
}
