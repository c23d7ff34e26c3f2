package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository"
)

type fakeLeaderRepo struct {
	lowest    map[string]domain.Score
	courseIDs []string

	upserted []domain.CourseLeader
}

func (f *fakeLeaderRepo) Upsert(_ context.Context, leader domain.CourseLeader) (domain.CourseLeader, error) {
	f.upserted = append(f.upserted, leader)
	return leader, nil
}

func (f *fakeLeaderRepo) ListCourseIDs(context.Context) ([]string, error) {
	return f.courseIDs, nil
}

func (f *fakeLeaderRepo) FindLowestNet(_ context.Context, courseID string) (domain.Score, error) {
	score, ok := f.lowest[courseID]
	if !ok {
		return domain.Score{}, repository.ErrCourseLeaderNotFound
	}
	return score, nil
}

type fakeLeaderUserRepo struct {
	users map[uint]domain.UserProfile
	err   error
}

func (f *fakeLeaderUserRepo) FindByID(_ context.Context, id uint) (domain.UserProfile, error) {
	if f.err != nil {
		return domain.UserProfile{}, f.err
	}
	return f.users[id], nil
}

func TestLeaderWorker_RecomputeCourse(t *testing.T) {
	leaders := &fakeLeaderRepo{lowest: map[string]domain.Score{
		"c1": {UserID: 7, CourseID: "c1", CourseName: "Pebble Beach", Net: 66},
	}}
	users := &fakeLeaderUserRepo{users: map[uint]domain.UserProfile{
		7: {ID: 7, DisplayName: "lowman-larry"},
	}}
	w := NewLeaderWorker(leaders, users)

	err := w.RecomputeCourse(context.Background(), "c1", "Pebble Beach")

	require.NoError(t, err)
	require.Len(t, leaders.upserted, 1)

	leader := leaders.upserted[0]
	assert.Equal(t, "c1", leader.CourseID)
	assert.Equal(t, uint(7), leader.LowmanUserID)
	assert.Equal(t, "lowman-larry", leader.LowmanName)
	assert.Equal(t, 66, leader.LowmanScore)
}

func TestLeaderWorker_RecomputeCourse_NoScoresIsNoOp(t *testing.T) {
	leaders := &fakeLeaderRepo{lowest: map[string]domain.Score{}}
	w := NewLeaderWorker(leaders, &fakeLeaderUserRepo{})

	err := w.RecomputeCourse(context.Background(), "empty-course", "")

	require.NoError(t, err)
	assert.Empty(t, leaders.upserted)
}

func TestLeaderWorker_RecomputeCourse_NameFallsBackToScore(t *testing.T) {
	leaders := &fakeLeaderRepo{lowest: map[string]domain.Score{
		"c1": {UserID: 7, CourseID: "c1", CourseName: "Pebble Beach", Net: 70},
	}}
	users := &fakeLeaderUserRepo{users: map[uint]domain.UserProfile{7: {ID: 7}}}
	w := NewLeaderWorker(leaders, users)

	// The sweep path recomputes with no course name in hand.
	err := w.RecomputeCourse(context.Background(), "c1", "")

	require.NoError(t, err)
	require.Len(t, leaders.upserted, 1)
	assert.Equal(t, "Pebble Beach", leaders.upserted[0].CourseName)
}

func TestLeaderWorker_RecomputeCourse_ProfileReadFailureStillWrites(t *testing.T) {
	leaders := &fakeLeaderRepo{lowest: map[string]domain.Score{
		"c1": {UserID: 7, CourseID: "c1", Net: 70},
	}}
	users := &fakeLeaderUserRepo{err: errors.New("read timeout")}
	w := NewLeaderWorker(leaders, users)

	err := w.RecomputeCourse(context.Background(), "c1", "Pebble Beach")

	require.NoError(t, err)
	require.Len(t, leaders.upserted, 1)
	assert.Empty(t, leaders.upserted[0].LowmanName)
	assert.Equal(t, uint(7), leaders.upserted[0].LowmanUserID)
}
