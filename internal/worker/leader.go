package worker

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository"
)

type LeaderRepository interface {
	Upsert(ctx context.Context, leader domain.CourseLeader) (domain.CourseLeader, error)
	ListCourseIDs(ctx context.Context) ([]string, error)
	FindLowestNet(ctx context.Context, courseID string) (domain.Score, error)
}

type LeaderUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.UserProfile, error)
}

// LeaderWorker recomputes course leader documents. Score submissions trigger
// a per-course recompute; a scheduled sweep recomputes every course as a
// safety net for missed triggers.
type LeaderWorker struct {
	leaders LeaderRepository
	users   LeaderUserRepository

	triggers chan courseRef
}

type courseRef struct {
	id   string
	name string
}

func NewLeaderWorker(leaders LeaderRepository, users LeaderUserRepository) *LeaderWorker {
	return &LeaderWorker{
		leaders:  leaders,
		users:    users,
		triggers: make(chan courseRef, 128),
	}
}

// TriggerRecompute queues an async recompute for one course. Non-blocking;
// the sweep picks up anything dropped here.
func (w *LeaderWorker) TriggerRecompute(courseID, courseName string) {
	select {
	case w.triggers <- courseRef{id: courseID, name: courseName}:
	default:
		zap.L().Warn("leader: trigger queue full", zap.String("course_id", courseID))
	}
}

func (w *LeaderWorker) Start(ctx context.Context, sweepInterval time.Duration) error {
	go func() {
		for {
			select {
			case ref := <-w.triggers:
				if err := w.RecomputeCourse(ctx, ref.id, ref.name); err != nil {
					zap.L().Error("leader: recompute failed",
						zap.String("course_id", ref.id), zap.Error(err))
				}
			case <-ctx.Done():
				zap.L().Info("course leader worker stopped")
				return
			}
		}
	}()

	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(sweepInterval),
		gocron.NewTask(func() {
			w.sweep(ctx)
		}),
	)
	if err != nil {
		return err
	}

	sched.Start()
	zap.L().Info("course leader sweep scheduled", zap.Duration("interval", sweepInterval))

	go func() {
		<-ctx.Done()
		_ = sched.Shutdown()
	}()

	return nil
}

// RecomputeCourse reads the lowest net score for the course and writes the
// leader document. Hole-in-one records are appended elsewhere and untouched.
func (w *LeaderWorker) RecomputeCourse(ctx context.Context, courseID, courseName string) error {
	lowest, err := w.leaders.FindLowestNet(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrCourseLeaderNotFound) {
			return nil
		}
		return err
	}

	lowmanName := ""
	if user, err := w.users.FindByID(ctx, lowest.UserID); err == nil {
		lowmanName = user.DisplayName
	} else {
		zap.L().Warn("leader: lowman profile read failed",
			zap.Uint("user_id", lowest.UserID), zap.Error(err))
	}

	if courseName == "" {
		courseName = lowest.CourseName
	}

	_, err = w.leaders.Upsert(ctx, domain.CourseLeader{
		CourseID:     courseID,
		CourseName:   courseName,
		LowmanUserID: lowest.UserID,
		LowmanName:   lowmanName,
		LowmanScore:  lowest.Net,
		UpdatedAt:    time.Now(),
	})
	return err
}

func (w *LeaderWorker) sweep(ctx context.Context) {
	ids, err := w.leaders.ListCourseIDs(ctx)
	if err != nil {
		zap.L().Error("leader: sweep listing failed", zap.Error(err))
		return
	}

	for _, id := range ids {
		if err := w.RecomputeCourse(ctx, id, ""); err != nil {
			zap.L().Error("leader: sweep recompute failed",
				zap.String("course_id", id), zap.Error(err))
		}
	}
}
