package repository

import (
	"context"
	"fmt"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository/dao"
)

var ErrCourseLeaderNotFound = dao.ErrCourseLeaderNotFound

type CourseLeaderDAO interface {
	FindByCourseID(ctx context.Context, courseID string) (dao.CourseLeader, error)
	Upsert(ctx context.Context, leader dao.CourseLeader) (dao.CourseLeader, error)
	AppendHoleInOne(ctx context.Context, courseID, courseName string, record dao.HoleInOneRecord) error
	CountLowmanCourses(ctx context.Context, userID uint) (int64, error)
	ListCourseIDs(ctx context.Context) ([]string, error)
	InsertScore(ctx context.Context, score dao.Score) (dao.Score, error)
	FindLowestNet(ctx context.Context, courseID string) (dao.Score, error)
}

type CourseLeaderRepository struct {
	dao CourseLeaderDAO
}

func NewCourseLeaderRepository(dao CourseLeaderDAO) *CourseLeaderRepository {
	return &CourseLeaderRepository{
		dao: dao,
	}
}

func (r *CourseLeaderRepository) FindByCourseID(ctx context.Context, courseID string) (domain.CourseLeader, error) {
	found, err := r.dao.FindByCourseID(ctx, courseID)
	if err != nil {
		return domain.CourseLeader{}, fmt.Errorf("r.dao.FindByCourseID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CourseLeaderRepository) Upsert(ctx context.Context, leader domain.CourseLeader) (domain.CourseLeader, error) {
	saved, err := r.dao.Upsert(ctx, dao.CourseLeader{
		CourseID:     leader.CourseID,
		CourseName:   leader.CourseName,
		LowmanUserID: leader.LowmanUserID,
		LowmanName:   leader.LowmanName,
		LowmanScore:  leader.LowmanScore,
		UpdatedAt:    leader.UpdatedAt,
	})
	if err != nil {
		return domain.CourseLeader{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return r.daoToDomain(saved), nil
}

func (r *CourseLeaderRepository) AppendHoleInOne(ctx context.Context, courseID, courseName string, record domain.HoleInOneRecord) error {
	err := r.dao.AppendHoleInOne(ctx, courseID, courseName, dao.HoleInOneRecord{
		UserID:      record.UserID,
		DisplayName: record.DisplayName,
		HoleNumber:  record.HoleNumber,
		AchievedAt:  record.AchievedAt,
	})
	if err != nil {
		return fmt.Errorf("r.dao.AppendHoleInOne -> %w", err)
	}

	return nil
}

func (r *CourseLeaderRepository) CountLowmanCourses(ctx context.Context, userID uint) (int64, error) {
	count, err := r.dao.CountLowmanCourses(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountLowmanCourses -> %w", err)
	}

	return count, nil
}

func (r *CourseLeaderRepository) ListCourseIDs(ctx context.Context) ([]string, error) {
	ids, err := r.dao.ListCourseIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCourseIDs -> %w", err)
	}

	return ids, nil
}

func (r *CourseLeaderRepository) CreateScore(ctx context.Context, score domain.Score) (domain.Score, error) {
	created, err := r.dao.InsertScore(ctx, dao.Score{
		UserID:     score.UserID,
		CourseID:   score.CourseID,
		CourseName: score.CourseName,
		Gross:      score.Gross,
		Net:        score.Net,
		Holes:      score.Holes,
	})
	if err != nil {
		return domain.Score{}, fmt.Errorf("r.dao.InsertScore -> %w", err)
	}

	score.ID = created.ID
	score.CreatedAt = created.CreatedAt

	return score, nil
}

func (r *CourseLeaderRepository) FindLowestNet(ctx context.Context, courseID string) (domain.Score, error) {
	found, err := r.dao.FindLowestNet(ctx, courseID)
	if err != nil {
		return domain.Score{}, fmt.Errorf("r.dao.FindLowestNet -> %w", err)
	}

	return domain.Score{
		ID:         found.ID,
		UserID:     found.UserID,
		CourseID:   found.CourseID,
		CourseName: found.CourseName,
		Gross:      found.Gross,
		Net:        found.Net,
		Holes:      found.Holes,
		CreatedAt:  found.CreatedAt,
	}, nil
}

func (r *CourseLeaderRepository) daoToDomain(l dao.CourseLeader) domain.CourseLeader {
	records := make([]domain.HoleInOneRecord, 0, len(l.HoleInOnes))
	for _, h := range l.HoleInOnes {
		records = append(records, domain.HoleInOneRecord{
			UserID:      h.UserID,
			DisplayName: h.DisplayName,
			HoleNumber:  h.HoleNumber,
			AchievedAt:  h.AchievedAt,
		})
	}

	return domain.CourseLeader{
		CourseID:     l.CourseID,
		CourseName:   l.CourseName,
		LowmanUserID: l.LowmanUserID,
		LowmanName:   l.LowmanName,
		LowmanScore:  l.LowmanScore,
		HoleInOnes:   records,
		UpdatedAt:    l.UpdatedAt,
	}
}
