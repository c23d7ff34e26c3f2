package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCourseLeaderNotFound = errors.New("course leader not found")

type HoleInOneRecord struct {
	UserID      uint      `json:"user_id"`
	DisplayName string    `json:"display_name"`
	HoleNumber  int       `json:"hole_number"`
	AchievedAt  time.Time `json:"achieved_at"`
}

type CourseLeader struct {
	CourseID   string `gorm:"primaryKey"`
	CourseName string `gorm:"not null"`

	LowmanUserID uint `gorm:"index"`
	LowmanName   string
	LowmanScore  int

	HoleInOnes []HoleInOneRecord `gorm:"type:jsonb;serializer:json"`

	UpdatedAt time.Time `gorm:"not null"`
}

type Score struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"index;not null"`
	CourseID   string `gorm:"index;not null"`
	CourseName string `gorm:"not null"`
	Gross      int    `gorm:"not null"`
	Net        int    `gorm:"not null"`
	Holes      int    `gorm:"not null;default:18"`

	CreatedAt time.Time `gorm:"not null"`
}

type CourseLeaderDAO struct {
	db *gorm.DB
}

func NewCourseLeaderDAO(db *gorm.DB) *CourseLeaderDAO {
	return &CourseLeaderDAO{
		db: db,
	}
}

func (d *CourseLeaderDAO) FindByCourseID(ctx context.Context, courseID string) (CourseLeader, error) {
	var leader CourseLeader

	result := d.db.WithContext(ctx).First(&leader, "course_id = ?", courseID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return CourseLeader{}, ErrCourseLeaderNotFound
		}

		return CourseLeader{}, result.Error
	}

	return leader, nil
}

func (d *CourseLeaderDAO) Upsert(ctx context.Context, leader CourseLeader) (CourseLeader, error) {
	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"course_name", "lowman_user_id", "lowman_name", "lowman_score", "updated_at",
		}),
	}).Create(&leader)
	if result.Error != nil {
		return CourseLeader{}, result.Error
	}

	return leader, nil
}

func (d *CourseLeaderDAO) AppendHoleInOne(ctx context.Context, courseID, courseName string, record HoleInOneRecord) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var leader CourseLeader
		err := tx.First(&leader, "course_id = ?", courseID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			leader = CourseLeader{
				CourseID:   courseID,
				CourseName: courseName,
				HoleInOnes: []HoleInOneRecord{record},
				UpdatedAt:  time.Now(),
			}
			return tx.Create(&leader).Error
		}
		if err != nil {
			return err
		}

		leader.HoleInOnes = append(leader.HoleInOnes, record)
		leader.UpdatedAt = time.Now()
		return tx.Save(&leader).Error
	})
}

// CountLowmanCourses counts distinct courses where the user currently holds
// the lowman. Drives the scratch/ace tier thresholds.
func (d *CourseLeaderDAO) CountLowmanCourses(ctx context.Context, userID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&CourseLeader{}).
		Where("lowman_user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *CourseLeaderDAO) ListCourseIDs(ctx context.Context) ([]string, error) {
	var ids []string

	result := d.db.WithContext(ctx).
		Model(&Score{}).
		Distinct("course_id").
		Pluck("course_id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}

func (d *CourseLeaderDAO) InsertScore(ctx context.Context, score Score) (Score, error) {
	result := d.db.WithContext(ctx).Create(&score)
	if result.Error != nil {
		return Score{}, result.Error
	}

	return score, nil
}

// FindLowestNet returns the score row with the lowest net for the course.
func (d *CourseLeaderDAO) FindLowestNet(ctx context.Context, courseID string) (Score, error) {
	var score Score

	result := d.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("net ASC, created_at ASC").
		First(&score)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Score{}, ErrCourseLeaderNotFound
		}

		return Score{}, result.Error
	}

	return score, nil
}
