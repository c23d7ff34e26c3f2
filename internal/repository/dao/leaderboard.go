package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ScoreEntry is the jsonb shape of one scoreline in a leaderboard array.
type ScoreEntry struct {
	UserID          uint      `json:"user_id"`
	DisplayName     string    `json:"display_name"`
	ChallengeBadges []string  `json:"challenge_badges"`
	NetScore        int       `json:"net_score"`
	PostedAt        time.Time `json:"posted_at"`
}

type Leaderboard struct {
	ID       uint   `gorm:"primaryKey"`
	CourseID string `gorm:"uniqueIndex;not null"`

	AllTime  []ScoreEntry `gorm:"type:jsonb;serializer:json"`
	Eighteen []ScoreEntry `gorm:"type:jsonb;serializer:json"`
	Nine     []ScoreEntry `gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type LeaderboardDAO struct {
	db *gorm.DB
}

func NewLeaderboardDAO(db *gorm.DB) *LeaderboardDAO {
	return &LeaderboardDAO{
		db: db,
	}
}

// ListAll returns every leaderboard document. The fan-out scans all of them;
// there is no per-user index into the jsonb score arrays.
func (d *LeaderboardDAO) ListAll(ctx context.Context) ([]Leaderboard, error) {
	var boards []Leaderboard

	result := d.db.WithContext(ctx).Find(&boards)
	if result.Error != nil {
		return nil, result.Error
	}

	return boards, nil
}

func (d *LeaderboardDAO) FindByCourseID(ctx context.Context, courseID string) (Leaderboard, error) {
	var board Leaderboard

	result := d.db.WithContext(ctx).First(&board, "course_id = ?", courseID)
	if result.Error != nil {
		return Leaderboard{}, result.Error
	}

	return board, nil
}

func (d *LeaderboardDAO) Insert(ctx context.Context, board Leaderboard) (Leaderboard, error) {
	result := d.db.WithContext(ctx).Create(&board)
	if result.Error != nil {
		return Leaderboard{}, result.Error
	}

	return board, nil
}

// SaveScoreArrays rewrites the three score arrays of each given board inside
// one transaction. Callers chunk the input to stay under the write ceiling.
func (d *LeaderboardDAO) SaveScoreArrays(ctx context.Context, boards []Leaderboard) error {
	if len(boards) == 0 {
		return nil
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, board := range boards {
			err := tx.Model(&Leaderboard{}).
				Where("id = ?", board.ID).
				Updates(map[string]interface{}{
					"all_time": board.AllTime,
					"eighteen": board.Eighteen,
					"nine":     board.Nine,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
