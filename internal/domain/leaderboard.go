package domain

import "time"

type LeaderboardPeriod string

const (
	LeaderboardAllTime  LeaderboardPeriod = "all_time"
	LeaderboardEighteen LeaderboardPeriod = "eighteen"
	LeaderboardNine     LeaderboardPeriod = "nine"
)

// LeaderboardEntry is one scoreline inside a leaderboard's score arrays.
// ChallengeBadges is a denormalized copy from the entry owner's profile.
type LeaderboardEntry struct {
	UserID          uint      `json:"user_id"`
	DisplayName     string    `json:"display_name"`
	ChallengeBadges []string  `json:"challenge_badges"`
	NetScore        int       `json:"net_score"`
	PostedAt        time.Time `json:"posted_at"`
}

// Leaderboard holds the three score arrays every leaderboard document carries:
// all-time, 18-hole and 9-hole.
type Leaderboard struct {
	ID       uint               `json:"id"`
	CourseID string             `json:"course_id"`
	AllTime  []LeaderboardEntry `json:"all_time"`
	Eighteen []LeaderboardEntry `json:"eighteen"`
	Nine     []LeaderboardEntry `json:"nine"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
