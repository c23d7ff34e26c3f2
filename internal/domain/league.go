package domain

import "time"

type League struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LeagueMember carries a denormalized copy of the member's challenge badges
// so league screens render without loading every member profile.
type LeagueMember struct {
	ID              uint      `json:"id"`
	LeagueID        uint      `json:"league_id"`
	UserID          uint      `json:"user_id"`
	DisplayName     string    `json:"display_name"`
	ChallengeBadges []string  `json:"challenge_badges"`
	JoinedAt        time.Time `json:"joined_at"`
}
