package domain

import "time"

// Thought is a post on the social feed. Author badge fields are denormalized
// copies of the author's profile, kept in sync by the fan-out worker.
type Thought struct {
	ID       uint   `json:"id"`
	AuthorID uint   `json:"author_id"`
	Body     string `json:"body"`

	AuthorDisplayName     string   `json:"author_display_name"`
	AuthorChallengeBadges []string `json:"author_challenge_badges"`
	AuthorGameIdentity    string   `json:"author_game_identity"`

	LikeCount int `json:"like_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Like struct {
	ID        uint      `json:"id"`
	ThoughtID uint      `json:"thought_id"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
