package domain

import "time"

type BadgeType string

const (
	BadgeLowman    BadgeType = "lowman"
	BadgeScratch   BadgeType = "scratch"
	BadgeAce       BadgeType = "ace"
	BadgeHoleInOne BadgeType = "holeinone"
)

type Badge struct {
	Type        BadgeType `json:"type"`
	CourseID    string    `json:"course_id,omitempty"`
	CourseName  string    `json:"course_name,omitempty"`
	AchievedAt  time.Time `json:"achieved_at"`
	Score       *int      `json:"score,omitempty"`
	DisplayName string    `json:"display_name"`
}

// IsTier reports whether the badge type is one of the exclusive tier badges.
// At most one tier badge may be present on a profile at a time; lowman and
// holeinone badges accumulate per course instead.
func (t BadgeType) IsTier() bool {
	return t == BadgeScratch || t == BadgeAce
}

// ReplaceTierBadge returns badges with every tier badge removed and the given
// badge appended, preserving the order of the remaining entries.
func ReplaceTierBadge(badges []Badge, replacement Badge) []Badge {
	out := make([]Badge, 0, len(badges)+1)
	for _, b := range badges {
		if b.Type.IsTier() {
			continue
		}
		out = append(out, b)
	}
	return append(out, replacement)
}
