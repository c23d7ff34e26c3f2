package domain

import "time"

// HoleInOneRecord is one ace appended to a course's leader document.
type HoleInOneRecord struct {
	UserID      uint      `json:"user_id"`
	DisplayName string    `json:"display_name"`
	HoleNumber  int       `json:"hole_number"`
	AchievedAt  time.Time `json:"achieved_at"`
}

// CourseLeader is the per-course leader document: the current lowman (lowest
// net score holder) plus the accumulating hole-in-one list. It is recomputed
// asynchronously after each score submission; readers treat it as eventually
// consistent.
type CourseLeader struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`

	LowmanUserID uint   `json:"lowman_user_id"`
	LowmanName   string `json:"lowman_name"`
	LowmanScore  int    `json:"lowman_score"`

	HoleInOnes []HoleInOneRecord `json:"hole_in_ones"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Score is a submitted round score for a course.
type Score struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	CourseID   string    `json:"course_id"`
	CourseName string    `json:"course_name"`
	Gross      int       `json:"gross"`
	Net        int       `json:"net"`
	Holes      int       `json:"holes"`
	CreatedAt  time.Time `json:"created_at"`
}
