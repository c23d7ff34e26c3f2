package domain

import "time"

type UserType string

const (
	UserTypeGolfer UserType = "Golfer"
	UserTypePro    UserType = "Pro"
	UserTypeCourse UserType = "Course"
)

type UserProfile struct {
	ID          uint     `json:"id"`
	Email       string   `json:"email"`
	Password    string   `json:"-"`
	UserType    UserType `json:"user_type"`
	DisplayName string   `json:"display_name"`
	Handicap    *float64 `json:"handicap"`

	LockerCompleted         bool       `json:"locker_completed"`
	AcceptedTerms           bool       `json:"accepted_terms"`
	VerificationSubmittedAt *time.Time `json:"verification_submitted_at,omitempty"`
	HasSeenWelcomeTour      bool       `json:"has_seen_welcome_tour"`

	// ChallengeBadges is the ordered list of badge ids the user shows off.
	// Clients display at most MaxChallengeBadges of them.
	ChallengeBadges []string `json:"challenge_badges"`
	GameIdentity    string   `json:"game_identity"`
	Badges          []Badge  `json:"badges"`

	ExpoPushToken string `json:"expo_push_token,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const MaxChallengeBadges = 3

// HasProfile reports whether the profile setup step is complete.
func (u *UserProfile) HasProfile() bool {
	return u.DisplayName != "" && u.Handicap != nil
}

// NeedsVerification reports whether the user type requires a verification
// submission before entering the app.
func (u *UserProfile) NeedsVerification() bool {
	if u.UserType != UserTypePro && u.UserType != UserTypeCourse {
		return false
	}
	return u.VerificationSubmittedAt == nil
}
