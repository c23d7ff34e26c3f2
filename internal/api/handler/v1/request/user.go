package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/swingthoughts/swing-thoughts-api/internal/domain"
)

type SetUserTypeRequest struct {
	UserType string `json:"user_type"`
}

func (req *SetUserTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserType, validation.Required, validation.In(
			string(domain.UserTypeGolfer),
			string(domain.UserTypePro),
			string(domain.UserTypeCourse),
		)),
	)
}

type SetupProfileRequest struct {
	DisplayName string   `json:"display_name"`
	Handicap    *float64 `json:"handicap"`
}

func (req *SetupProfileRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DisplayName, validation.Required, validation.Length(2, 30)),
		validation.Field(&req.Handicap, validation.NotNil, validation.Min(-10.0), validation.Max(54.0)),
	)
}

type UpdateGameIdentityRequest struct {
	GameIdentity string `json:"game_identity"`
}

func (req *UpdateGameIdentityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.GameIdentity, validation.Required, validation.Length(1, 50)),
	)
}

type UpdateChallengeBadgesRequest struct {
	BadgeIDs []string `json:"badge_ids"`
}

func (req *UpdateChallengeBadgesRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.BadgeIDs, validation.Length(0, domain.MaxChallengeBadges)),
	)
}

type RegisterPushTokenRequest struct {
	Token string `json:"token"`
}

func (req *RegisterPushTokenRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Token, validation.Required),
	)
}
