package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateInvitationalRequest struct {
	Name       string   `json:"name"`
	GhostNames []string `json:"ghost_names"`
}

func (req *CreateInvitationalRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 60)),
		validation.Field(&req.GhostNames, validation.Required, validation.Length(1, 32)),
	)
}

type ClaimInviteRequest struct {
	Code string `json:"code"`
}

func (req *ClaimInviteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required),
	)
}
