package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateThreadRequest struct {
	ParticipantIDs []uint `json:"participant_ids"`
}

func (req *CreateThreadRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParticipantIDs, validation.Required, validation.Length(1, 20)),
	)
}

type CreateLeagueRequest struct {
	Name string `json:"name"`
}

func (req *CreateLeagueRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 60)),
	)
}
