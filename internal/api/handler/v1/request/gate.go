package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ResolveGateRequest struct {
	CurrentRoute string `json:"current_route"`
}

func (req *ResolveGateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CurrentRoute, validation.Required),
	)
}
