package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type PostThoughtRequest struct {
	Body string `json:"body"`
}

func (req *PostThoughtRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Body, validation.Required, validation.Length(1, 500)),
	)
}
