package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SendPartnerRequest struct {
	ToUserID uint `json:"to_user_id"`
}

func (req *SendPartnerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ToUserID, validation.Required),
	)
}
