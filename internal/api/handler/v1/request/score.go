package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SubmitScoreRequest struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	Gross      int    `json:"gross"`
	Net        int    `json:"net"`
	Holes      int    `json:"holes"`
	HoleInOne  bool   `json:"hole_in_one"`
	HoleNumber int    `json:"hole_number"`
}

func (req *SubmitScoreRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.CourseID, validation.Required),
		validation.Field(&req.CourseName, validation.Required),
		validation.Field(&req.Gross, validation.Min(0)),
		validation.Field(&req.Net, validation.Min(0)),
		validation.Field(&req.Holes, validation.Required, validation.In(9, 18)),
	)
	if err != nil {
		return err
	}

	if req.HoleInOne {
		return validation.ValidateStruct(
			req,
			validation.Field(&req.HoleNumber, validation.Required, validation.Min(1), validation.Max(18)),
		)
	}

	return nil
}
