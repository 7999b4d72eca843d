package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// UploadPhotoRequest carries the non-file fields of a photo upload for
// pre-flight validation. The ids must reference existing rows; the server
// rejects unknown ones, this only catches the obviously empty case.
type UploadPhotoRequest struct {
	UserID    uint   `json:"user_id"`
	KeywordID uint   `json:"keyword_id"`
	Location  string `json:"location"`
}

func (req *UploadPhotoRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.KeywordID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Location, validation.Length(0, 200)),
	)
}

// SubmitContestPhotoRequest carries the non-file fields of a contest
// submission.
type SubmitContestPhotoRequest struct {
	ContestID   uint   `json:"contest_id"`
	UserID      uint   `json:"user_id"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (req *SubmitContestPhotoRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ContestID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.UserID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Location, validation.Length(0, 200)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}
