package contact

import "errors"

// SubmitDTO is a visitor's contact form submission.
type SubmitDTO struct {
	Name    string `json:"name"    binding:"required"`
	Email   string `json:"email"   binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

var (
	errMessageNotFound = errors.New("message not found")
	errThrottled       = errors.New("too many submissions, try again later")
)
