package media

import "errors"

// UploadDTO carries the multipart form fields accompanying the file.
type UploadDTO struct {
	Title       string `form:"title"       binding:"required"`
	Description string `form:"description"`
	Category    string `form:"category"`
	MediaType   string `form:"media_type"`
}

// UpdateDTO is a partial update; nil fields are left untouched.
type UpdateDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Featured    *bool   `json:"featured"`
	Order       *int    `json:"order"`
}

// ListQuery narrows the public media listing.
type ListQuery struct {
	Category string
	Featured *bool
}

var (
	errMediaNotFound    = errors.New("media not found")
	errNoUpdateFields   = errors.New("no update data provided")
	errInvalidMediaType = errors.New("media_type must be image or video")
)
