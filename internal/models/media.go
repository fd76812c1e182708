package models

// Media type values accepted by the upload endpoint.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// DefaultCategory is assigned when an upload carries no category.
const DefaultCategory = "Portrait"

// MediaModel represents one portfolio asset (image or video).
type MediaModel struct {
	Base
	Title        string  `json:"title"         gorm:"not null"`
	Description  string  `json:"description"   gorm:"type:text"`
	Category     string  `json:"category"      gorm:"index;not null;default:'Portrait'"`
	MediaType    string  `json:"media_type"    gorm:"not null;default:'image'"`
	FileName     string  `json:"-"             gorm:"not null"`
	FileURL      string  `json:"file_url"      gorm:"not null"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Featured     bool    `json:"featured"      gorm:"index;default:false"`
	Order        int     `json:"order"         gorm:"column:order_num;index"`
	Storage      string  `json:"-"             gorm:"default:'local'"` // local | s3
}

func (MediaModel) TableName() string { return "media" }
