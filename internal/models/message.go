package models

// MessageModel stores a contact form submission.
type MessageModel struct {
	Base
	Name    string `json:"name"    gorm:"not null"`
	Email   string `json:"email"   gorm:"not null"`
	Subject string `json:"subject"`
	Message string `json:"message" gorm:"type:text;not null"`
	Read    bool   `json:"read"    gorm:"index;default:false"`
}

func (MessageModel) TableName() string { return "contact_messages" }
