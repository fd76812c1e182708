package models

// OptionModel is a generic key-value store for persisted singletons.
type OptionModel struct {
	ID    uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name"  gorm:"uniqueIndex;not null"`
	Value string `json:"value" gorm:"type:longtext"` // JSON-encoded value
}

func (OptionModel) TableName() string { return "options" }
