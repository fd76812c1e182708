package models

import "time"

// AdminModel represents the site owner account.
type AdminModel struct {
	Base
	Email         string     `json:"email"           gorm:"uniqueIndex;not null"`
	Password      string     `json:"-"               gorm:"not null"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"last_login_ip"`
}

func (AdminModel) TableName() string { return "admins" }
