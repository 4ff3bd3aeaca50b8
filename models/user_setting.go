package models

import (
	"gorm.io/gorm"
)

// UserSetting holds each user's personal goal percentage.
// GoalPct is nil until the user sets one; 0-100 when present.
type UserSetting struct {
	gorm.Model
	UserID  string `gorm:"uniqueIndex;not null"`
	GoalPct *int
}

func (UserSetting) TableName() string {
	return "user_settings"
}
