package models

import (
	"time"

	"gorm.io/gorm"
)

// ShotRecord is one practice entry: makes/attempts for a single court
// zone on a single day. At most one row exists per (user, date, zone);
// the composite unique index backs the upsert in services.ShotService.
type ShotRecord struct {
	gorm.Model
	UserID   string    `gorm:"index;not null;uniqueIndex:idx_shot_user_date_zone" json:"userId"`
	Date     time.Time `gorm:"not null;uniqueIndex:idx_shot_user_date_zone" json:"-"`
	ZoneID   string    `gorm:"not null;uniqueIndex:idx_shot_user_date_zone" json:"zoneId"`
	Category string    `gorm:"not null" json:"category"` // e.g. "Mid", "3PT"
	Makes    int       `json:"makes"`
	Attempts int       `json:"attempts"`
}

func (ShotRecord) TableName() string {
	return "shot_records"
}
