package models

import "gorm.io/gorm"

// UserScore keeps one persisted high score per user. The unique index on
// UserID guarantees at most one row per user.
type UserScore struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"uniqueIndex;not null"`
	HighScore int  `json:"high_score" gorm:"default:0"`
}
