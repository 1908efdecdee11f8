package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question types
const (
	QTypeMultipleChoice = "multiple_choice"
	QTypeShortAnswer    = "short_answer"
)

type Question struct {
	gorm.Model
	Content string         `json:"content" gorm:"not null"`
	Topic   string         `json:"topic" gorm:"not null"`
	Answer  string         `json:"-" gorm:"not null"` // canonical answer, never serialized
	QType   string         `json:"q_type" gorm:"not null"`
	Options datatypes.JSON `json:"options"` // option list for multiple choice, may be null
	Points  int            `json:"points" gorm:"default:1"`
}
