package models

import (
	"time"

	"gorm.io/datatypes"
)

type Quiz struct {
	ID        uint                        `json:"id" gorm:"primaryKey"`
	Question  string                      `json:"question" gorm:"not null"`
	Options   datatypes.JSONSlice[string] `json:"options"`
	Answer    string                      `json:"answer" gorm:"not null"`
	LessonID  uint                        `json:"lesson_id" gorm:"index;not null"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`

	// Relationships
	Lesson *Lesson `json:"lesson,omitempty" gorm:"foreignKey:LessonID"`
}
