package models

import "time"

type Lesson struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text"`
	CourseID  uint      `json:"course_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
