package models

import "time"

type Submission struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID uint      `json:"student_id" gorm:"index;not null"`
	QuizID    uint      `json:"quiz_id" gorm:"index;not null"`
	Answer    string    `json:"answer" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Student *User `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Quiz    *Quiz `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
}
