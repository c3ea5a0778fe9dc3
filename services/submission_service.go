package services

import (
	"errors"

	"opencourse/models"

	"gorm.io/gorm"
)

type SubmissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db}
}

type CreateSubmissionRequest struct {
	StudentID uint   `json:"student_id" binding:"required"`
	QuizID    uint   `json:"quiz_id" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
}

type UpdateSubmissionRequest struct {
	StudentID uint   `json:"student_id"`
	QuizID    uint   `json:"quiz_id"`
	Answer    string `json:"answer"`
}

type SubmissionFilter struct {
	StudentID uint
	QuizID    uint
	Limit     int
	Offset    int
}

func (s *SubmissionService) CreateSubmission(req *CreateSubmissionRequest) (*models.Submission, error) {
	submission := models.Submission{
		StudentID: req.StudentID,
		QuizID:    req.QuizID,
		Answer:    req.Answer,
	}

	if err := s.db.Create(&submission).Error; err != nil {
		return nil, err
	}

	return s.GetSubmissionByID(submission.ID)
}

func (s *SubmissionService) ListSubmissions(filter *SubmissionFilter) ([]models.Submission, error) {
	query := s.db.Preload("Student").Preload("Quiz")

	if filter.StudentID != 0 {
		query = query.Where("student_id = ?", filter.StudentID)
	}
	if filter.QuizID != 0 {
		query = query.Where("quiz_id = ?", filter.QuizID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var submissions []models.Submission
	err := query.Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}

func (s *SubmissionService) GetSubmissionByID(submissionID uint) (*models.Submission, error) {
	var submission models.Submission
	err := s.db.Preload("Student").Preload("Quiz").First(&submission, submissionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &submission, nil
}

func (s *SubmissionService) UpdateSubmission(submissionID uint, req *UpdateSubmissionRequest) (*models.Submission, error) {
	var submission models.Submission
	if err := s.db.First(&submission, submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.StudentID != 0 {
		submission.StudentID = req.StudentID
	}
	if req.QuizID != 0 {
		submission.QuizID = req.QuizID
	}
	if req.Answer != "" {
		submission.Answer = req.Answer
	}

	if err := s.db.Save(&submission).Error; err != nil {
		return nil, err
	}

	return s.GetSubmissionByID(submission.ID)
}

func (s *SubmissionService) DeleteSubmission(submissionID uint) error {
	var submission models.Submission
	if err := s.db.First(&submission, submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Delete(&submission).Error
}
