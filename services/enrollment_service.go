package services

import (
	"errors"
	"time"

	"opencourse/models"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

type CreateEnrollmentRequest struct {
	StudentID  uint       `json:"student_id" binding:"required"`
	CourseID   uint       `json:"course_id" binding:"required"`
	EnrolledAt *time.Time `json:"enrolled_at"`
}

type UpdateEnrollmentRequest struct {
	StudentID  uint       `json:"student_id"`
	CourseID   uint       `json:"course_id"`
	EnrolledAt *time.Time `json:"enrolled_at"`
}

type EnrollmentFilter struct {
	StudentID uint
	CourseID  uint
	Limit     int
	Offset    int
}

func (s *EnrollmentService) CreateEnrollment(req *CreateEnrollmentRequest) (*models.Enrollment, error) {
	enrolledAt := time.Now().UTC()
	if req.EnrolledAt != nil {
		enrolledAt = *req.EnrolledAt
	}

	enrollment := models.Enrollment{
		StudentID:  req.StudentID,
		CourseID:   req.CourseID,
		EnrolledAt: enrolledAt,
	}

	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, err
	}

	return s.GetEnrollmentByID(enrollment.ID)
}

func (s *EnrollmentService) ListEnrollments(filter *EnrollmentFilter) ([]models.Enrollment, error) {
	query := s.db.Preload("Student").Preload("Course")

	if filter.StudentID != 0 {
		query = query.Where("student_id = ?", filter.StudentID)
	}
	if filter.CourseID != 0 {
		query = query.Where("course_id = ?", filter.CourseID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var enrollments []models.Enrollment
	err := query.Order("enrolled_at DESC").Find(&enrollments).Error
	return enrollments, err
}

func (s *EnrollmentService) GetEnrollmentByID(enrollmentID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Preload("Student").Preload("Course").First(&enrollment, enrollmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

func (s *EnrollmentService) UpdateEnrollment(enrollmentID uint, req *UpdateEnrollmentRequest) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.First(&enrollment, enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.StudentID != 0 {
		enrollment.StudentID = req.StudentID
	}
	if req.CourseID != 0 {
		enrollment.CourseID = req.CourseID
	}
	if req.EnrolledAt != nil {
		enrollment.EnrolledAt = *req.EnrolledAt
	}

	if err := s.db.Save(&enrollment).Error; err != nil {
		return nil, err
	}

	return s.GetEnrollmentByID(enrollment.ID)
}

func (s *EnrollmentService) DeleteEnrollment(enrollmentID uint) error {
	var enrollment models.Enrollment
	if err := s.db.First(&enrollment, enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Delete(&enrollment).Error
}
