package services

import (
	"errors"
	"strings"

	"opencourse/models"

	"gorm.io/gorm"
)

type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

type CreateCourseRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	InstructorID uint   `json:"instructor_id" binding:"required"`
	Lessons      []uint `json:"lessons"`
}

type UpdateCourseRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	InstructorID uint   `json:"instructor_id"`
}

// CourseFilter criteria are combined with AND; zero values impose no
// constraint. Title is a case-insensitive substring match, the rest are
// exact-id matches.
type CourseFilter struct {
	Title        string
	InstructorID uint
	Limit        int
	Offset       int
}

func (s *CourseService) CreateCourse(req *CreateCourseRequest) (*models.Course, error) {
	course := models.Course{
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: req.InstructorID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}

		// The create body may carry ids of existing lessons; claim them
		// by pointing their course_id at the new course.
		if len(req.Lessons) > 0 {
			if err := tx.Model(&models.Lesson{}).
				Where("id IN ?", req.Lessons).
				Update("course_id", course.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCourseByID(course.ID)
}

func (s *CourseService) ListCourses(filter *CourseFilter) ([]models.Course, error) {
	query := s.db.Preload("Instructor").Preload("Lessons")

	if filter.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.InstructorID != 0 {
		query = query.Where("instructor_id = ?", filter.InstructorID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var courses []models.Course
	err := query.Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (s *CourseService) GetCourseByID(courseID uint) (*models.Course, error) {
	var course models.Course
	err := s.db.Preload("Instructor").Preload("Lessons").First(&course, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) UpdateCourse(courseID uint, req *UpdateCourseRequest) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.InstructorID != 0 {
		course.InstructorID = req.InstructorID
	}

	if err := s.db.Save(&course).Error; err != nil {
		return nil, err
	}

	return s.GetCourseByID(course.ID)
}

func (s *CourseService) DeleteCourse(courseID uint) error {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	// No cascade: the course's lessons keep their course_id and dangle.
	return s.db.Delete(&course).Error
}
