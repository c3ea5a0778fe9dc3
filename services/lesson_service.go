package services

import (
	"errors"

	"opencourse/models"

	"gorm.io/gorm"
)

type LessonService struct {
	db *gorm.DB
}

func NewLessonService(db *gorm.DB) *LessonService {
	return &LessonService{db: db}
}

type CreateLessonRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	CourseID uint   `json:"course_id" binding:"required"`
}

type UpdateLessonRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	CourseID uint   `json:"course_id"`
}

type LessonFilter struct {
	CourseID uint
	Limit    int
	Offset   int
}

func (s *LessonService) CreateLesson(req *CreateLessonRequest) (*models.Lesson, error) {
	lesson := models.Lesson{
		Title:    req.Title,
		Content:  req.Content,
		CourseID: req.CourseID,
	}

	if err := s.db.Create(&lesson).Error; err != nil {
		return nil, err
	}

	return s.GetLessonByID(lesson.ID)
}

func (s *LessonService) ListLessons(filter *LessonFilter) ([]models.Lesson, error) {
	query := s.db.Preload("Course")

	if filter.CourseID != 0 {
		query = query.Where("course_id = ?", filter.CourseID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var lessons []models.Lesson
	err := query.Order("created_at DESC").Find(&lessons).Error
	return lessons, err
}

func (s *LessonService) GetLessonByID(lessonID uint) (*models.Lesson, error) {
	var lesson models.Lesson
	err := s.db.Preload("Course").First(&lesson, lessonID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

func (s *LessonService) UpdateLesson(lessonID uint, req *UpdateLessonRequest) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := s.db.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != "" {
		lesson.Title = req.Title
	}
	if req.Content != "" {
		lesson.Content = req.Content
	}
	if req.CourseID != 0 {
		lesson.CourseID = req.CourseID
	}

	if err := s.db.Save(&lesson).Error; err != nil {
		return nil, err
	}

	return s.GetLessonByID(lesson.ID)
}

func (s *LessonService) DeleteLesson(lessonID uint) error {
	var lesson models.Lesson
	if err := s.db.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Delete(&lesson).Error
}
