package services

import (
	"errors"

	"opencourse/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type CreateQuizRequest struct {
	Question string   `json:"question" binding:"required"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer" binding:"required"`
	LessonID uint     `json:"lesson_id" binding:"required"`
}

type UpdateQuizRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	LessonID uint     `json:"lesson_id"`
}

type QuizFilter struct {
	LessonID uint
	Limit    int
	Offset   int
}

func (s *QuizService) CreateQuiz(req *CreateQuizRequest) (*models.Quiz, error) {
	quiz := models.Quiz{
		Question: req.Question,
		Options:  datatypes.NewJSONSlice(req.Options),
		Answer:   req.Answer,
		LessonID: req.LessonID,
	}

	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}

	return s.GetQuizByID(quiz.ID)
}

func (s *QuizService) ListQuizzes(filter *QuizFilter) ([]models.Quiz, error) {
	query := s.db.Preload("Lesson")

	if filter.LessonID != 0 {
		query = query.Where("lesson_id = ?", filter.LessonID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var quizzes []models.Quiz
	err := query.Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

func (s *QuizService) GetQuizByID(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.Preload("Lesson").First(&quiz, quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) UpdateQuiz(quizID uint, req *UpdateQuizRequest) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Question != "" {
		quiz.Question = req.Question
	}
	if req.Options != nil {
		quiz.Options = datatypes.NewJSONSlice(req.Options)
	}
	if req.Answer != "" {
		quiz.Answer = req.Answer
	}
	if req.LessonID != 0 {
		quiz.LessonID = req.LessonID
	}

	if err := s.db.Save(&quiz).Error; err != nil {
		return nil, err
	}

	return s.GetQuizByID(quiz.ID)
}

func (s *QuizService) DeleteQuiz(quizID uint) error {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Delete(&quiz).Error
}
