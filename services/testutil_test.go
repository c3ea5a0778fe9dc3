package services

import (
	"testing"

	"opencourse/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// An in-memory sqlite DB lives per connection; cap the pool so every
	// query sees the same one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Lesson{},
		&models.Quiz{},
		&models.Submission{},
		&models.Enrollment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string, role models.Role) *models.User {
	t.Helper()

	user, err := NewUserService(db).CreateUser(&CreateUserRequest{
		Name:  name,
		Email: email,
		Role:  role,
	})
	if err != nil {
		t.Fatalf("createTestUser() failed: %v", err)
	}
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, title string, instructorID uint) *models.Course {
	t.Helper()

	course, err := NewCourseService(db).CreateCourse(&CreateCourseRequest{
		Title:        title,
		InstructorID: instructorID,
	})
	if err != nil {
		t.Fatalf("createTestCourse() failed: %v", err)
	}
	return course
}

func createTestLesson(t *testing.T, db *gorm.DB, title string, courseID uint) *models.Lesson {
	t.Helper()

	lesson, err := NewLessonService(db).CreateLesson(&CreateLessonRequest{
		Title:    title,
		CourseID: courseID,
	})
	if err != nil {
		t.Fatalf("createTestLesson() failed: %v", err)
	}
	return lesson
}

func createTestQuiz(t *testing.T, db *gorm.DB, question, answer string, lessonID uint) *models.Quiz {
	t.Helper()

	quiz, err := NewQuizService(db).CreateQuiz(&CreateQuizRequest{
		Question: question,
		Options:  []string{answer, "something else"},
		Answer:   answer,
		LessonID: lessonID,
	})
	if err != nil {
		t.Fatalf("createTestQuiz() failed: %v", err)
	}
	return quiz
}
