package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"opencourse/handlers"
	"opencourse/middleware"
	"opencourse/models"
	"opencourse/routes"
	"opencourse/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
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

	// Nothing listens here; the limiter fails open on Redis errors so
	// requests pass through.
	redisClient := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	limiter := middleware.NewRateLimiter(redisClient)

	router := gin.New()
	routes.SetupRoutes(
		router,
		handlers.NewUserHandler(services.NewUserService(db)),
		handlers.NewCourseHandler(services.NewCourseService(db)),
		handlers.NewLessonHandler(services.NewLessonService(db)),
		handlers.NewQuizHandler(services.NewQuizService(db)),
		handlers.NewSubmissionHandler(services.NewSubmissionService(db)),
		handlers.NewEnrollmentHandler(services.NewEnrollmentService(db)),
		limiter,
	)
	return router, db
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}
