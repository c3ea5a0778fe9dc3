package main

import (
	"log"
	"strings"

	"opencourse/config"
	"opencourse/handlers"
	"opencourse/middleware"
	"opencourse/models"
	"opencourse/routes"
	"opencourse/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Lesson{},
		&models.Quiz{},
		&models.Submission{},
		&models.Enrollment{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	userService := services.NewUserService(db)
	courseService := services.NewCourseService(db)
	lessonService := services.NewLessonService(db)
	quizService := services.NewQuizService(db)
	submissionService := services.NewSubmissionService(db)
	enrollmentService := services.NewEnrollmentService(db)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	courseHandler := handlers.NewCourseHandler(courseService)
	lessonHandler := handlers.NewLessonHandler(lessonService)
	quizHandler := handlers.NewQuizHandler(quizService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	corsCfg := cors.DefaultConfig()
	if cfg.AllowedOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	// Setup routes
	limiter := middleware.NewRateLimiter(redisClient)
	routes.SetupRoutes(router, userHandler, courseHandler, lessonHandler, quizHandler, submissionHandler, enrollmentHandler, limiter)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
