package routes

import (
	"net/http"
	"time"

	"opencourse/handlers"
	"opencourse/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	userHandler *handlers.UserHandler,
	courseHandler *handlers.CourseHandler,
	lessonHandler *handlers.LessonHandler,
	quizHandler *handlers.QuizHandler,
	submissionHandler *handlers.SubmissionHandler,
	enrollmentHandler *handlers.EnrollmentHandler,
	limiter *middleware.RateLimiter,
) {
	// API routes
	api := router.Group("/api")
	api.Use(limiter.Limit("api", 300, time.Minute))
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
		}

		courses := api.Group("/courses")
		{
			courses.POST("", courseHandler.CreateCourse)
			courses.GET("", courseHandler.ListCourses)
			courses.GET("/:id", courseHandler.GetCourse)
			courses.PUT("/:id", courseHandler.UpdateCourse)
			courses.DELETE("/:id", courseHandler.DeleteCourse)
		}

		lessons := api.Group("/lessons")
		{
			lessons.POST("", lessonHandler.CreateLesson)
			lessons.GET("", lessonHandler.ListLessons)
			lessons.GET("/:id", lessonHandler.GetLesson)
			lessons.PUT("/:id", lessonHandler.UpdateLesson)
			lessons.DELETE("/:id", lessonHandler.DeleteLesson)
		}

		quizzes := api.Group("/quizzes")
		{
			quizzes.POST("", quizHandler.CreateQuiz)
			quizzes.GET("", quizHandler.ListQuizzes)
			quizzes.GET("/:id", quizHandler.GetQuiz)
			quizzes.PUT("/:id", quizHandler.UpdateQuiz)
			quizzes.DELETE("/:id", quizHandler.DeleteQuiz)
		}

		submissions := api.Group("/submissions")
		{
			submissions.POST("", submissionHandler.CreateSubmission)
			submissions.GET("", submissionHandler.ListSubmissions)
			submissions.GET("/:id", submissionHandler.GetSubmission)
			submissions.PUT("/:id", submissionHandler.UpdateSubmission)
			submissions.DELETE("/:id", submissionHandler.DeleteSubmission)
		}

		// Mounted under /api like the rest of the collections.
		enrollments := api.Group("/enrollments")
		{
			enrollments.POST("", enrollmentHandler.CreateEnrollment)
			enrollments.GET("", enrollmentHandler.ListEnrollments)
			enrollments.GET("/:id", enrollmentHandler.GetEnrollment)
			enrollments.PUT("/:id", enrollmentHandler.UpdateEnrollment)
			enrollments.DELETE("/:id", enrollmentHandler.DeleteEnrollment)
		}

		// API documentation
		api.GET("/docs", handlers.APIDocs)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
