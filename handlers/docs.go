package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIDocs serves a machine-readable description of the API: entity schemas,
// their relations, and the routes mounted for each collection.
func APIDocs(c *gin.Context) {
	c.JSON(http.StatusOK, apiDocs)
}

var apiDocs = gin.H{
	"name":    "opencourse API",
	"version": "1.0",
	"entities": gin.H{
		"User": gin.H{
			"fields":   gin.H{"name": "string", "email": "string", "role": "student|instructor"},
			"required": []string{"name", "email", "role"},
			"notes":    "email must be unique; no update or delete is exposed",
		},
		"Course": gin.H{
			"fields":    gin.H{"title": "string", "description": "string", "instructor_id": "uint", "lessons": "[]Lesson"},
			"required":  []string{"title", "instructor_id"},
			"relations": gin.H{"instructor": "User", "lessons": "Lesson[]"},
		},
		"Lesson": gin.H{
			"fields":    gin.H{"title": "string", "content": "string", "course_id": "uint"},
			"required":  []string{"title", "course_id"},
			"relations": gin.H{"course": "Course"},
		},
		"Quiz": gin.H{
			"fields":    gin.H{"question": "string", "options": "[]string", "answer": "string", "lesson_id": "uint"},
			"required":  []string{"question", "answer", "lesson_id"},
			"relations": gin.H{"lesson": "Lesson"},
		},
		"Submission": gin.H{
			"fields":    gin.H{"student_id": "uint", "quiz_id": "uint", "answer": "string"},
			"required":  []string{"student_id", "quiz_id", "answer"},
			"relations": gin.H{"student": "User", "quiz": "Quiz"},
		},
		"Enrollment": gin.H{
			"fields":    gin.H{"student_id": "uint", "course_id": "uint", "enrolled_at": "timestamp (default: now)"},
			"required":  []string{"student_id", "course_id"},
			"relations": gin.H{"student": "User", "course": "Course"},
		},
	},
	"routes": gin.H{
		"/api/users":           []string{"POST", "GET"},
		"/api/users/:id":       []string{"GET"},
		"/api/courses":         []string{"POST", "GET?title=&instructor="},
		"/api/courses/:id":     []string{"GET", "PUT", "DELETE"},
		"/api/lessons":         []string{"POST", "GET?course="},
		"/api/lessons/:id":     []string{"GET", "PUT", "DELETE"},
		"/api/quizzes":         []string{"POST", "GET?lesson="},
		"/api/quizzes/:id":     []string{"GET", "PUT", "DELETE"},
		"/api/submissions":     []string{"POST", "GET?student=&quiz="},
		"/api/submissions/:id": []string{"GET", "PUT", "DELETE"},
		"/api/enrollments":     []string{"POST", "GET?student=&course="},
		"/api/enrollments/:id": []string{"GET", "PUT", "DELETE"},
	},
}
