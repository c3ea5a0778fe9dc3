package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"opencourse/services"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	lessonService *services.LessonService
}

func NewLessonHandler(lessonService *services.LessonService) *LessonHandler {
	return &LessonHandler{
		lessonService: lessonService,
	}
}

func (h *LessonHandler) CreateLesson(c *gin.Context) {
	var req services.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	lesson, err := h.lessonService.CreateLesson(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create lesson", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, lesson)
}

func (h *LessonHandler) ListLessons(c *gin.Context) {
	var filter services.LessonFilter

	if v := c.Query("course"); v != "" {
		courseID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid course ID"})
			return
		}
		filter.CourseID = uint(courseID)
	}
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))
	filter.Offset, _ = strconv.Atoi(c.Query("offset"))

	lessons, err := h.lessonService.ListLessons(&filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list lessons", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, lessons)
}

func (h *LessonHandler) GetLesson(c *gin.Context) {
	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid lesson ID"})
		return
	}

	lesson, err := h.lessonService.GetLessonByID(uint(lessonID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Lesson not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get lesson", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid lesson ID"})
		return
	}

	var req services.UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	lesson, err := h.lessonService.UpdateLesson(uint(lessonID), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Lesson not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update lesson", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	lessonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid lesson ID"})
		return
	}

	if err := h.lessonService.DeleteLesson(uint(lessonID)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Lesson not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete lesson", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson deleted"})
}
