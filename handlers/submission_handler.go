package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"opencourse/services"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionService *services.SubmissionService
}

func NewSubmissionHandler(submissionService *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var req services.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	submission, err := h.submissionService.CreateSubmission(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create submission", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, submission)
}

func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	var filter services.SubmissionFilter

	if v := c.Query("student"); v != "" {
		studentID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid student ID"})
			return
		}
		filter.StudentID = uint(studentID)
	}
	if v := c.Query("quiz"); v != "" {
		quizID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid quiz ID"})
			return
		}
		filter.QuizID = uint(quizID)
	}
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))
	filter.Offset, _ = strconv.Atoi(c.Query("offset"))

	submissions, err := h.submissionService.ListSubmissions(&filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list submissions", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, submissions)
}

func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	submissionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid submission ID"})
		return
	}

	submission, err := h.submissionService.GetSubmissionByID(uint(submissionID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get submission", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, submission)
}

func (h *SubmissionHandler) UpdateSubmission(c *gin.Context) {
	submissionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid submission ID"})
		return
	}

	var req services.UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	submission, err := h.submissionService.UpdateSubmission(uint(submissionID), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update submission", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, submission)
}

func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	submissionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid submission ID"})
		return
	}

	if err := h.submissionService.DeleteSubmission(uint(submissionID)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete submission", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission deleted"})
}
