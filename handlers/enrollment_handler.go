package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"opencourse/services"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollmentService *services.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService *services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
	}
}

func (h *EnrollmentHandler) CreateEnrollment(c *gin.Context) {
	var req services.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	enrollment, err := h.enrollmentService.CreateEnrollment(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create enrollment", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, enrollment)
}

func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	var filter services.EnrollmentFilter

	if v := c.Query("student"); v != "" {
		studentID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid student ID"})
			return
		}
		filter.StudentID = uint(studentID)
	}
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

	enrollments, err := h.enrollmentService.ListEnrollments(&filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list enrollments", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, enrollments)
}

func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	enrollmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid enrollment ID"})
		return
	}

	enrollment, err := h.enrollmentService.GetEnrollmentByID(uint(enrollmentID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Enrollment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get enrollment", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, enrollment)
}

func (h *EnrollmentHandler) UpdateEnrollment(c *gin.Context) {
	enrollmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid enrollment ID"})
		return
	}

	var req services.UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	enrollment, err := h.enrollmentService.UpdateEnrollment(uint(enrollmentID), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Enrollment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update enrollment", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, enrollment)
}

func (h *EnrollmentHandler) DeleteEnrollment(c *gin.Context) {
	enrollmentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid enrollment ID"})
		return
	}

	if err := h.enrollmentService.DeleteEnrollment(uint(enrollmentID)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Enrollment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete enrollment", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enrollment deleted"})
}
