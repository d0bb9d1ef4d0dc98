package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/s2s-school/s2s-api/internal/models"
	"github.com/s2s-school/s2s-api/pkg/response"
)

type courseService interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, id string) (*models.Course, error)
	ByCategory(ctx context.Context, category string) ([]models.Course, error)
	BySubject(ctx context.Context, subject string) ([]models.Course, error)
}

// CourseHandler handles catalog course endpoints.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(svc courseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Success 200 {array} models.Course
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, courses)
}

// Get godoc
// @Summary Get course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} response.ErrorBody
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, course)
}

// ByCategory godoc
// @Summary List courses by category
// @Description Exact, case-sensitive category match
// @Tags Courses
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} models.Course
// @Router /courses/category/{category} [get]
func (h *CourseHandler) ByCategory(c *gin.Context) {
	courses, err := h.service.ByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, courses)
}

// BySubject godoc
// @Summary List courses by subject
// @Description Exact, case-sensitive subject match
// @Tags Courses
// @Produce json
// @Param subject path string true "Subject"
// @Success 200 {array} models.Course
// @Router /courses/subject/{subject} [get]
func (h *CourseHandler) BySubject(c *gin.Context) {
	courses, err := h.service.BySubject(c.Request.Context(), c.Param("subject"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, courses)
}
