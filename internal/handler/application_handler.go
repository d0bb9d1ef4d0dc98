package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/s2s-school/s2s-api/internal/models"
	appErrors "github.com/s2s-school/s2s-api/pkg/errors"
	"github.com/s2s-school/s2s-api/pkg/response"
)

type applicationService interface {
	Create(ctx context.Context, req models.InsertApplication) (*models.Application, error)
	Get(ctx context.Context, id string) (*models.Application, error)
	List(ctx context.Context) ([]models.Application, error)
}

// ApplicationHandler handles course application endpoints.
type ApplicationHandler struct {
	service applicationService
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(svc applicationService) *ApplicationHandler {
	return &ApplicationHandler{service: svc}
}

// Create godoc
// @Summary Submit course application
// @Description Submit an application for an existing user and course
// @Tags Applications
// @Accept json
// @Produce json
// @Param payload body models.InsertApplication true "Application payload"
// @Success 201 {object} models.Application
// @Failure 400 {object} response.ErrorBody
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req models.InsertApplication
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	app, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, app)
}

// Get godoc
// @Summary Get application
// @Tags Applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} models.Application
// @Failure 404 {object} response.ErrorBody
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, app)
}

// List godoc
// @Summary List applications
// @Tags Applications
// @Produce json
// @Success 200 {array} models.Application
// @Router /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, apps)
}
