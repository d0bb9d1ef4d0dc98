package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/s2s-school/s2s-api/internal/models"
	appErrors "github.com/s2s-school/s2s-api/pkg/errors"
	"github.com/s2s-school/s2s-api/pkg/response"
)

type contactService interface {
	Create(ctx context.Context, req models.InsertContactForm) (*models.ContactForm, error)
	List(ctx context.Context) ([]models.ContactForm, error)
}

// ContactFormHandler handles contact-form intake.
type ContactFormHandler struct {
	service contactService
}

// NewContactFormHandler creates a new contact-form handler.
func NewContactFormHandler(svc contactService) *ContactFormHandler {
	return &ContactFormHandler{service: svc}
}

// Create godoc
// @Summary Submit contact form
// @Description Store a contact form and notify the operator by email
// @Tags ContactForms
// @Accept json
// @Produce json
// @Param payload body models.InsertContactForm true "Contact form payload"
// @Success 201 {object} models.ContactForm
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /contact_form [post]
func (h *ContactFormHandler) Create(c *gin.Context) {
	var req models.InsertContactForm
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	form, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, form)
}

// List godoc
// @Summary List contact forms
// @Tags ContactForms
// @Produce json
// @Success 200 {array} models.ContactForm
// @Router /contact_form [get]
func (h *ContactFormHandler) List(c *gin.Context) {
	forms, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, forms)
}
