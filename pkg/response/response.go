package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/s2s-school/s2s-api/pkg/errors"
)

// ErrorBody wraps a typed error for JSON serialization. Success responses
// carry the entity or list directly, matching the public wire format.
type ErrorBody struct {
	Error *appErrors.Error `json:"error"`
}

// JSON sends a success response with the payload as the body.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error response, normalising the error to the common shape.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, ErrorBody{Error: appErr})
}
