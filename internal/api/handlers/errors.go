package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"studio-admin-backend/internal/auth"
	apperrors "studio-admin-backend/internal/errors"
	"studio-admin-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsValidation(err), errors.As(err, &verrs), errors.Is(err, apperrors.ErrInvalidStatusTransition):
		return http.StatusBadRequest
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		return http.StatusConflict
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status its kind maps to. Internal errors keep
// the message generic and carry the cause in details.
func respondError(c *gin.Context, err error, msg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithField("error", err.Error()).Error(msg)
		c.JSON(status, ErrorResponse{Error: msg, Details: err.Error()})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func parseID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + entity + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// parseBoolQuery returns nil when the parameter is absent
func parseBoolQuery(c *gin.Context, name string) (*bool, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " parameter"})
		return nil, false
	}
	return &v, true
}

func currentUser(c *gin.Context) string {
	if username, ok := auth.GetUsername(c); ok {
		return username
	}
	return ""
}
