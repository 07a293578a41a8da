package handler

import (
	"errors"
	"net/http"

	"github.com/bistro/backend/internal/domain/access"
	"github.com/bistro/backend/internal/domain/shared"
	"github.com/bistro/backend/internal/interfaces/http/dto"
	"github.com/bistro/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader(middleware.RequestIDHeader)
}

// getUserID extracts the authenticated user ID from JWT claims
func getUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr := middleware.GetJWTUserID(c)
	if userIDStr == "" {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	return uuid.Parse(userIDStr)
}

// getActor builds the authorization actor for the current request
func getActor(c *gin.Context) (access.Actor, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return access.Actor{}, errors.New("actor not found in context")
	}
	return actor, nil
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with an explicit status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, detail string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, detail, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, detail string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, detail)
}

// BindingError sends a 400 response for a request binding failure,
// with per-field details when the error came from validation
func (h *BaseHandler) BindingError(c *gin.Context, err error) {
	if resp, ok := middleware.FormatValidationErrors(err, getRequestID(c)); ok {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	h.BadRequest(c, "Invalid request payload")
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, detail string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, detail)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, detail string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, detail)
}

// Forbidden sends a 403 forbidden response
func (h *BaseHandler) Forbidden(c *gin.Context, detail string) {
	h.Error(c, http.StatusForbidden, dto.ErrCodeForbidden, detail)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, detail string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, detail)
}

// HandleError converts domain errors to HTTP responses, deriving the
// status code from the domain error code
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		statusCode := dto.GetHTTPStatus(domainErr.Code)
		c.JSON(statusCode, dto.NewErrorResponseWithRequestID(domainErr.Code, domainErr.Detail, getRequestID(c)))
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}
