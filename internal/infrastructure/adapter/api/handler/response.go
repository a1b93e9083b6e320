package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// respondError renders err with its mapped status and code. Unknown errors
// are logged and reported as a generic server error.
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := domainerr.HTTPStatus(err)
	message := domainerr.PublicMessage(err)

	if !domainerr.IsDomainError(err) {
		logger.Error("Unhandled error in API request", map[string]any{
			"operation":  operation,
			"error":      err.Error(),
			"path":       c.Request.URL.Path,
			"request_id": coreport.RequestIDFromContext(c.Request.Context()),
		})
		message = "Internal server error"
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBindError reports a malformed request body or parameter
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}

// callerOrAbort returns the authenticated caller, answering 401 when absent
func callerOrAbort(c *gin.Context) (entity.Caller, bool) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok || caller.Validate() != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrAuthRequired),
			Message: "Authentication required",
		})
		return entity.Caller{}, false
	}
	return caller, true
}
