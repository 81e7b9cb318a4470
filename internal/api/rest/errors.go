package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/feral-file/ff-mintgate/internal/api/shared/errors"
	"github.com/feral-file/ff-mintgate/internal/logger"
)

// statusForCode maps an API error code to its HTTP status
func statusForCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case apierrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apierrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apierrors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case apierrors.ErrCodeServiceError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondAPIError responds with an API error at the status its code maps to
func respondAPIError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(statusForCode(apiErr.Code), apiErr)
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, details ...string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(details...))
}

// respondRateLimited responds with a rate limited error
func respondRateLimited(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, apierrors.NewRateLimitedError(message))
}

// respondServiceUnavailable responds with a service error
func respondServiceUnavailable(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusServiceUnavailable, apierrors.NewServiceError(message, details...))
}

// respondInternalError responds with an internal server error and logs the cause
func respondInternalError(c *gin.Context, err error, message string) {
	logger.Error(err)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondExecutorError responds with an executor error at the status its code
// maps to; server-side failures are logged
func respondExecutorError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		if statusForCode(apiErr.Code) >= http.StatusInternalServerError {
			logger.Error(err)
		}
		respondAPIError(c, apiErr)
		return
	}
	respondInternalError(c, err, message)
}
