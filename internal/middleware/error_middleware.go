package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/cgpatracker/internal/app/models/dto"
	"github.com/yigit/cgpatracker/internal/pkg/apperrors"
	"github.com/yigit/cgpatracker/internal/pkg/logger"
)

// apiError is the status and error detail a sentinel maps to
type apiError struct {
	status int
	code   dto.ErrorCode
}

// ErrorStatus returns the HTTP status and error code for err
func ErrorStatus(err error) (int, dto.ErrorCode) {
	e := classify(err)
	return e.status, e.code
}

func classify(err error) apiError {
	switch {
	case errors.Is(err, apperrors.ErrEmptyInput):
		return apiError{http.StatusUnprocessableEntity, dto.ErrorCodeEmptyInput}
	case errors.Is(err, apperrors.ErrInvalidGrade):
		return apiError{http.StatusBadRequest, dto.ErrorCodeInvalidGrade}
	case errors.Is(err, apperrors.ErrOutOfRange):
		return apiError{http.StatusBadRequest, dto.ErrorCodeOutOfRange}
	case errors.Is(err, apperrors.ErrUnknownScale):
		return apiError{http.StatusBadRequest, dto.ErrorCodeUnknownScale}
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return apiError{http.StatusBadRequest, dto.ErrorCodeValidationFailed}
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return apiError{http.StatusNotFound, dto.ErrorCodeResourceNotFound}
	default:
		return apiError{http.StatusInternalServerError, dto.ErrorCodeInternalServer}
	}
}

// HandleAPIError writes the standard error response for err
func HandleAPIError(c *gin.Context, err error) {
	e := classify(err)

	message := err.Error()
	if e.status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		message = "Internal server error"
	}

	detail := dto.NewErrorDetail(e.code, message)

	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Field != "" {
		detail = detail.WithField(custom.Field)
	}

	c.AbortWithStatusJSON(e.status, dto.NewErrorResponse(detail))
}

// NotFound answers unmatched routes with the standard error body
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrResourceNotFound, "no route for "+c.Request.Method+" "+c.Request.URL.Path))
	}
}
