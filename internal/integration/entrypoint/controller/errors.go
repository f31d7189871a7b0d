package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

// validationStatuses maps validation kinds to HTTP status codes.
var validationStatuses = map[error]int{
	domainerror.ErrContentEmpty:          http.StatusBadRequest,
	domainerror.ErrMissingRequiredField:  http.StatusBadRequest,
	domainerror.ErrRangeViolation:        http.StatusUnprocessableEntity,
	domainerror.ErrDateRangeInvalid:      http.StatusUnprocessableEntity,
	domainerror.ErrInconsistentReference: http.StatusUnprocessableEntity,
	domainerror.ErrDuplicateRecord:       http.StatusConflict,
	domainerror.ErrForeignKeyViolation:   http.StatusUnprocessableEntity,
}

// domainStatuses maps aggregate errors to HTTP status codes, checked in order.
var domainStatuses = []struct {
	kind   error
	status int
}{
	{domainerror.ErrGoalNotFound, http.StatusNotFound},
	{domainerror.ErrActionNotFound, http.StatusNotFound},
	{domainerror.ErrValueNotFound, http.StatusNotFound},
	{domainerror.ErrTermNotFound, http.StatusNotFound},
	{domainerror.ErrMetricNotFound, http.StatusNotFound},
	{domainerror.ErrNotAGoal, http.StatusNotFound},
	{domainerror.ErrNoMatch, http.StatusUnprocessableEntity},
	{domainerror.ErrInvalidValueLevel, http.StatusBadRequest},
	{domainerror.ErrInvalidMetricType, http.StatusBadRequest},
}

// handleError writes the HTTP response for an error returned by a use case.
func handleError(ctx *gin.Context, err error) {
	var vErr *domainerror.ValidationError
	if errors.As(err, &vErr) {
		status, ok := validationStatuses[vErr.Err]
		if !ok {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: vErr.Error(),
			Code:  string(vErr.Code),
			Field: vErr.Field,
		})
		return
	}

	for _, s := range domainStatuses {
		if errors.Is(err, s.kind) {
			ctx.JSON(s.status, dto.ErrorResponse{
				Error: s.kind.Error(),
				Code:  domainCode(err),
			})
			return
		}
	}

	slog.Error("Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// domainCode extracts the code of an aggregate error, if any.
func domainCode(err error) string {
	var (
		goalErr   *domainerror.GoalError
		actionErr *domainerror.ActionError
		valueErr  *domainerror.ValueError
		termErr   *domainerror.TermError
		metricErr *domainerror.MetricError
	)
	switch {
	case errors.As(err, &goalErr):
		return string(goalErr.Code)
	case errors.As(err, &actionErr):
		return string(actionErr.Code)
	case errors.As(err, &valueErr):
		return string(valueErr.Code)
	case errors.As(err, &termErr):
		return string(termErr.Code)
	case errors.As(err, &metricErr):
		return string(metricErr.Code)
	}
	return ""
}

// parseID parses a uuid path parameter, writing a 400 response on failure.
func parseID(ctx *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + label + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body, writing a 400 response on failure.
func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}
