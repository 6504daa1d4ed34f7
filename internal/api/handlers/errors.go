package handlers

import (
	"errors"
	"net/http"

	"davisbacon/internal/api/models"
	"davisbacon/internal/metrics"
	"davisbacon/internal/model"

	"github.com/gin-gonic/gin"
)

// Error codes returned in the error envelope.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeUnknownScenario  = "UNKNOWN_SCENARIO"
	CodeInvalidAxis      = "INVALID_AXIS"
	CodeInvalidRange     = "INVALID_RANGE"
	CodeInternal         = "INTERNAL_ERROR"
)

// respondError maps an engine error to its status and code. Anything not in
// the taxonomy is treated as a bad request.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	detail := models.ErrorDetail{Code: CodeInvalidRequest, Message: err.Error()}

	var (
		verr *model.ValidationError
		uerr *model.UnknownScenarioError
		aerr *model.InvalidAxisError
		rerr *model.InvalidRangeError
	)
	switch {
	case errors.As(err, &verr):
		detail.Code = CodeInvalidParameter
		detail.Details = map[string]interface{}{
			"field": verr.Field,
			"value": verr.Value,
			"min":   verr.Range.Min,
			"max":   verr.Range.Max,
		}
	case errors.As(err, &uerr):
		status = http.StatusNotFound
		detail.Code = CodeUnknownScenario
		detail.Details = map[string]interface{}{"name": uerr.Name}
	case errors.As(err, &aerr):
		detail.Code = CodeInvalidAxis
		detail.Details = map[string]interface{}{"axis": aerr.Axis}
	case errors.As(err, &rerr):
		detail.Code = CodeInvalidRange
		detail.Details = map[string]interface{}{"axis": rerr.Axis}
	}

	metrics.RejectedRequests.WithLabelValues(detail.Code).Inc()
	c.JSON(status, models.ErrorResponse{Error: detail})
}

func invalidRequest(c *gin.Context, err error) {
	metrics.RejectedRequests.WithLabelValues(CodeInvalidRequest).Inc()
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    CodeInvalidRequest,
			Message: err.Error(),
		},
	})
}
