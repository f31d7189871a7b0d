package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goal-tracker/backend/internal/application/usecase/metric"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

// MetricController handles metric catalog endpoints.
type MetricController struct {
	listUseCase         *metric.ListMetricsUseCase
	findOrCreateUseCase *metric.FindOrCreateMetricUseCase
}

// NewMetricController creates a new metric controller instance.
func NewMetricController(
	listUseCase *metric.ListMetricsUseCase,
	findOrCreateUseCase *metric.FindOrCreateMetricUseCase,
) *MetricController {
	return &MetricController{
		listUseCase:         listUseCase,
		findOrCreateUseCase: findOrCreateUseCase,
	}
}

// List handles GET /metrics requests.
func (c *MetricController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMetricListResponse(output.Metrics))
}

// FindOrCreate handles POST /metrics requests. It answers 201 when the
// entry was created and 200 when it already existed.
func (c *MetricController) FindOrCreate(ctx *gin.Context) {
	var req dto.MetricRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.findOrCreateUseCase.Execute(ctx.Request.Context(), metric.FindOrCreateMetricInput{
		Unit:             req.Unit,
		MetricType:       entity.MetricType(req.MetricType),
		CanonicalUnit:    req.CanonicalUnit,
		ConversionFactor: req.ConversionFactor,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToMetricResponse(output.Metric))
}
