package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goal-tracker/backend/internal/application/usecase/progress"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

// ProgressController handles cross-goal progress endpoints.
type ProgressController struct {
	summaryUseCase *progress.GetSummaryUseCase
}

// NewProgressController creates a new progress controller instance.
func NewProgressController(summaryUseCase *progress.GetSummaryUseCase) *ProgressController {
	return &ProgressController{summaryUseCase: summaryUseCase}
}

// Summary handles GET /progress/summary requests.
func (c *ProgressController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProgressSummaryResponse(output.Summary, output.Goals))
}
