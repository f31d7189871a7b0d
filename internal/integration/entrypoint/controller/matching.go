package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goal-tracker/backend/internal/application/usecase/matching"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

// MatchingController handles batch matching endpoints. Nothing is written.
type MatchingController struct {
	inferUseCase     *matching.InferPeriodUseCase
	matchGoalUseCase *matching.MatchGoalUseCase
}

// NewMatchingController creates a new matching controller instance.
func NewMatchingController(
	inferUseCase *matching.InferPeriodUseCase,
	matchGoalUseCase *matching.MatchGoalUseCase,
) *MatchingController {
	return &MatchingController{
		inferUseCase:     inferUseCase,
		matchGoalUseCase: matchGoalUseCase,
	}
}

// Inference handles GET /inference requests. Requires from and to (RFC 3339).
func (c *MatchingController) Inference(ctx *gin.Context) {
	input := matching.InferPeriodInput{Keywords: keywordsQuery(ctx)}

	var ok bool
	if input.From, ok = parseTimeQuery(ctx, "from"); !ok {
		return
	}
	if input.To, ok = parseTimeQuery(ctx, "to"); !ok {
		return
	}

	c.infer(ctx, input)
}

// TermInference handles GET /terms/:id/inference requests over the term's dates.
func (c *MatchingController) TermInference(ctx *gin.Context) {
	termID, ok := parseID(ctx, "id", "term")
	if !ok {
		return
	}

	c.infer(ctx, matching.InferPeriodInput{TermID: &termID, Keywords: keywordsQuery(ctx)})
}

func (c *MatchingController) infer(ctx *gin.Context, input matching.InferPeriodInput) {
	output, err := c.inferUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInferenceResponse(output.TermID, output.From, output.To, output.RunAt, output.Session))
}

// GoalMatches handles GET /goals/:id/matches requests.
// Optional from and to narrow the actions considered.
func (c *MatchingController) GoalMatches(ctx *gin.Context) {
	goalID, ok := parseID(ctx, "id", "goal")
	if !ok {
		return
	}

	input := matching.MatchGoalInput{GoalID: goalID, Keywords: keywordsQuery(ctx)}
	if input.From, ok = parseTimeQuery(ctx, "from"); !ok {
		return
	}
	if input.To, ok = parseTimeQuery(ctx, "to"); !ok {
		return
	}

	output, err := c.matchGoalUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalMatchesResponse(output.GoalID, output.ActionsAnalyzed, output.Matches, output.Total))
}

func keywordsQuery(ctx *gin.Context) []string {
	if raw := ctx.Query("keywords"); raw != "" {
		return strings.Split(raw, ",")
	}
	return nil
}
