package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goal-tracker/backend/internal/application/usecase/goal"
	"github.com/goal-tracker/backend/internal/application/usecase/progress"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase     *goal.ListGoalsUseCase
	createUseCase   *goal.CreateGoalUseCase
	getUseCase      *goal.GetGoalUseCase
	updateUseCase   *goal.UpdateGoalUseCase
	deleteUseCase   *goal.DeleteGoalUseCase
	progressUseCase *progress.ComputeProgressUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	progressUseCase *progress.ComputeProgressUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		progressUseCase: progressUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	input := goal.ListGoalsInput{}
	if class := ctx.Query("classification"); class != "" {
		switch entity.GoalClassification(class) {
		case entity.GoalClassificationMinimal, entity.GoalClassificationMeasured, entity.GoalClassificationSMART:
			input.Classification = entity.GoalClassification(class)
		default:
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid classification",
				Field: "classification",
			})
			return
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.GoalRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{Form: req.ToForm()})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	goalID, ok := parseID(ctx, "id", "goal")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{GoalID: goalID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	goalID, ok := parseID(ctx, "id", "goal")
	if !ok {
		return
	}

	var req dto.GoalRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		GoalID: goalID,
		Form:   req.ToForm(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	goalID, ok := parseID(ctx, "id", "goal")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{GoalID: goalID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Progress handles GET /goals/:id/progress requests. ?refresh=true bypasses the cache.
func (c *GoalController) Progress(ctx *gin.Context) {
	goalID, ok := parseID(ctx, "id", "goal")
	if !ok {
		return
	}

	output, err := c.progressUseCase.Execute(ctx.Request.Context(), progress.ComputeProgressInput{
		GoalID:  goalID,
		Refresh: ctx.Query("refresh") == "true",
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalProgressResponse(output.Progress, output.Cached))
}
