package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goal-tracker/backend/internal/application/usecase/action"
	"github.com/goal-tracker/backend/internal/application/usecase/matching"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

// ActionController handles action endpoints, including match suggestions.
type ActionController struct {
	listUseCase    *action.ListActionsUseCase
	createUseCase  *action.CreateActionUseCase
	getUseCase     *action.GetActionUseCase
	updateUseCase  *action.UpdateActionUseCase
	deleteUseCase  *action.DeleteActionUseCase
	suggestUseCase *matching.SuggestMatchesUseCase
	confirmUseCase *action.ConfirmMatchUseCase
}

// NewActionController creates a new action controller instance.
func NewActionController(
	listUseCase *action.ListActionsUseCase,
	createUseCase *action.CreateActionUseCase,
	getUseCase *action.GetActionUseCase,
	updateUseCase *action.UpdateActionUseCase,
	deleteUseCase *action.DeleteActionUseCase,
	suggestUseCase *matching.SuggestMatchesUseCase,
	confirmUseCase *action.ConfirmMatchUseCase,
) *ActionController {
	return &ActionController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		suggestUseCase: suggestUseCase,
		confirmUseCase: confirmUseCase,
	}
}

// List handles GET /actions requests.
// Supports goal_id, from, to (RFC 3339) and limit query parameters.
func (c *ActionController) List(ctx *gin.Context) {
	input := action.ListActionsInput{}

	if raw := ctx.Query("goal_id"); raw != "" {
		goalID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid goal ID format", Field: "goal_id"})
			return
		}
		input.GoalID = &goalID
	}

	var ok bool
	if input.From, ok = parseTimeQuery(ctx, "from"); !ok {
		return
	}
	if input.To, ok = parseTimeQuery(ctx, "to"); !ok {
		return
	}

	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid limit", Field: "limit"})
			return
		}
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActionListResponse(output.Actions))
}

// Create handles POST /actions requests.
func (c *ActionController) Create(ctx *gin.Context) {
	var req dto.ActionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), action.CreateActionInput{Form: req.ToForm()})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToActionResponse(output.Action))
}

// Get handles GET /actions/:id requests.
func (c *ActionController) Get(ctx *gin.Context) {
	actionID, ok := parseID(ctx, "id", "action")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), action.GetActionInput{ActionID: actionID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActionResponse(output.Action))
}

// Update handles PUT /actions/:id requests.
func (c *ActionController) Update(ctx *gin.Context) {
	actionID, ok := parseID(ctx, "id", "action")
	if !ok {
		return
	}

	var req dto.ActionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), action.UpdateActionInput{
		ActionID: actionID,
		Form:     req.ToForm(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToActionResponse(output.Action))
}

// Delete handles DELETE /actions/:id requests.
func (c *ActionController) Delete(ctx *gin.Context) {
	actionID, ok := parseID(ctx, "id", "action")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), action.DeleteActionInput{ActionID: actionID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Suggestions handles GET /actions/:id/suggestions requests.
// An optional comma separated keywords parameter replaces the configured keywords.
func (c *ActionController) Suggestions(ctx *gin.Context) {
	actionID, ok := parseID(ctx, "id", "action")
	if !ok {
		return
	}

	input := matching.SuggestMatchesInput{ActionID: actionID, Keywords: keywordsQuery(ctx)}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSuggestionsResponse(output.Suggestions))
}

// Confirm handles POST /actions/:id/confirm requests.
func (c *ActionController) Confirm(ctx *gin.Context) {
	actionID, ok := parseID(ctx, "id", "action")
	if !ok {
		return
	}

	var req dto.ConfirmMatchRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.confirmUseCase.Execute(ctx.Request.Context(), action.ConfirmMatchInput{
		ActionID: actionID,
		GoalID:   req.GoalID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ConfirmMatchResponse{
		Action: dto.ToActionResponse(output.Action),
		Match:  dto.ToMatchResponse(output.Match),
	})
}

func parseTimeQuery(ctx *gin.Context, name string) (*time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " time, expected RFC 3339",
			Field: name,
		})
		return nil, false
	}
	return &t, true
}
