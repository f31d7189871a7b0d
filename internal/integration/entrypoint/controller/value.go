package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goal-tracker/backend/internal/application/usecase/value"
	"github.com/goal-tracker/backend/internal/domain/entity"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

// ValueController handles personal value endpoints.
type ValueController struct {
	listUseCase   *value.ListValuesUseCase
	createUseCase *value.CreateValueUseCase
	getUseCase    *value.GetValueUseCase
	updateUseCase *value.UpdateValueUseCase
	deleteUseCase *value.DeleteValueUseCase
}

// NewValueController creates a new personal value controller instance.
func NewValueController(
	listUseCase *value.ListValuesUseCase,
	createUseCase *value.CreateValueUseCase,
	getUseCase *value.GetValueUseCase,
	updateUseCase *value.UpdateValueUseCase,
	deleteUseCase *value.DeleteValueUseCase,
) *ValueController {
	return &ValueController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /values requests, optionally filtered by ?level=.
func (c *ValueController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), value.ListValuesInput{
		Level: entity.ValueLevel(ctx.Query("level")),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToValueListResponse(output.Values))
}

// Create handles POST /values requests.
func (c *ValueController) Create(ctx *gin.Context) {
	var req dto.ValueRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), value.CreateValueInput{Form: req.ToForm()})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToValueResponse(output.Value))
}

// Get handles GET /values/:id requests.
func (c *ValueController) Get(ctx *gin.Context) {
	valueID, ok := parseID(ctx, "id", "value")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), value.GetValueInput{ValueID: valueID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToValueResponse(output.Value))
}

// Update handles PUT /values/:id requests.
func (c *ValueController) Update(ctx *gin.Context) {
	valueID, ok := parseID(ctx, "id", "value")
	if !ok {
		return
	}

	var req dto.ValueRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), value.UpdateValueInput{
		ValueID: valueID,
		Form:    req.ToForm(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToValueResponse(output.Value))
}

// Delete handles DELETE /values/:id requests.
func (c *ValueController) Delete(ctx *gin.Context) {
	valueID, ok := parseID(ctx, "id", "value")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), value.DeleteValueInput{ValueID: valueID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
