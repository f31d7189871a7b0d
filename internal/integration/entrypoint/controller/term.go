package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goal-tracker/backend/internal/application/usecase/term"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

// TermController handles term endpoints.
type TermController struct {
	listUseCase   *term.ListTermsUseCase
	activeUseCase *term.GetActiveTermUseCase
	createUseCase *term.CreateTermUseCase
	getUseCase    *term.GetTermUseCase
	updateUseCase *term.UpdateTermUseCase
	deleteUseCase *term.DeleteTermUseCase
}

// NewTermController creates a new term controller instance.
func NewTermController(
	listUseCase *term.ListTermsUseCase,
	activeUseCase *term.GetActiveTermUseCase,
	createUseCase *term.CreateTermUseCase,
	getUseCase *term.GetTermUseCase,
	updateUseCase *term.UpdateTermUseCase,
	deleteUseCase *term.DeleteTermUseCase,
) *TermController {
	return &TermController{
		listUseCase:   listUseCase,
		activeUseCase: activeUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /terms requests.
func (c *TermController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTermListResponse(output))
}

// Active handles GET /terms/active requests.
func (c *TermController) Active(ctx *gin.Context) {
	output, err := c.activeUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTermOverviewResponse(output.Term))
}

// Create handles POST /terms requests.
func (c *TermController) Create(ctx *gin.Context) {
	var req dto.TermRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), term.CreateTermInput{Form: req.ToForm()})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTermResponse(output.Plan))
}

// Get handles GET /terms/:id requests.
func (c *TermController) Get(ctx *gin.Context) {
	termID, ok := parseID(ctx, "id", "term")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), term.GetTermInput{TermID: termID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTermOverviewResponse(output.Term))
}

// Update handles PUT /terms/:id requests.
func (c *TermController) Update(ctx *gin.Context) {
	termID, ok := parseID(ctx, "id", "term")
	if !ok {
		return
	}

	var req dto.TermRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), term.UpdateTermInput{
		TermID: termID,
		Form:   req.ToForm(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTermResponse(output.Plan))
}

// Delete handles DELETE /terms/:id requests.
func (c *TermController) Delete(ctx *gin.Context) {
	termID, ok := parseID(ctx, "id", "term")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), term.DeleteTermInput{TermID: termID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
