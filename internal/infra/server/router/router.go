// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/goal-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	goalController     *controller.GoalController
	actionController   *controller.ActionController
	valueController    *controller.ValueController
	termController     *controller.TermController
	metricController   *controller.MetricController
	progressController *controller.ProgressController
	matchingController *controller.MatchingController
	rateLimiter        *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// Controllers groups the API controllers handed to the router.
type Controllers struct {
	Health   *controller.HealthController
	Goal     *controller.GoalController
	Action   *controller.ActionController
	Value    *controller.ValueController
	Term     *controller.TermController
	Metric   *controller.MetricController
	Progress *controller.ProgressController
	Matching *controller.MatchingController
}

// NewRouter creates a new router instance with all dependencies.
// A nil authMiddleware leaves the API open; a nil rateLimiter disables limiting.
func NewRouter(
	controllers Controllers,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   controllers.Health,
		goalController:     controllers.Goal,
		actionController:   controllers.Action,
		valueController:    controllers.Value,
		termController:     controllers.Term,
		metricController:   controllers.Metric,
		progressController: controllers.Progress,
		matchingController: controllers.Matching,
		rateLimiter:        rateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if environment != "test" {
		r.engine.Use(gin.Logger())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	if r.authMiddleware != nil {
		v1.Use(r.authMiddleware.Authenticate())
	}

	goals := v1.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.GET("/:id", r.goalController.Get)
		goals.PUT("/:id", r.goalController.Update)
		goals.DELETE("/:id", r.goalController.Delete)
		goals.GET("/:id/progress", r.goalController.Progress)
		goals.GET("/:id/matches", r.matchingController.GoalMatches)
	}

	actions := v1.Group("/actions")
	{
		actions.GET("", r.actionController.List)
		actions.POST("", r.actionController.Create)
		actions.GET("/:id", r.actionController.Get)
		actions.PUT("/:id", r.actionController.Update)
		actions.DELETE("/:id", r.actionController.Delete)
		actions.GET("/:id/suggestions", r.actionController.Suggestions)
		actions.POST("/:id/confirm", r.actionController.Confirm)
	}

	values := v1.Group("/values")
	{
		values.GET("", r.valueController.List)
		values.POST("", r.valueController.Create)
		values.GET("/:id", r.valueController.Get)
		values.PUT("/:id", r.valueController.Update)
		values.DELETE("/:id", r.valueController.Delete)
	}

	terms := v1.Group("/terms")
	{
		terms.GET("", r.termController.List)
		terms.GET("/active", r.termController.Active)
		terms.POST("", r.termController.Create)
		terms.GET("/:id", r.termController.Get)
		terms.PUT("/:id", r.termController.Update)
		terms.DELETE("/:id", r.termController.Delete)
		terms.GET("/:id/inference", r.matchingController.TermInference)
	}

	metrics := v1.Group("/metrics")
	{
		metrics.GET("", r.metricController.List)
		metrics.POST("", r.metricController.FindOrCreate)
	}

	v1.GET("/progress/summary", r.progressController.Summary)
	v1.GET("/inference", r.matchingController.Inference)
}
