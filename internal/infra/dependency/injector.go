// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/goal-tracker/backend/config"
	"github.com/goal-tracker/backend/internal/application/adapter"
	"github.com/goal-tracker/backend/internal/application/usecase/action"
	"github.com/goal-tracker/backend/internal/application/usecase/goal"
	"github.com/goal-tracker/backend/internal/application/usecase/matching"
	"github.com/goal-tracker/backend/internal/application/usecase/metric"
	"github.com/goal-tracker/backend/internal/application/usecase/progress"
	"github.com/goal-tracker/backend/internal/application/usecase/term"
	"github.com/goal-tracker/backend/internal/application/usecase/value"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
	"github.com/goal-tracker/backend/internal/infra/server/router"
	"github.com/goal-tracker/backend/internal/integration/adapters"
	"github.com/goal-tracker/backend/internal/integration/cache"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/goal-tracker/backend/internal/integration/persistence"
	"github.com/goal-tracker/backend/internal/integration/worker"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	DB           *gorm.DB
	Router       *router.Router
	Worker       *worker.ProgressWorker
	RateLimiter  *middleware.RateLimiter
	TokenService adapter.TokenService
}

// Options carries the optional collaborators of the injector.
type Options struct {
	// Cache stores computed progress; nil disables caching.
	Cache adapter.ProgressCache
	// DBHealthChecker and CacheHealthChecker back the health endpoint.
	DBHealthChecker    func() bool
	CacheHealthChecker func() bool
}

// MatchingConfig builds the matching configuration from application config.
func MatchingConfig(cfg config.MatchingConfig) valueobject.MatchingConfig {
	mc := valueobject.DefaultMatchingConfig().WithKeywords(cfg.Keywords)
	if cfg.ConfidenceThreshold > 0 {
		mc.ConfidenceThreshold = cfg.ConfidenceThreshold
	}
	return mc
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) *Injector {
	progressCache := opts.Cache
	if progressCache == nil {
		progressCache = cache.NoopCache{}
	}
	matchingConfig := MatchingConfig(cfg.Matching)

	// Create repositories
	repos := persistence.NewRepositories(db)
	txManager := persistence.NewTxManager(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.Auth.Secret, cfg.Auth.TokenExpiry)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(repos.Goals)
	createGoalUseCase := goal.NewCreateGoalUseCase(txManager)
	getGoalUseCase := goal.NewGetGoalUseCase(repos.Goals)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(txManager, progressCache)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(txManager, progressCache)

	// Create action use cases
	listActionsUseCase := action.NewListActionsUseCase(repos.Actions)
	createActionUseCase := action.NewCreateActionUseCase(repos.Goals, txManager, progressCache)
	getActionUseCase := action.NewGetActionUseCase(repos.Actions)
	updateActionUseCase := action.NewUpdateActionUseCase(repos.Goals, txManager, progressCache)
	deleteActionUseCase := action.NewDeleteActionUseCase(txManager, progressCache)
	confirmMatchUseCase := action.NewConfirmMatchUseCase(repos.Actions, repos.Goals, txManager, progressCache, matchingConfig)
	suggestMatchesUseCase := matching.NewSuggestMatchesUseCase(repos.Actions, repos.Goals, matchingConfig)
	inferPeriodUseCase := matching.NewInferPeriodUseCase(repos.Actions, repos.Goals, repos.Terms, matchingConfig)
	matchGoalUseCase := matching.NewMatchGoalUseCase(repos.Actions, repos.Goals, matchingConfig)

	// Create personal value use cases
	listValuesUseCase := value.NewListValuesUseCase(repos.Values)
	createValueUseCase := value.NewCreateValueUseCase(repos.Values)
	getValueUseCase := value.NewGetValueUseCase(repos.Values)
	updateValueUseCase := value.NewUpdateValueUseCase(txManager)
	deleteValueUseCase := value.NewDeleteValueUseCase(txManager)

	// Create term use cases
	listTermsUseCase := term.NewListTermsUseCase(repos.Terms)
	activeTermUseCase := term.NewGetActiveTermUseCase(repos.Terms)
	createTermUseCase := term.NewCreateTermUseCase(txManager)
	getTermUseCase := term.NewGetTermUseCase(repos.Terms)
	updateTermUseCase := term.NewUpdateTermUseCase(txManager)
	deleteTermUseCase := term.NewDeleteTermUseCase(txManager)

	// Create metric and progress use cases
	listMetricsUseCase := metric.NewListMetricsUseCase(repos.Metrics)
	findOrCreateMetricUseCase := metric.NewFindOrCreateMetricUseCase(repos.Metrics, txManager)
	computeProgressUseCase := progress.NewComputeProgressUseCase(repos.Goals, repos.Actions, repos.Metrics, progressCache, matchingConfig)
	summaryUseCase := progress.NewGetSummaryUseCase(repos.Goals, repos.Actions, repos.Metrics, matchingConfig)

	// Create controllers
	dbHealthChecker := opts.DBHealthChecker
	if dbHealthChecker == nil {
		dbHealthChecker = func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}
	}

	controllers := router.Controllers{
		Health: controller.NewHealthController(dbHealthChecker, opts.CacheHealthChecker),
		Goal: controller.NewGoalController(
			listGoalsUseCase,
			createGoalUseCase,
			getGoalUseCase,
			updateGoalUseCase,
			deleteGoalUseCase,
			computeProgressUseCase,
		),
		Action: controller.NewActionController(
			listActionsUseCase,
			createActionUseCase,
			getActionUseCase,
			updateActionUseCase,
			deleteActionUseCase,
			suggestMatchesUseCase,
			confirmMatchUseCase,
		),
		Value: controller.NewValueController(
			listValuesUseCase,
			createValueUseCase,
			getValueUseCase,
			updateValueUseCase,
			deleteValueUseCase,
		),
		Term: controller.NewTermController(
			listTermsUseCase,
			activeTermUseCase,
			createTermUseCase,
			getTermUseCase,
			updateTermUseCase,
			deleteTermUseCase,
		),
		Metric:   controller.NewMetricController(listMetricsUseCase, findOrCreateMetricUseCase),
		Progress: controller.NewProgressController(summaryUseCase),
		Matching: controller.NewMatchingController(inferPeriodUseCase, matchGoalUseCase),
	}

	// Create middleware
	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.Server.RateLimitRequests, cfg.Server.RateLimitWindow)
	var authMiddleware *middleware.AuthMiddleware
	if cfg.Auth.Enabled {
		authMiddleware = middleware.NewAuthMiddleware(tokenService)
	}

	// Create background worker
	progressWorker := worker.NewProgressWorker(repos.Goals, computeProgressUseCase, worker.Config{
		Interval:  cfg.Worker.Interval,
		BatchSize: cfg.Worker.BatchSize,
	})

	return &Injector{
		Config:       cfg,
		DB:           db,
		Router:       router.NewRouter(controllers, rateLimiter, authMiddleware),
		Worker:       progressWorker,
		RateLimiter:  rateLimiter,
		TokenService: tokenService,
	}
}
