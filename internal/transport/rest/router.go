package rest

import (
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/mealdesk/mealdesk-backend/internal/config"
	"github.com/mealdesk/mealdesk-backend/internal/transport/middleware"
)

// RouterDeps bundles everything needed to assemble the HTTP handler.
type RouterDeps struct {
	Auth         *AuthHandler
	Recipes      *RecipeHandler
	Plan         *PlanHandler
	ShoppingList *ShoppingListHandler
	Health       *HealthHandler

	TokenValidator  middleware.TokenValidator
	RateLimiter     *middleware.RateLimiter
	CORS            config.CORSConfig
	RateLimitPerMin int
	Logger          *slog.Logger
}

// NewRouter builds the route table and wraps it in the middleware chain.
func NewRouter(deps RouterDeps) http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/health", deps.Health.Health)
	router.HandlerFunc(http.MethodGet, "/health/live", deps.Health.Live)
	router.HandlerFunc(http.MethodGet, "/health/ready", deps.Health.Ready)

	router.POST("/api/auth/register", deps.Auth.Register)
	router.POST("/api/auth/login", deps.Auth.Login)
	router.POST("/api/auth/refresh", deps.Auth.Refresh)
	router.POST("/api/auth/logout", deps.Auth.Logout)

	router.POST("/api/recipes", deps.Recipes.Create)
	router.GET("/api/recipes", deps.Recipes.List)
	router.GET("/api/recipes/:id", deps.Recipes.Get)
	router.PUT("/api/recipes/:id", deps.Recipes.Update)
	router.DELETE("/api/recipes/:id", deps.Recipes.Delete)

	router.GET("/api/plan", deps.Plan.ListRange)
	router.PUT("/api/plan/:date/:meal", deps.Plan.SetSlot)
	router.DELETE("/api/plan/:date/:meal", deps.Plan.ClearSlot)

	router.GET("/api/shopping-list", deps.ShoppingList.Generate)

	chain := middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		deps.RateLimiter.Limit(deps.RateLimitPerMin),
		middleware.Auth(deps.TokenValidator),
	)

	return chain(router)
}
