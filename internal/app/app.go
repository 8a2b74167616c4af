// Package app wires configuration, storage, services, and transport
// together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mealdesk/mealdesk-backend/internal/adapter/postgres"
	mealplanrepo "github.com/mealdesk/mealdesk-backend/internal/adapter/postgres/mealplan"
	reciperepo "github.com/mealdesk/mealdesk-backend/internal/adapter/postgres/recipe"
	tokenrepo "github.com/mealdesk/mealdesk-backend/internal/adapter/postgres/token"
	userrepo "github.com/mealdesk/mealdesk-backend/internal/adapter/postgres/user"
	"github.com/mealdesk/mealdesk-backend/internal/adapter/redis"
	"github.com/mealdesk/mealdesk-backend/internal/adapter/redis/tokenblacklist"
	authtoken "github.com/mealdesk/mealdesk-backend/internal/auth"
	"github.com/mealdesk/mealdesk-backend/internal/config"
	authservice "github.com/mealdesk/mealdesk-backend/internal/service/auth"
	"github.com/mealdesk/mealdesk-backend/internal/service/mealplan"
	"github.com/mealdesk/mealdesk-backend/internal/service/recipe"
	"github.com/mealdesk/mealdesk-backend/internal/service/shoppinglist"
	"github.com/mealdesk/mealdesk-backend/internal/transport/middleware"
	"github.com/mealdesk/mealdesk-backend/internal/transport/rest"
)

// redisPinger adapts the go-redis client to the health-check Ping interface.
type redisPinger struct {
	client *goredis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and Redis, builds the service graph, and serves HTTP until the
// context is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close() //nolint:errcheck

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	recipes := reciperepo.New(pool)
	plans := mealplanrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := authtoken.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	blacklist := tokenblacklist.New(redisClient)

	authSvc := authservice.NewService(logger, users, tokens, jwtManager, blacklist, cfg.Auth)
	recipeSvc := recipe.NewService(logger, recipes, txManager, cfg.Recipes)
	planSvc := mealplan.NewService(logger, plans, recipes)
	listSvc := shoppinglist.NewService(logger, plans, recipes, cfg.Recipes)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Auth:         rest.NewAuthHandler(authSvc, logger),
		Recipes:      rest.NewRecipeHandler(recipeSvc, logger),
		Plan:         rest.NewPlanHandler(planSvc, logger),
		ShoppingList: rest.NewShoppingListHandler(listSvc, logger),
		Health:       rest.NewHealthHandler(pool, redisPinger{redisClient}, BuildVersion()),

		TokenValidator:  authSvc,
		RateLimiter:     rateLimiter,
		CORS:            cfg.CORS,
		RateLimitPerMin: cfg.Server.RateLimitPerMin,
		Logger:          logger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
