//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mealdesk/mealdesk-backend/internal/adapter/postgres"
	mealplanrepo "github.com/mealdesk/mealdesk-backend/internal/adapter/postgres/mealplan"
	reciperepo "github.com/mealdesk/mealdesk-backend/internal/adapter/postgres/recipe"
	"github.com/mealdesk/mealdesk-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/mealdesk/mealdesk-backend/internal/adapter/postgres/token"
	userrepo "github.com/mealdesk/mealdesk-backend/internal/adapter/postgres/user"
	"github.com/mealdesk/mealdesk-backend/internal/adapter/redis/tokenblacklist"
	authpkg "github.com/mealdesk/mealdesk-backend/internal/auth"
	"github.com/mealdesk/mealdesk-backend/internal/config"
	authsvc "github.com/mealdesk/mealdesk-backend/internal/service/auth"
	"github.com/mealdesk/mealdesk-backend/internal/service/mealplan"
	"github.com/mealdesk/mealdesk-backend/internal/service/recipe"
	"github.com/mealdesk/mealdesk-backend/internal/service/shoppinglist"
	"github.com/mealdesk/mealdesk-backend/internal/transport/middleware"
	"github.com/mealdesk/mealdesk-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// Shared Redis container for the test run.
// ---------------------------------------------------------------------------

var (
	redisOnce    sync.Once
	redisAddr    string
	redisInitErr error
)

func setupRedis(t *testing.T) *goredis.Client {
	t.Helper()

	redisOnce.Do(func() {
		redisAddr, redisInitErr = startRedisContainer()
	})
	if redisInitErr != nil {
		t.Fatalf("setup redis: %v", redisInitErr)
	}

	client := goredis.NewClient(&goredis.Options{Addr: redisAddr})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func startRedisContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start redis container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}
	return fmt.Sprintf("%s:%s", host, port.Port()), nil
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by real
// PostgreSQL and Redis containers (shared via testhelper / setupRedis).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	redisClient := setupRedis(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	recipes := reciperepo.New(pool)
	plans := mealplanrepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4,
	}
	recipesCfg := config.RecipesConfig{
		MaxRecipesPerUser:        1000,
		MaxIngredientsPerRecipe:  100,
		MaxShoppingListRangeDays: 31,
	}

	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	blacklist := tokenblacklist.New(redisClient)

	authService := authsvc.NewService(logger, users, tokens, jwtMgr, blacklist, authCfg)
	recipeService := recipe.NewService(logger, recipes, txm, recipesCfg)
	planService := mealplan.NewService(logger, plans, recipes)
	listService := shoppinglist.NewService(logger, plans, recipes, recipesCfg)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(rateLimiter.Stop)

	handler := rest.NewRouter(rest.RouterDeps{
		Auth:         rest.NewAuthHandler(authService, logger),
		Recipes:      rest.NewRecipeHandler(recipeService, logger),
		Plan:         rest.NewPlanHandler(planService, logger),
		ShoppingList: rest.NewShoppingListHandler(listService, logger),
		Health:       rest.NewHealthHandler(pool, redisPinger{redisClient}, "test-version"),

		TokenValidator:  authService,
		RateLimiter:     rateLimiter,
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimitPerMin: 10000,
		Logger:          logger,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

type redisPinger struct {
	client *goredis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

// restRequest sends a JSON request and returns the raw response.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "marshal request body")
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err, "create request")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err, "do request")
	return resp
}

// decodeBody decodes the response body into a generic map and closes it.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), "decode response body")
	return body
}

// decodeInto decodes the response body into dst and closes it.
func decodeInto(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst), "decode response body")
}

// registerUser registers a fresh user and returns its access and refresh tokens.
func registerUser(t *testing.T, ts *testServer, email, username string) (accessToken, refreshToken string) {
	t.Helper()

	resp := restRequest(t, ts, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"username": username,
		"password": "securepassword123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register %s", email)
	body := decodeBody(t, resp)

	accessToken, _ = body["accessToken"].(string)
	refreshToken, _ = body["refreshToken"].(string)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	return accessToken, refreshToken
}
