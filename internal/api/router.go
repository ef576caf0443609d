package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/saifmalkurdi/Flavor-Table/docs"
	"github.com/saifmalkurdi/Flavor-Table/internal/api/handler"
	"github.com/saifmalkurdi/Flavor-Table/internal/api/middleware"
	"github.com/saifmalkurdi/Flavor-Table/internal/core/service"
	"github.com/saifmalkurdi/Flavor-Table/internal/infrastructure/config"
	pgdb "github.com/saifmalkurdi/Flavor-Table/internal/infrastructure/db/postgres"
	redisdb "github.com/saifmalkurdi/Flavor-Table/internal/infrastructure/db/redis"
	"github.com/saifmalkurdi/Flavor-Table/internal/infrastructure/provider/spoonacular"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("flavortable"))

	// --- Dependencies ---
	authRepo := pgdb.NewAuthRepository(db)
	favoriteRepo := pgdb.NewFavoriteRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(authRepo, tokenService, cfg.BcryptCost, log)
	favoriteService := service.NewFavoriteService(favoriteRepo, log)

	providerClient := spoonacular.NewClient(spoonacular.Config{
		APIKey:  cfg.Provider.APIKey,
		BaseURL: cfg.Provider.BaseURL,
		Timeout: cfg.Provider.Timeout,
	}, log)
	recipeService := service.NewRecipeService(providerClient, redisdb.NewRecipeCache(rdb), log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)

	authGuard := middleware.Auth(tokenService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Profile routes (token required) ---
	users := e.Group("/users", authGuard)
	users.GET("/profile", userHandler.Profile)
	users.PUT("/profile", userHandler.UpdateProfile)
	users.PUT("/password", userHandler.ChangePassword)

	// --- Recipe discovery (no auth required) ---
	e.GET("/recipes/search", recipeHandler.Search)
	e.GET("/recipes/random", recipeHandler.Random)
	e.GET("/recipes/:id", recipeHandler.Detail)

	// --- Favorites (shared collection, no auth required) ---
	e.GET("/favorites", favoriteHandler.List)
	e.POST("/favorites", favoriteHandler.Create)
	e.PUT("/favorites/:id", favoriteHandler.Update)
	e.DELETE("/favorites/:id", favoriteHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
