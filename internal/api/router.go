package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pokebid/user-service/docs"
	"github.com/pokebid/user-service/internal/api/handler"
	"github.com/pokebid/user-service/internal/api/middleware"
	"github.com/pokebid/user-service/internal/core/domain"
	"github.com/pokebid/user-service/internal/core/service"
	"github.com/pokebid/user-service/internal/infrastructure/client"
	"github.com/pokebid/user-service/internal/infrastructure/config"
	mongodb "github.com/pokebid/user-service/internal/infrastructure/db/mongo"
	redisdb "github.com/pokebid/user-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pokebid_users"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)
	pokemonClient := client.NewPokemonClient(cfg.Collaborator.PokemonBaseURL, cfg.Collaborator.Timeout)
	auctionClient := client.NewAuctionClient(cfg.Collaborator.AuctionBaseURL, cfg.Collaborator.Timeout)

	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, pokemonClient, auctionClient, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/users", userHandler.List)
	v1.POST("/users", userHandler.Create, adminOnly)
	v1.GET("/users/:id", userHandler.Get)
	v1.PUT("/users/:id", userHandler.Update, adminOnly)
	v1.DELETE("/users/:id", userHandler.Delete, adminOnly)
	v1.POST("/users/:id/coins/add", userHandler.AddCoins)
	v1.POST("/users/:id/coins/deduct", userHandler.DeductCoins)
	v1.GET("/users/:id/pokemons", userHandler.ListPokemons)
	v1.POST("/users/:id/pokemons", userHandler.AddPokemon)
	v1.GET("/users/:id/bids", userHandler.ListBids)
	v1.POST("/users/:id/bids", userHandler.PlaceBid)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
