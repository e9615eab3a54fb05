package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/restshop/commerce-api/internal/api/handler"
	"github.com/restshop/commerce-api/internal/api/middleware"
	"github.com/restshop/commerce-api/internal/core/service"
	mongodb "github.com/restshop/commerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/restshop/commerce-api/internal/infrastructure/db/redis"
	"github.com/restshop/commerce-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Dependencies ---
	tokens := service.NewTokenIssuer(jwtSecret)

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens, log)
	authHandler := handler.NewAuthHandler(authService)
	authMiddleware := middleware.Auth(tokens)

	productRepo := mongodb.NewProductRepository(db)
	productService := service.NewProductService(productRepo, log)
	productHandler := handler.NewProductHandler(productService)

	orderRepo := mongodb.NewOrderRepository(db)
	idempotency := redisdb.NewIdempotencyChecker(rdb)
	orderService := service.NewOrderService(orderRepo, productRepo, idempotency, log)
	orderHandler := handler.NewOrderHandler(orderService)

	// --- Auth routes ---
	e.POST("/auth/signUp", authHandler.SignUp)
	e.POST("/auth/login", authHandler.Login)
	e.DELETE("/auth/deleteUser/:id", authHandler.DeleteUser, authMiddleware)

	// --- Product routes ---
	e.GET("/products", productHandler.List)
	e.POST("/products", productHandler.Create)
	e.GET("/products/:id", productHandler.Get)
	e.PATCH("/products/:id", productHandler.Update)
	e.DELETE("/products/:id", productHandler.Delete)

	// --- Order routes ---
	e.GET("/orders", orderHandler.List)
	e.POST("/orders", orderHandler.Place)
	e.GET("/orders/:id", orderHandler.Get)
	e.DELETE("/orders/:id", orderHandler.Delete)

	// --- Operational routes ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
