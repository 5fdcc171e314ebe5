package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/cinevault/catalog-api/docs"
	"github.com/cinevault/catalog-api/internal/api/handler"
	"github.com/cinevault/catalog-api/internal/api/middleware"
	"github.com/cinevault/catalog-api/internal/core/domain"
	"github.com/cinevault/catalog-api/internal/core/service"
	mongodb "github.com/cinevault/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/cinevault/catalog-api/internal/infrastructure/db/redis"
	"github.com/cinevault/catalog-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and starts
// the import dispatcher. The dispatcher is returned so the caller can
// drain it during shutdown.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	movieRepo := mongodb.NewMovieRepository(db)
	listCache := redisdb.NewListCache(rdb, log)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	movieService := service.NewMovieService(movieRepo, listCache, log)

	dispatcher := queue.NewDispatcher(0, movieService, log)
	dispatcher.Start()

	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService)
	importHandler := handler.NewImportHandler(dispatcher)

	authRequired := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Catalog routes ---
	movies := e.Group("/api/movies")
	movies.GET("", movieHandler.List)
	movies.POST("", movieHandler.Create, authRequired, adminOnly)
	movies.POST("/save", movieHandler.Save, authRequired)
	movies.POST("/import", importHandler.Receive, authRequired, adminOnly)
	movies.DELETE("/:id", movieHandler.Delete, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, dispatcher
}
