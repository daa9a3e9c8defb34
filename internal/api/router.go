package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shipease/logistics-api/internal/api/handler"
	"github.com/shipease/logistics-api/internal/api/middleware"
	"github.com/shipease/logistics-api/internal/core/domain"
	"github.com/shipease/logistics-api/internal/core/service"
	mongodb "github.com/shipease/logistics-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shipease/logistics-api/internal/infrastructure/db/redis"
	"github.com/shipease/logistics-api/internal/infrastructure/queue"
)

// NewRouter builds the full dependency graph and returns the Echo instance
// with all routes registered, plus the event dispatcher the caller must
// Start before serving.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("shipease"))

	// --- Infrastructure ---
	shipmentRepo := mongodb.NewShipmentRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)
	publisher := redisdb.NewPublisher(rdb)

	// --- Services ---
	notifier := service.NewNotificationService(notificationRepo, publisher, log)
	shipmentService := service.NewShipmentService(shipmentRepo, eventRepo, profileRepo, notifier, publisher, log)
	eventService := service.NewEventService(shipmentRepo, eventRepo, publisher, dedup, log)
	authService := service.NewAuthService(profileRepo, jwtSecret, 24*time.Hour)
	dispatcher := queue.NewDispatcher(0, eventService, log)

	// --- Handlers ---
	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	eventHandler := handler.NewEventHandler(dispatcher)
	notificationHandler := handler.NewNotificationHandler(notifier)
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileRepo)
	streamHandler := handler.NewStreamHandler(publisher, shipmentService)
	auth := middleware.Auth(jwtSecret)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/v1/track/:tracking_code", shipmentHandler.Track)
	e.GET("/v1/track/:tracking_code/stream", streamHandler.Shipment)

	// --- Health probes and operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated v1 routes ---
	v1 := e.Group("/v1", auth)

	v1.POST("/shipments", shipmentHandler.Create,
		middleware.RBAC(domain.RoleCustomer, domain.RoleAdmin))
	v1.GET("/shipments", shipmentHandler.List)
	v1.POST("/shipments/:id/assign", shipmentHandler.Assign,
		middleware.RBAC(domain.RoleDispatcher, domain.RoleAdmin))
	v1.PATCH("/shipments/:id/status", shipmentHandler.UpdateStatus,
		middleware.RBAC(domain.RoleCourier, domain.RoleDispatcher, domain.RoleAdmin))

	v1.POST("/events", eventHandler.Receive,
		middleware.RBAC(domain.RoleCourier, domain.RoleAdmin))
	v1.POST("/events/batch", eventHandler.ReceiveBatch,
		middleware.RBAC(domain.RoleCourier, domain.RoleAdmin))

	v1.GET("/notifications", notificationHandler.List)
	v1.GET("/notifications/stream", streamHandler.Notifications)
	v1.GET("/notifications/unread_count", notificationHandler.UnreadCount)
	v1.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
	v1.DELETE("/notifications/:id", notificationHandler.Delete)
	v1.POST("/notifications/broadcast", notificationHandler.Broadcast,
		middleware.RBAC(domain.RoleAdmin))

	v1.GET("/couriers", profileHandler.Couriers,
		middleware.RBAC(domain.RoleDispatcher, domain.RoleAdmin))

	return e, dispatcher
}
