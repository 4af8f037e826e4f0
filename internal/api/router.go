package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/monoshop/storefront-gateway/internal/api/handler"
	"github.com/monoshop/storefront-gateway/internal/api/middleware"
	"github.com/monoshop/storefront-gateway/internal/core/domain"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
	"github.com/monoshop/storefront-gateway/internal/core/service"
	"github.com/monoshop/storefront-gateway/internal/infrastructure/config"
	mongodb "github.com/monoshop/storefront-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/monoshop/storefront-gateway/internal/infrastructure/db/redis"
	"github.com/monoshop/storefront-gateway/internal/pkg/bus"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	cfg *config.Config,
	db *mongo.Database,
	rdb *redis.Client,
	backend ports.BackendClient,
	provider ports.PaymentProvider,
	events *bus.Bus,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))
	e.Use(middleware.Session(cfg.SessionSecret))

	// --- Dependencies ---
	cartStore := redisdb.NewCartStore(rdb)
	authStore := redisdb.NewAuthStore(rdb)
	journal := mongodb.NewPaymentJournal(db)

	cartService := service.NewCartService(cartStore, events, log)
	authService := service.NewAuthService(backend, authStore, events, log)
	catalogService := service.NewCatalogService(backend)
	orderService := service.NewOrderService(backend, authStore)
	adminService := service.NewAdminService(backend, authStore, log)
	checkoutService := service.NewCheckoutService(
		cartStore, authStore, backend, provider, journal, events, cfg.PublicBaseURL, log,
	)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	orderHandler := handler.NewOrderHandler(orderService)
	adminHandler := handler.NewAdminHandler(adminService)

	requireAuth := middleware.RequireAuth(authStore)

	// --- Catalog (public) ---
	e.GET("/products", catalogHandler.List)
	e.GET("/products/:id", catalogHandler.Get)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)

	// --- Cart (session-scoped, no login required) ---
	e.GET("/cart", cartHandler.Get)
	e.DELETE("/cart", cartHandler.Clear)
	e.POST("/cart/items", cartHandler.AddItem)
	e.PATCH("/cart/items/:productId", cartHandler.SetQuantity)
	e.DELETE("/cart/items/:productId", cartHandler.RemoveItem)

	// --- Checkout ---
	// The provider redirects back to success/fail without auth headers; the
	// session cookie alone identifies the shopper there.
	e.POST("/checkout", checkoutHandler.Start, requireAuth)
	e.GET("/checkout/success", checkoutHandler.Success)
	e.GET("/checkout/fail", checkoutHandler.Fail)

	// --- Orders (login required) ---
	orders := e.Group("/orders", requireAuth)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)

	// --- Admin (login + ADMIN role) ---
	admin := e.Group("/admin", requireAuth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/products", adminHandler.ListProducts)
	admin.POST("/products", adminHandler.CreateProduct)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
