package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/asbuyukgungor-bot/bus-erp/internal/config"
	"github.com/asbuyukgungor-bot/bus-erp/internal/handler"
	"github.com/asbuyukgungor-bot/bus-erp/internal/infra"
	"github.com/asbuyukgungor-bot/bus-erp/internal/middleware"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"
	"github.com/asbuyukgungor-bot/bus-erp/internal/service"
	"github.com/asbuyukgungor-bot/bus-erp/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store ← DB/Redis (or in-memory)
//
// db is nil when the in-memory store backend is active; rdb is nil when
// REDIS_URL is empty — every consumer tolerates both.
func New(cfg *config.Config, stores *repository.Stores, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher, mailerCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(stores.Users, cfg)
	partSvc := service.NewPartService(stores.Parts, stores.Movements)
	vehicleSvc := service.NewVehicleService(stores.Vehicles)
	workOrderSvc := service.NewWorkOrderService(stores.WorkOrders, stores.Parts, stores.Movements, dispatcher, cfg.LowStockThreshold)
	dashboardSvc := service.NewDashboardService(stores.Parts, stores.Vehicles, stores.WorkOrders, cfg.LowStockThreshold)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	partsH := handler.NewPartsHandler(partSvc)
	vehiclesH := handler.NewVehiclesHandler(vehicleSvc)
	workOrdersH := handler.NewWorkOrdersHandler(workOrderSvc, stores.WorkOrders, cfg.PDFStoragePath)
	dashboardH := handler.NewDashboardHandler(dashboardSvc, rdb)
	locationsH := handler.NewLocationsHandler(stores.Locations)
	movementsH := handler.NewStockMovementsHandler(stores.Movements)
	healthH := handler.NewHealthHandler(cfg.StoreDriver, db, rdb, mailerCB)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", healthH.Health)

	v1 := r.Group("/api/v1")

	if cfg.AuthEnabled {
		v1.POST("/token", middleware.LoginRateLimiter(), authH.Token)
		v1.Use(middleware.JWTAuth(cfg.JWTSecret, stores.Users))
		v1.GET("/users/me", authH.Me)
	}

	v1.POST("/parts", partsH.Create)
	v1.GET("/parts", partsH.List)
	v1.GET("/parts/:part_number", partsH.Get)

	v1.POST("/vehicles", vehiclesH.Create)
	v1.GET("/vehicles", vehiclesH.List)

	v1.POST("/work-orders", workOrdersH.Create)
	v1.GET("/work-orders", workOrdersH.List)
	v1.GET("/work-orders/:order_id", workOrdersH.Get)
	v1.PUT("/work-orders/:order_id", workOrdersH.UpdateStatus)
	v1.GET("/work-orders/:order_id/pdf", workOrdersH.PDF)

	v1.GET("/dashboard-stats", dashboardH.Stats)
	v1.GET("/locations", locationsH.List)
	v1.GET("/stock-movements", movementsH.List)

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Static frontend fallback: any unmatched GET serves the SPA bundle,
	// unknown paths fall through to index.html.
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
			return
		}
		requested := filepath.Join(cfg.StaticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})

	return r
}
