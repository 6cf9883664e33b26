package routes

import (
	"net/http"
	"time"

	"bilheteria/internal/catalog"
	"bilheteria/internal/inventory"
	"bilheteria/internal/ledger"
	"bilheteria/internal/reports"
	"bilheteria/internal/shared/config"
	"bilheteria/internal/shared/database"
	"bilheteria/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	db           *database.DB
	cacheService cache.Service
	syncProducer inventory.SyncProducer
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, syncProducer inventory.SyncProducer) *Router {
	r := &Router{
		config:       cfg,
		db:           db,
		syncProducer: syncProducer,
	}
	if db.Redis != nil {
		r.cacheService = cache.NewService(db.Redis)
	}
	return r
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupReportRoutes(api)
		r.setupLedgerRoutes(api)
		r.setupInventoryRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "bilheteria-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "bilheteria-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupReportRoutes configures the report routes
func (r *Router) setupReportRoutes(rg *gin.RouterGroup) {
	catalogRepo := catalog.NewRepository(r.db.GetPostgreSQL())
	reportRepo := reports.NewRepository(r.db.GetPostgreSQL())
	reportService := reports.NewService(reportRepo, catalogRepo)

	if r.cacheService != nil {
		reportService.SetCacheService(r.cacheService)
	}

	reportController := reports.NewController(reportService)
	reports.SetupReportRoutes(rg, reportController)
}

// setupLedgerRoutes configures the detailed/cancelled ledger routes
func (r *Router) setupLedgerRoutes(rg *gin.RouterGroup) {
	ledgerRepo := ledger.NewRepository(r.db.GetPostgreSQL())
	ledgerService := ledger.NewService(ledgerRepo)

	if r.cacheService != nil {
		ledgerService.SetCacheService(r.cacheService)
	}

	ledgerController := ledger.NewController(ledgerService)
	ledger.SetupLedgerRoutes(rg, ledgerController)
}

// setupInventoryRoutes configures the inventory-ledger routes
func (r *Router) setupInventoryRoutes(rg *gin.RouterGroup) {
	inventoryRepo := inventory.NewRepository(r.db.GetPostgreSQL())
	inventoryService := inventory.NewService(inventoryRepo)

	if r.cacheService != nil {
		inventoryService.SetCacheService(r.cacheService)
	}
	if r.syncProducer != nil {
		inventoryService.SetSyncProducer(r.syncProducer)
	}

	inventoryController := inventory.NewController(inventoryService)
	inventory.SetupInventoryRoutes(rg, inventoryController)
}
