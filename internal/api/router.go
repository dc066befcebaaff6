package api

import (
	"github.com/cmac111/scraper/internal/api/handlers"
	"github.com/cmac111/scraper/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Search *handlers.SearchHandler
	Status *handlers.StatusHandler
	Leads  *handlers.LeadsHandler
	Health *handlers.HealthHandler
}

// SetupRouter builds the gin engine with the shared middleware chain and the
// /api route group.
func SetupRouter(h Handlers, rateLimiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestID())
	router.Use(rateLimiter.RateLimit())

	api := router.Group("/api")
	{
		api.GET("/", h.Status.HandleRoot)
		api.POST("/status", h.Status.HandleCreateStatus)
		api.GET("/status", h.Status.HandleListStatus)
		api.POST("/search", h.Search.HandleSearch)
		api.GET("/leads", h.Leads.HandleListLeads)
		api.DELETE("/leads", h.Leads.HandleClearLeads)
		api.GET("/health", h.Health.HandleHealth)
	}

	return router
}
