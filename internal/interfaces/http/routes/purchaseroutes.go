package routes

import (
	"github.com/gin-gonic/gin"

	"paperdesk/internal/interfaces/http/handlers"
	"paperdesk/internal/interfaces/http/middleware"
)

// PurchaseRouteConfig holds dependencies for purchase and download routes.
type PurchaseRouteConfig struct {
	PurchaseHandler *handlers.PurchaseHandler
	DownloadHandler *handlers.DownloadHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupPurchaseRoutes configures purchase and download routes. Everything
// here requires a signed-in caller.
func SetupPurchaseRoutes(engine *gin.Engine, cfg *PurchaseRouteConfig) {
	papers := engine.Group("/papers")
	papers.Use(cfg.AuthMiddleware.RequireAuth())
	{
		papers.POST("/:id/purchase", cfg.PurchaseHandler.PurchasePaper)
		papers.GET("/:id/download", cfg.DownloadHandler.DownloadPaper)
	}

	purchases := engine.Group("/purchases")
	purchases.Use(cfg.AuthMiddleware.RequireAuth())
	{
		purchases.GET("", cfg.PurchaseHandler.ListPurchases)
	}
}
