package routes

import (
	"github.com/gin-gonic/gin"

	"paperdesk/internal/interfaces/http/handlers"
	"paperdesk/internal/interfaces/http/middleware"
)

// PaperRouteConfig holds dependencies for catalog routes.
type PaperRouteConfig struct {
	PaperHandler   *handlers.PaperHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPaperRoutes configures catalog routes.
func SetupPaperRoutes(engine *gin.Engine, cfg *PaperRouteConfig) {
	papers := engine.Group("/papers")
	{
		// Public endpoints; ownership marking kicks in when a token is sent
		papers.GET("", cfg.AuthMiddleware.OptionalAuth(), cfg.PaperHandler.SearchPapers)
		papers.GET("/:id", cfg.AuthMiddleware.OptionalAuth(), cfg.PaperHandler.GetPaper)
	}

	admin := engine.Group("/admin/papers")
	admin.Use(cfg.AuthMiddleware.RequireAuth())
	admin.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		admin.GET("", cfg.PaperHandler.ListPapers)
		admin.POST("", cfg.PaperHandler.CreatePaper)
		admin.POST("/upload-url", cfg.PaperHandler.CreateUploadURL)
		admin.PUT("/:id", cfg.PaperHandler.UpdatePaper)
		admin.PATCH("/:id/status", cfg.PaperHandler.UpdatePaperStatus)
		admin.DELETE("/:id", cfg.PaperHandler.DeletePaper)
	}
}
