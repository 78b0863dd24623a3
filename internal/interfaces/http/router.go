// Package http wires repositories, use cases, and handlers into the HTTP
// server.
package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogusecases "paperdesk/internal/application/catalog/usecases"
	purchaseusecases "paperdesk/internal/application/purchase/usecases"
	"paperdesk/internal/infrastructure/auth"
	"paperdesk/internal/infrastructure/config"
	"paperdesk/internal/infrastructure/payment"
	"paperdesk/internal/infrastructure/repository"
	"paperdesk/internal/infrastructure/storage"
	"paperdesk/internal/interfaces/http/handlers"
	"paperdesk/internal/interfaces/http/middleware"
	"paperdesk/internal/interfaces/http/routes"
	"paperdesk/internal/shared/db"
	"paperdesk/internal/shared/logger"
	"paperdesk/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	engine          *gin.Engine
	paperHandler    *handlers.PaperHandler
	purchaseHandler *handlers.PurchaseHandler
	downloadHandler *handlers.DownloadHandler
	authMiddleware  *middleware.AuthMiddleware
	log             logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	paperRepo := repository.NewPaperRepository(database, log)
	purchaseRepo := repository.NewPurchaseRepository(database, log)
	txManager := db.NewTransactionManager(database)

	fileStorage, err := storage.NewS3Storage(context.Background(), &cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	gateway := payment.NewSimulatedGateway(
		time.Duration(cfg.Payment.SimulatedLatencyMS) * time.Millisecond,
	)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	paperHandler := handlers.NewPaperHandler(
		catalogusecases.NewCreatePaperUseCase(paperRepo, log),
		catalogusecases.NewUpdatePaperUseCase(paperRepo, log),
		catalogusecases.NewGetPaperUseCase(paperRepo, log),
		catalogusecases.NewListPapersUseCase(paperRepo, log),
		catalogusecases.NewSearchPapersUseCase(paperRepo, purchaseRepo, log),
		catalogusecases.NewActivatePaperUseCase(paperRepo, log),
		catalogusecases.NewDeactivatePaperUseCase(paperRepo, log),
		catalogusecases.NewDeletePaperUseCase(paperRepo, fileStorage, log),
		catalogusecases.NewCreateUploadURLUseCase(fileStorage, log),
		log,
	)

	purchaseHandler := handlers.NewPurchaseHandler(
		purchaseusecases.NewPurchasePaperUseCase(paperRepo, purchaseRepo, gateway, txManager, log),
		purchaseusecases.NewListPurchasesUseCase(purchaseRepo, paperRepo, log),
		log,
	)

	downloadHandler := handlers.NewDownloadHandler(
		purchaseusecases.NewAuthorizeDownloadUseCase(purchaseRepo, paperRepo, fileStorage, log),
		log,
	)

	return &Router{
		engine:          engine,
		paperHandler:    paperHandler,
		purchaseHandler: purchaseHandler,
		downloadHandler: downloadHandler,
		authMiddleware:  middleware.NewAuthMiddleware(jwtService, log),
		log:             log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(allowedOrigins []string) {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, 200, "ok", nil)
	})

	routes.SetupPaperRoutes(r.engine, &routes.PaperRouteConfig{
		PaperHandler:   r.paperHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupPurchaseRoutes(r.engine, &routes.PurchaseRouteConfig{
		PurchaseHandler: r.purchaseHandler,
		DownloadHandler: r.downloadHandler,
		AuthMiddleware:  r.authMiddleware,
	})
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
