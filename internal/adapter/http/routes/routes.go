package routes

import (
	"context"
	"fmt"
	_ "painel_pedidos/docs" // generated by swag init
	request "painel_pedidos/internal/adapter/http/dto/request"
	"painel_pedidos/internal/adapter/http/handlers"
	"painel_pedidos/internal/dashboard"
	"painel_pedidos/internal/infrastructure/config"
	"painel_pedidos/internal/infrastructure/logger"
	"painel_pedidos/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run opens the configured store, loads the dashboard and serves the API
// until the server stops.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	st, err := OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Warn("failed to close store", zap.Error(cerr))
		}
	}()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := NewRouter(ctx, st, log)
	if err != nil {
		return err
	}

	log.Info("starting server", zap.String("port", cfg.App.Port), zap.String("store", cfg.Store.Driver))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter builds the use cases, the dashboard session and the gin engine
// on top of an open store. A failed initial load is logged and the server
// still starts with empty collections.
func NewRouter(ctx context.Context, st *Store, log *zap.Logger) (*gin.Engine, error) {
	if err := request.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	orderUseCase := usecase.NewOrderUseCase(st.Orders, st.OrderItems, st.SavedEmails, log)
	transactionUseCase := usecase.NewTransactionUseCase(st.Transactions, log)
	contactUseCase := usecase.NewContactUseCase(st.Contacts, log)
	savedEmailUseCase := usecase.NewSavedEmailUseCase(st.SavedEmails, log)

	feed := dashboard.NewFeed(0, log)
	controller := dashboard.NewController(orderUseCase, transactionUseCase, contactUseCase, feed, log)
	if err := controller.Load(ctx); err != nil {
		log.Warn("dashboard started without data", zap.Error(err))
	}

	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addHealthRoutes(v1, handlers.NewHealthHandler(st.Health, log))
	addDashboardRoutes(v1, handlers.NewDashboardHandler(controller, feed))
	addOrderRoutes(v1, handlers.NewOrderHandler(controller))
	addTransactionRoutes(v1, handlers.NewTransactionHandler(controller))
	addContactRoutes(v1, handlers.NewContactHandler(controller))
	addSavedEmailRoutes(v1, handlers.NewSavedEmailHandler(savedEmailUseCase))
	return router, nil
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(logger.GinMiddleware(log))
	router.Use(logger.Recovery(log))
}
