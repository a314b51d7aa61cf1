package main

import (
	"context"
	"log"
	_ "painel_pedidos/docs"
	"painel_pedidos/internal/adapter/http/routes"
	"painel_pedidos/internal/infrastructure/config"
	"painel_pedidos/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Painel de Pedidos API
// @version         1.0
// @description     Order dashboard (orders, ledger and contacts) backed by PostgreSQL, SQLite or DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	zapLogger = zapLogger.With(zap.String("app", cfg.App.Name), zap.String("env", cfg.App.Env))

	if err := routes.Run(context.Background(), cfg, zapLogger); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
