package routes

import (
	"context"
	"fmt"
	"painel_pedidos/internal/adapter/persistence/repository"
	"painel_pedidos/internal/infrastructure/config"
	"painel_pedidos/internal/infrastructure/database"
	"painel_pedidos/internal/usecase/interfaces"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store groups the repositories of the selected backend.
type Store struct {
	Orders       interfaces.IOrderRepository
	OrderItems   interfaces.IOrderItemRepository
	Transactions interfaces.ITransactionRepository
	Contacts     interfaces.IContactRepository
	SavedEmails  interfaces.ISavedEmailRepository
	Health       interfaces.IStoreHealth

	close func() error
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStore connects to the backend named by store.driver.
func OpenStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres, config.DriverSQLite:
		db, err := database.OpenGorm(cfg.Store.Driver, cfg.Database, cfg.Log.SQLLevel, log)
		if err != nil {
			return nil, err
		}
		if cfg.Store.AutoMigrate {
			if err := db.WithContext(ctx).AutoMigrate(repository.Models()...); err != nil {
				_ = database.CloseGorm(db)
				return nil, fmt.Errorf("failed to migrate schema: %w", err)
			}
			log.Info("schema migrated", zap.String("driver", cfg.Store.Driver))
		}
		return NewGormStore(db), nil
	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return NewDynamoStore(ddb, cfg.DynamoDB.Tables), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Orders:       repository.NewOrderGormRepository(db),
		OrderItems:   repository.NewOrderItemGormRepository(db),
		Transactions: repository.NewTransactionGormRepository(db),
		Contacts:     repository.NewContactGormRepository(db),
		SavedEmails:  repository.NewSavedEmailGormRepository(db),
		Health:       repository.NewGormStoreHealth(db),
		close:        func() error { return database.CloseGorm(db) },
	}
}

func NewDynamoStore(ddb repository.DynamoAPI, tables config.TableNames) *Store {
	return &Store{
		Orders:       repository.NewOrderDynamoRepository(ddb, tables.Orders),
		OrderItems:   repository.NewOrderItemDynamoRepository(ddb, tables.OrderItems),
		Transactions: repository.NewTransactionDynamoRepository(ddb, tables.Transactions),
		Contacts:     repository.NewContactDynamoRepository(ddb, tables.Contacts),
		SavedEmails:  repository.NewSavedEmailDynamoRepository(ddb, tables.SavedEmails),
		Health:       repository.NewDynamoStoreHealth(ddb, tables.Orders),
	}
}
