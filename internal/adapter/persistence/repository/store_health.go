package repository

import (
	"context"

	"painel_pedidos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"gorm.io/gorm"
)

// GormStoreHealth checks the relational store with a one-row read of the
// orders table.

type GormStoreHealth struct {
	db *gorm.DB
}

var _ interfaces.IStoreHealth = (*GormStoreHealth)(nil)

func NewGormStoreHealth(db *gorm.DB) *GormStoreHealth {
	return &GormStoreHealth{db: db}
}

func (h *GormStoreHealth) Ping(ctx context.Context) error {
	var count int64
	return h.db.WithContext(ctx).Model(&orderModel{}).Limit(1).Count(&count).Error
}

// DynamoStoreHealth checks DynamoDB with a single-item scan of the orders
// table.

type DynamoStoreHealth struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IStoreHealth = (*DynamoStoreHealth)(nil)

func NewDynamoStoreHealth(ddb DynamoAPI, ordersTable string) *DynamoStoreHealth {
	if ordersTable == "" {
		ordersTable = defaultOrdersTableName
	}
	return &DynamoStoreHealth{ddb: ddb, tableName: ordersTable}
}

func (h *DynamoStoreHealth) Ping(ctx context.Context) error {
	_, err := h.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(h.tableName),
		Limit:     aws.Int32(1),
	})
	return err
}
