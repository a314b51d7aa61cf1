package database

import (
	"context"
	"fmt"

	"painel_pedidos/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the dynamodb.* settings.
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires
// them, so static credentials are always set. When Endpoint is set every
// request goes there (e.g. http://dynamodb:8000).
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg, dynamoOptions(cfg)...), nil
}

func NewAWSConfig(ctx context.Context, cfg config.DynamoDBConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}

func dynamoOptions(cfg config.DynamoDBConfig) []func(*dynamodb.Options) {
	if cfg.Endpoint == "" {
		return nil
	}
	endpoint := cfg.Endpoint
	return []func(*dynamodb.Options){
		func(o *dynamodb.Options) { o.BaseEndpoint = aws.String(endpoint) },
	}
}
