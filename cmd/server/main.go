package main

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/factupro/invoice-api/internal/config"
	"github.com/factupro/invoice-api/internal/handler"
	"github.com/factupro/invoice-api/internal/repository"
	"github.com/factupro/invoice-api/internal/server"
	"github.com/factupro/invoice-api/internal/service"
	"github.com/factupro/invoice-api/internal/storage"
)

// @title FactuPro Invoice API
// @version 1.0
// @description Invoice document upload and metadata service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	awsCfg, err := loadAWSConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %v", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
			o.UsePathStyle = true
		}
	})
	dynamoClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
		}
	})

	blobs := storage.NewS3BlobStore(s3Client, cfg.Bucket, cfg.PublicBaseURL)
	records := repository.NewDynamoRecordStore(dynamoClient, cfg.Table)
	dispatcher := service.NewDispatcher(blobs, records)
	invoiceHandler := handler.NewInvoiceHandler(dispatcher)

	log.Println("Configuring server...")
	appServer := server.NewServer(cfg, invoiceHandler)

	log.Printf("Starting server on port %d...", cfg.Port)
	if err := appServer.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func loadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKey != "" && cfg.AWSSecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKey, cfg.AWSSecretKey, "")))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}
