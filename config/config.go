// Package config wires a profilestore.Store from environment variables.
//
// It is a convenience for binaries embedding the library; the core
// itself takes fully constructed adapters and knows nothing about the
// environment.
package config

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/caarlos0/env/v11"
	"github.com/hupe1980/profilestore"
	s3store "github.com/hupe1980/profilestore/blobstore/s3"
	miniostore "github.com/hupe1980/profilestore/docstore/minio"
	ddbstore "github.com/hupe1980/profilestore/entitystore/dynamodb"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config holds the settings for the three backing stores.
type Config struct {
	// Entity store (DynamoDB)
	DynamoDBTable string `env:"PROFILESTORE_DYNAMODB_TABLE" envDefault:"profiles"`

	// Picture assets (S3)
	S3Bucket         string        `env:"PROFILESTORE_S3_BUCKET,required,notEmpty"`
	S3Prefix         string        `env:"PROFILESTORE_S3_PREFIX" envDefault:"pictures/"`
	PictureURLExpiry time.Duration `env:"PROFILESTORE_PICTURE_URL_EXPIRY" envDefault:"15m"`

	// Documents (MinIO / S3-compatible file share)
	MinioEndpoint  string `env:"PROFILESTORE_MINIO_ENDPOINT,required,notEmpty"`
	MinioAccessKey string `env:"PROFILESTORE_MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"PROFILESTORE_MINIO_SECRET_KEY"`
	MinioUseSSL    bool   `env:"PROFILESTORE_MINIO_USE_SSL" envDefault:"false"`
	DocumentBucket string `env:"PROFILESTORE_DOCUMENT_BUCKET" envDefault:"documents"`
	DocumentPrefix string `env:"PROFILESTORE_DOCUMENT_PREFIX"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Build dials the AWS and MinIO clients and assembles a Store.
func (c Config) Build(ctx context.Context, opts ...profilestore.Option) (*profilestore.Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	entities := ddbstore.NewStore(awsdynamodb.NewFromConfig(awsCfg), c.DynamoDBTable)

	assets := s3store.NewStore(awss3.NewFromConfig(awsCfg), c.S3Bucket,
		s3store.WithPrefix(c.S3Prefix),
		s3store.WithURLExpiry(c.PictureURLExpiry),
	)

	minioClient, err := minio.New(c.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.MinioAccessKey, c.MinioSecretKey, ""),
		Secure: c.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	documents := miniostore.NewStore(minioClient, c.DocumentBucket, c.DocumentPrefix)

	return profilestore.New(entities, assets, documents, opts...), nil
}
