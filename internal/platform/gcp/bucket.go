package gcp

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/yungbote/vectorbridge-backend/internal/platform/logger"
)

// BucketService reads source material out of GCS. When
// STORAGE_EMULATOR_HOST is set the client talks to the emulator without
// credentials, matching local compose runs.
type BucketService interface {
	DownloadFile(ctx context.Context, bucket, object string) (io.ReadCloser, error)
	ReadObject(ctx context.Context, ref ObjectRef) ([]byte, error)
}

type bucketService struct {
	log           *logger.Logger
	storageClient *storage.Client
	defaultBucket string
}

func NewBucketService(log *logger.Logger) (BucketService, error) {
	serviceLog := log.With("service", "BucketService")

	defaultBucket := strings.TrimSpace(os.Getenv("MATERIAL_GCS_BUCKET_NAME"))
	emulatorHost := strings.TrimRight(strings.TrimSpace(os.Getenv("STORAGE_EMULATOR_HOST")), "/")

	ctx := context.Background()
	var stClient *storage.Client
	var err error
	if emulatorHost != "" {
		_ = os.Setenv("STORAGE_EMULATOR_HOST", emulatorHost)
		stClient, err = storage.NewClient(ctx, option.WithoutAuthentication())
	} else {
		stClient, err = storage.NewClient(ctx, option.WithScopes(storage.ScopeReadOnly))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	serviceLog.Info(
		"Object storage initialized",
		"emulator_host", emulatorHost,
		"material_bucket", defaultBucket,
	)
	return &bucketService{
		log:           serviceLog,
		storageClient: stClient,
		defaultBucket: defaultBucket,
	}, nil
}

func (s *bucketService) DownloadFile(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	if bucket == "" {
		bucket = s.defaultBucket
	}
	if bucket == "" {
		return nil, fmt.Errorf("no bucket given and MATERIAL_GCS_BUCKET_NAME is unset")
	}
	if object == "" {
		return nil, fmt.Errorf("object name is required")
	}
	reader, err := s.storageClient.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		s.log.Error("Failed to open object", "bucket", bucket, "object", object, "error", err)
		return nil, fmt.Errorf("Failed to open gs://%s/%s: %w", bucket, object, err)
	}
	return reader, nil
}

func (s *bucketService) ReadObject(ctx context.Context, ref ObjectRef) ([]byte, error) {
	reader, err := s.DownloadFile(ctx, ref.Bucket, ref.Object)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("Failed to read gs://%s/%s: %w", ref.Bucket, ref.Object, err)
	}
	return data, nil
}
