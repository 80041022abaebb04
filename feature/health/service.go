package health

import (
	"context"
	"fmt"

	"image-proxy/core/storage"

	"go.uber.org/zap"
)

// Report describes the reachability of the default bucket.
type Report struct {
	Bucket string `json:"bucket"`
	Driver string `json:"driver"`
	Exists bool   `json:"exists"`
	Public bool   `json:"public_url"`
}

// Service handles storage health checks.
type Service struct {
	cfg       storage.Config
	newClient func() (storage.Client, error)
	logger    *zap.Logger
}

// NewService creates a new health service.
func NewService(cfg storage.Config, newClient func() (storage.Client, error), logger *zap.Logger) *Service {
	return &Service{
		cfg:       cfg,
		newClient: newClient,
		logger:    logger,
	}
}

// CheckBucket verifies the default bucket through the service client.
func (s *Service) CheckBucket(ctx context.Context) (*Report, error) {
	client, err := s.newClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	bucket := s.cfg.Bucket()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	driver := s.cfg.Driver
	if driver == "" {
		driver = storage.DriverREST
	}

	return &Report{
		Bucket: bucket,
		Driver: driver,
		Exists: exists,
		Public: s.cfg.HasPublicURL(),
	}, nil
}
