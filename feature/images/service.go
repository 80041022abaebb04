package images

import (
	"context"
	"errors"
	"fmt"

	"image-proxy/core/metrics"
	"image-proxy/core/storage"

	"go.uber.org/zap"
)

var (
	// ErrNoPublicURL is returned when the public fast path is not configured.
	ErrNoPublicURL = errors.New("images: public URL not configured")
	// ErrUpstream wraps download failures other than not-found.
	ErrUpstream = errors.New("images: upstream error")
)

// ClientFactory builds the authenticated storage client on demand.
type ClientFactory func() (storage.Client, error)

// Service resolves images through the public URL or an authenticated download.
type Service struct {
	cfg       storage.Config
	prober    storage.Prober
	newClient ClientFactory
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewService creates a new image service.
func NewService(cfg storage.Config, prober storage.Prober, newClient ClientFactory, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		cfg:       cfg,
		prober:    prober,
		newClient: newClient,
		metrics:   m,
		logger:    logger,
	}
}

// DefaultBucket returns the bucket used when a request does not override it.
func (s *Service) DefaultBucket() string {
	return s.cfg.Bucket()
}

// ProbePublic returns the public URL of t when it is publicly served.
func (s *Service) ProbePublic(ctx context.Context, t Target) (string, error) {
	if !s.cfg.HasPublicURL() || s.prober == nil {
		return "", ErrNoPublicURL
	}

	publicURL, err := storage.BuildPublicURL(s.cfg.URL, t.Bucket, t.Path)
	if err != nil {
		return "", err
	}

	if err := s.prober.Probe(ctx, publicURL); err != nil {
		var storageErr *storage.Error
		if errors.As(err, &storageErr) {
			s.metrics.ObserveProbe("miss")
		} else {
			s.metrics.ObserveProbe("error")
		}
		return "", err
	}

	s.metrics.ObserveProbe("hit")
	return publicURL, nil
}

// FetchPrivate downloads t with the service credential and returns its bytes.
// Missing objects and empty downloads match storage.ErrNotFound.
func (s *Service) FetchPrivate(ctx context.Context, t Target) ([]byte, error) {
	client, err := s.newClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	obj, err := client.Download(ctx, t.Bucket, t.Path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: download returned no data", storage.ErrNotFound)
	}

	body, err := obj.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s object: %w", obj.Kind(), err)
	}
	return body, nil
}
