package mocks

import (
	"context"

	"image-proxy/core/storage"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) Download(ctx context.Context, bucket, path string) (*storage.Object, error) {
	args := m.Called(ctx, bucket, path)
	if obj, ok := args.Get(0).(*storage.Object); ok {
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) BucketExists(ctx context.Context, bucket string) (bool, error) {
	args := m.Called(ctx, bucket)
	return args.Bool(0), args.Error(1)
}

// Prober is a mock implementation of storage.Prober
type Prober struct {
	mock.Mock
}

func (m *Prober) Probe(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}
