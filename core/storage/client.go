package storage

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

// Client defines the interface for authenticated storage operations.
type Client interface {
	// Download fetches an object. A nil object with a nil error means the
	// backend answered without data.
	Download(ctx context.Context, bucket, path string) (*Object, error)
	// BucketExists checks if a bucket exists and is reachable.
	BucketExists(ctx context.Context, bucket string) (bool, error)
}

// NewServiceClient creates a client authenticated with the privileged service
// credential, using the configured driver.
func NewServiceClient(cfg Config) (Client, error) {
	switch cfg.Driver {
	case "", DriverREST:
		return newRESTClient(cfg)
	case DriverS3:
		return newMinioClient(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// NewServiceClientFactory returns a function that builds the service client
// once and hands out the same client (or error) on every call.
func NewServiceClientFactory(cfg Config) func() (Client, error) {
	var (
		once   sync.Once
		client Client
		err    error
	)
	return func() (Client, error) {
		once.Do(func() {
			client, err = NewServiceClient(cfg)
		})
		return client, err
	}
}

func timeout(cfg Config) time.Duration {
	seconds := cfg.TimeoutSeconds
	if seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}

// newTransport returns a transport with strict connection timeouts shared by
// every driver and the public prober.
func newTransport(cfg Config) *http.Transport {
	timeoutDuration := timeout(cfg)
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}
}
