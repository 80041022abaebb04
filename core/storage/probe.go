package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/sync/singleflight"
)

// Prober checks whether a public object URL is served.
type Prober interface {
	// Probe returns nil when url answers a HEAD request with a 2xx status.
	Probe(ctx context.Context, url string) error
}

// HTTPProber probes public URLs with HEAD requests. Concurrent probes of the
// same URL share a single upstream request.
type HTTPProber struct {
	client *http.Client
	group  singleflight.Group
}

// NewProber creates a prober using the storage transport settings.
func NewProber(cfg Config) *HTTPProber {
	return &HTTPProber{
		client: &http.Client{Transport: newTransport(cfg)},
	}
}

// Probe issues a HEAD request to url. The shared request is detached from
// the caller's cancellation and bounded by the transport timeouts, so a
// cancelled caller returns early without failing the others.
func (p *HTTPProber) Probe(ctx context.Context, url string) error {
	shared := context.WithoutCancel(ctx)
	ch := p.group.DoChan(url, func() (any, error) {
		return nil, p.head(shared, url)
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return fmt.Errorf("public probe cancelled: %w", ctx.Err())
	}
}

func (p *HTTPProber) head(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build probe request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("public probe failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{StatusCode: resp.StatusCode}
	}
	return nil
}
