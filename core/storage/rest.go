package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

// restClient talks to the Supabase Storage REST API with the service role key.
type restClient struct {
	baseURL string
	key     string
	http    *http.Client
}

func newRESTClient(cfg Config) (*restClient, error) {
	if cfg.URL == "" {
		return nil, ErrURLNotConfigured
	}
	if cfg.ServiceRoleKey == "" {
		return nil, ErrServiceKeyNotConfigured
	}
	return &restClient{
		baseURL: strings.TrimSuffix(cfg.URL, "/") + "/storage/v1",
		key:     cfg.ServiceRoleKey,
		http:    &http.Client{Transport: newTransport(cfg)},
	}, nil
}

func (c *restClient) Download(ctx context.Context, bucket, path string) (*Object, error) {
	endpoint := c.baseURL + "/object/" + url.PathEscape(bucket) + "/" + escapeObjectPath(path)

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseError(resp.StatusCode, body)
	}

	if isTextual(resp.Header.Get("Content-Type")) {
		return TextObject(string(body)), nil
	}
	return BytesObject(body), nil
}

func (c *restClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	resp, err := c.get(ctx, c.baseURL+"/bucket/"+url.PathEscape(bucket))
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read bucket response: %w", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return true, nil
	}

	storageErr := parseError(resp.StatusCode, body)
	if storageErr.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return false, storageErr
}

func (c *restClient) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build storage request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("apikey", c.key)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storage request failed: %w", err)
	}
	return resp, nil
}

// parseError builds an *Error from a non-2xx storage response. Storage
// servers may answer 400 with the real status in the body's statusCode.
func parseError(status int, body []byte) *Error {
	e := &Error{StatusCode: status}
	if !gjson.ValidBytes(body) {
		e.Message = strings.TrimSpace(string(body))
		return e
	}

	res := gjson.ParseBytes(body)
	if code := res.Get("statusCode").Int(); code > 0 {
		e.StatusCode = int(code)
	}
	e.Code = res.Get("error").String()
	e.Message = res.Get("message").String()
	return e
}

func isTextual(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "text/") || mediaType == "image/svg+xml"
}
