package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioClient serves the s3 driver against any S3-compatible endpoint.
type minioClient struct {
	client *minio.Client
}

func newMinioClient(cfg Config) (*minioClient, error) {
	if cfg.S3Endpoint == "" {
		return nil, ErrURLNotConfigured
	}
	if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		return nil, ErrServiceKeyNotConfigured
	}

	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.S3Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure:    cfg.S3UseSSL,
		Region:    cfg.S3Region,
		Transport: newTransport(cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &minioClient{client: client}, nil
}

func (c *minioClient) Download(ctx context.Context, bucket, path string) (*Object, error) {
	obj, err := c.client.GetObject(ctx, bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, toStorageError(err)
	}

	// GetObject is lazy; Stat issues the request so a missing key surfaces here.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, toStorageError(err)
	}
	return StreamObject(obj), nil
}

func (c *minioClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	exists, err := c.client.BucketExists(ctx, bucket)
	if err != nil {
		return false, toStorageError(err)
	}
	return exists, nil
}

func toStorageError(err error) error {
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return fmt.Errorf("storage request failed: %w", err)
	}

	status := resp.StatusCode
	if status == 0 {
		switch resp.Code {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			status = http.StatusNotFound
		case "AccessDenied":
			status = http.StatusForbidden
		default:
			status = http.StatusInternalServerError
		}
	}
	return &Error{StatusCode: status, Code: resp.Code, Message: resp.Message}
}
