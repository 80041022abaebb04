package storage_test

import (
	"testing"

	"image-proxy/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestBuildPublicURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		bucket  string
		path    string
		want    string
	}{
		{"Simple", "https://x.supabase.co", "public", "logo.png", "https://x.supabase.co/storage/v1/object/public/public/logo.png"},
		{"TrailingSlash", "https://x.supabase.co/", "public", "logo.png", "https://x.supabase.co/storage/v1/object/public/public/logo.png"},
		{"NestedPath", "https://x.supabase.co", "blog", "2024/cover.jpg", "https://x.supabase.co/storage/v1/object/public/blog/2024%2Fcover.jpg"},
		{"Spaces", "https://x.supabase.co", "my bucket", "a b.svg", "https://x.supabase.co/storage/v1/object/public/my%20bucket/a%20b.svg"},
		{"Reserved", "https://x.supabase.co", "public", "a+b&c=d:e@f$g,h;i.png", "https://x.supabase.co/storage/v1/object/public/public/a%2Bb%26c%3Dd%3Ae%40f%24g%2Ch%3Bi.png"},
		{"Unreserved", "https://x.supabase.co", "public", "it's(1)!~*-_.png", "https://x.supabase.co/storage/v1/object/public/public/it's(1)!~*-_.png"},
		{"Unicode", "https://x.supabase.co", "public", "café.png", "https://x.supabase.co/storage/v1/object/public/public/caf%C3%A9.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := storage.BuildPublicURL(tt.baseURL, tt.bucket, tt.path)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("NotConfigured", func(t *testing.T) {
		_, err := storage.BuildPublicURL("", "public", "logo.png")
		assert.ErrorIs(t, err, storage.ErrURLNotConfigured)
	})
}
