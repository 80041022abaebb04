// Package storage provides access to the Supabase object storage backend.
//
// It covers the two ways an image can be retrieved: through the public object
// URL of a public bucket, or through an authenticated download using the
// privileged service role key.
//
// # Public URLs
//
// BuildPublicURL builds the unauthenticated object URL, and a Prober checks
// with a HEAD request whether that URL is actually served.
//
// # Client Interface
//
// The Client interface abstracts the authenticated backend, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
// Two drivers exist:
//
//   - rest: the Supabase Storage REST API (default).
//   - s3: any S3-compatible endpoint through the MinIO Go client.
//
// Downloads return an *Object holding one of three representations (bytes,
// stream or text); ReadAll converts any of them into a single buffer.
//
// # Usage
//
//	client, err := storage.NewServiceClient(cfg)
//	obj, err := client.Download(ctx, "public", "blog/cover.png")
//	data, err := obj.ReadAll()
package storage
