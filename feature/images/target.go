package images

import (
	"errors"
	"path"
	"strings"
)

// ErrInvalidPath is returned for an empty path or one containing "..".
var ErrInvalidPath = errors.New("images: invalid path")

// MIME types served by the proxy.
const (
	MIMEPNG         = "image/png"
	MIMESVG         = "image/svg+xml"
	MIMEJPEG        = "image/jpeg"
	MIMEOctetStream = "application/octet-stream"
)

var mimeByExtension = map[string]string{
	".png":  MIMEPNG,
	".svg":  MIMESVG,
	".jpg":  MIMEJPEG,
	".jpeg": MIMEJPEG,
}

// Target is the object a request resolves to.
type Target struct {
	Bucket string
	Path   string
	MIME   string
}

// ParseTarget resolves the requested path and optional bucket override into
// a Target. With an override, a leading "<bucket>/" is stripped from the path.
func ParseTarget(rawPath, bucketOverride, defaultBucket string) (Target, error) {
	var segments []string
	for _, s := range strings.Split(rawPath, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return Target{}, ErrInvalidPath
	}

	objectPath := strings.Join(segments, "/")
	if strings.Contains(objectPath, "..") {
		return Target{}, ErrInvalidPath
	}

	bucket := defaultBucket
	if bucketOverride != "" {
		bucket = bucketOverride
		objectPath = strings.TrimPrefix(objectPath, bucket+"/")
	}

	return Target{
		Bucket: bucket,
		Path:   objectPath,
		MIME:   DetectMIME(objectPath),
	}, nil
}

// DetectMIME maps the path's extension (case-insensitive) to a MIME type.
func DetectMIME(objectPath string) string {
	if m, ok := mimeByExtension[strings.ToLower(path.Ext(objectPath))]; ok {
		return m
	}
	return MIMEOctetStream
}
