package storage

import (
	"net/url"
	"strings"
)

// BuildPublicURL returns the unauthenticated URL of an object in a public bucket.
// Bucket and path are each escaped as a single component.
func BuildPublicURL(baseURL, bucket, path string) (string, error) {
	if baseURL == "" {
		return "", ErrURLNotConfigured
	}
	return strings.TrimSuffix(baseURL, "/") + "/storage/v1/object/public/" +
		escapeComponent(bucket) + "/" + escapeComponent(path), nil
}

// escapeComponent percent-encodes every byte except ASCII letters, digits
// and -_.!~*'().
func escapeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isComponentSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// escapeObjectPath escapes every segment of path, keeping the separators.
func escapeObjectPath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
