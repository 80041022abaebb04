package storage

import (
	"fmt"
	"io"
)

// Kind identifies which representation an Object holds.
type Kind int

const (
	KindBytes Kind = iota + 1
	KindStream
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindStream:
		return "stream"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Object is downloaded object content. Exactly one representation is set,
// depending on Kind.
type Object struct {
	kind   Kind
	data   []byte
	stream io.ReadCloser
	text   string
}

// BytesObject wraps an in-memory buffer.
func BytesObject(b []byte) *Object {
	return &Object{kind: KindBytes, data: b}
}

// StreamObject wraps a stream of chunks. ReadAll or Close releases it.
func StreamObject(rc io.ReadCloser) *Object {
	return &Object{kind: KindStream, stream: rc}
}

// TextObject wraps textual content.
func TextObject(s string) *Object {
	return &Object{kind: KindText, text: s}
}

// Kind returns the representation held by the object.
func (o *Object) Kind() Kind {
	return o.kind
}

// ReadAll normalizes the object into a single byte buffer.
func (o *Object) ReadAll() ([]byte, error) {
	switch o.kind {
	case KindBytes:
		return o.data, nil
	case KindStream:
		defer o.stream.Close()
		b, err := io.ReadAll(o.stream)
		if err != nil {
			return nil, fmt.Errorf("failed to read object stream: %w", err)
		}
		return b, nil
	case KindText:
		return []byte(o.text), nil
	default:
		return nil, fmt.Errorf("storage: unsupported object %s", o.kind)
	}
}

// Close releases the underlying stream, if any.
func (o *Object) Close() error {
	if o.kind == KindStream && o.stream != nil {
		return o.stream.Close()
	}
	return nil
}
