package storage_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"image-proxy/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chunkReader struct {
	chunks []string
	closed bool
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	r.chunks[0] = r.chunks[0][n:]
	if r.chunks[0] == "" {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

func (r *chunkReader) Close() error {
	r.closed = true
	return nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }
func (failingReader) Close() error             { return nil }

func TestObject_ReadAll(t *testing.T) {
	t.Run("Bytes", func(t *testing.T) {
		obj := storage.BytesObject([]byte{0x89, 'P', 'N', 'G'})
		assert.Equal(t, storage.KindBytes, obj.Kind())

		data, err := obj.ReadAll()
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
	})

	t.Run("Stream", func(t *testing.T) {
		r := &chunkReader{chunks: []string{"hello ", "image ", "bytes"}}
		obj := storage.StreamObject(r)
		assert.Equal(t, storage.KindStream, obj.Kind())

		data, err := obj.ReadAll()
		require.NoError(t, err)
		assert.Equal(t, "hello image bytes", string(data))
		assert.True(t, r.closed)
	})

	t.Run("StreamError", func(t *testing.T) {
		obj := storage.StreamObject(failingReader{})

		_, err := obj.ReadAll()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("Text", func(t *testing.T) {
		obj := storage.TextObject("<svg/>")
		assert.Equal(t, storage.KindText, obj.Kind())

		data, err := obj.ReadAll()
		require.NoError(t, err)
		assert.Equal(t, []byte("<svg/>"), data)
	})
}

func TestObject_Close(t *testing.T) {
	r := &chunkReader{chunks: []string{"x"}}
	obj := storage.StreamObject(r)
	assert.NoError(t, obj.Close())
	assert.True(t, r.closed)

	assert.NoError(t, storage.BytesObject(nil).Close())
	assert.NoError(t, storage.TextObject("").Close())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "bytes", storage.KindBytes.String())
	assert.Equal(t, "stream", storage.KindStream.String())
	assert.Equal(t, "text", storage.KindText.String())
	assert.True(t, strings.HasPrefix(storage.Kind(0).String(), "kind("))
}

func TestError_Is(t *testing.T) {
	assert.ErrorIs(t, &storage.Error{StatusCode: 404}, storage.ErrNotFound)
	assert.NotErrorIs(t, &storage.Error{StatusCode: 500}, storage.ErrNotFound)
	assert.Contains(t, (&storage.Error{StatusCode: 404, Code: "not_found", Message: "Object not found"}).Error(), "not_found")
}
