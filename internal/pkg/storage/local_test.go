package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return s
}

func TestLocalStorage_UploadDownload(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	path, err := s.Upload(ctx, strings.NewReader("photo bytes"), "attendance/2025-03-10/guard-1.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "attendance/2025-03-10/guard-1.jpg", path)

	rc, err := s.Download(ctx, path)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "photo bytes", string(content))
}

func TestLocalStorage_Exists(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	exists, err := s.Exists(ctx, "nope.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.Upload(ctx, strings.NewReader("x"), "yes.jpg", "image/jpeg")
	require.NoError(t, err)

	exists, err = s.Exists(ctx, "yes.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorage_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Upload(ctx, strings.NewReader("x"), "gone.jpg", "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "gone.jpg"))

	exists, err := s.Exists(ctx, "gone.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing file is not an error
	assert.NoError(t, s.Delete(ctx, "gone.jpg"))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Upload(ctx, strings.NewReader("x"), "../../etc/passwd", "text/plain")
	assert.Error(t, err)
}

func TestLocalStorage_GetURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.GetURL(context.Background(), "avatars/guard-1/a.jpg", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/avatars/guard-1/a.jpg", url)
}
