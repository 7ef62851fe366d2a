package s3

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sciodb/internal/config"
	"sciodb/internal/domain"
	"sciodb/internal/storage"
)

// testStore builds a client against a fake endpoint with static
// credentials. Presigning is purely local, so no object store needs to be
// running.
func testStore(t *testing.T) *Store {
	t.Helper()

	t.Setenv("AWS_ACCESS_KEY_ID", "test-access-key")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test-secret-key")

	s, err := New(context.Background(), config.StorageConfig{
		Endpoint: "http://localhost:9000",
		Bucket:   "test-bucket",
	})
	require.NoError(t, err)
	return s
}

func testLocation() domain.Location {
	return domain.Location{
		Bucket: "test-bucket",
		Key:    "dataset-1/object-1/data.raw",
	}
}

func TestPresignGet(t *testing.T) {
	s := testStore(t)

	url, err := s.PresignGet(context.Background(), testLocation())
	require.NoError(t, err)

	assert.Contains(t, url, "test-bucket")
	assert.Contains(t, url, "dataset-1/object-1/data.raw")
	assert.Contains(t, url, "X-Amz-Expires=3600")
	assert.Contains(t, url, "X-Amz-Signature=")
	// Path-style addressing against the custom endpoint
	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/test-bucket/"),
		"expected path-style URL, got %s", url)
}

func TestPresignPut(t *testing.T) {
	s := testStore(t)

	url, err := s.PresignPut(context.Background(), testLocation())
	require.NoError(t, err)

	assert.Contains(t, url, "dataset-1/object-1/data.raw")
	assert.Contains(t, url, "X-Amz-Expires=3600")
}

func TestPresignUploadPart(t *testing.T) {
	s := testStore(t)

	url, err := s.PresignUploadPart(context.Background(), testLocation(), "upload-1", 3)
	require.NoError(t, err)

	assert.Contains(t, url, "partNumber=3")
	assert.Contains(t, url, "uploadId=upload-1")
	assert.Contains(t, url, "X-Amz-Expires=3600")
}

func TestPresignUploadPartWithoutUpload(t *testing.T) {
	s := testStore(t)

	_, err := s.PresignUploadPart(context.Background(), testLocation(), "", 1)
	assert.True(t, errors.Is(err, storage.ErrUploadNotStarted))
}

func TestCompleteMultipartUploadWithoutUpload(t *testing.T) {
	s := testStore(t)

	err := s.CompleteMultipartUpload(context.Background(), testLocation(), "", nil)
	assert.True(t, errors.Is(err, storage.ErrUploadNotStarted))
}

func TestBucket(t *testing.T) {
	s := testStore(t)
	assert.Equal(t, "test-bucket", s.Bucket())
}
