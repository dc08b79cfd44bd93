package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"loopcard/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucketStorage_Upload(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	storage := NewBucketStorage(bucket, "https://cdn.example.com/assets/", logger)
	defer storage.Close()

	url, err := storage.Upload(ctx, &service.Asset{
		Key:         "user-1/1700000000000.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/assets/card_assets/user-1/1700000000000.png", url)

	stored, err := bucket.ReadAll(ctx, "card_assets/user-1/1700000000000.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)

	attrs, err := bucket.Attributes(ctx, "card_assets/user-1/1700000000000.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "card_assets/u/1.jpg", ObjectKey("u/1.jpg"))
	assert.Equal(t, "card_assets/u/1.jpg", ObjectKey("/u/1.jpg"))
}
