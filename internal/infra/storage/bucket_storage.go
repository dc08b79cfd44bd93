// Package storage keeps uploaded card assets in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"loopcard/config"
	"loopcard/internal/domain/constants"
	"loopcard/internal/domain/service"
	"loopcard/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets in production
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
)

const defaultBucketURL = "mem://"

type bucketStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StorageParams holds dependencies for AssetStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAssetStorage opens the configured bucket and closes it on shutdown.
func NewAssetStorage(params StorageParams) (service.AssetStorage, error) {
	cfg := params.Config.Storage
	bucketURL := cfg.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("Storage bucket not configured, uploads are kept in memory")
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	storage := NewBucketStorage(bucket, cfg.PublicBaseURL, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing asset bucket")

			return storage.Close()
		},
	})

	return storage, nil
}

// NewBucketStorage stores assets under the card_assets prefix of bucket.
// Public URLs are publicBaseURL joined with the object key.
func NewBucketStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.AssetStorage {
	return &bucketStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload writes asset and returns the URL it is served from.
func (s *bucketStorage) Upload(ctx context.Context, asset *service.Asset) (string, error) {
	key := ObjectKey(asset.Key)

	err := s.bucket.WriteAll(ctx, key, asset.Data, &blob.WriterOptions{
		ContentType:  asset.ContentType,
		CacheControl: "public, max-age=31536000, immutable",
		ContentMD5:   util.ContentMD5(asset.Data),
	})
	if err != nil {
		return "", errors.Wrapf(err, "write object %s", key)
	}

	s.logger.Debug("Asset stored",
		slog.String("key", key),
		slog.Int("bytes", len(asset.Data)),
	)

	return s.publicBaseURL + "/" + key, nil
}

func (s *bucketStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// ObjectKey places a user-relative asset path under the asset prefix.
func ObjectKey(path string) string {
	return constants.AssetBucketPrefix + "/" + strings.TrimLeft(path, "/")
}
