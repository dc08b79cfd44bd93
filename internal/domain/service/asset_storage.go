package service

import "context"

// Asset is an uploaded image ready to be stored.
type Asset struct {
	Key         string // Object key inside the bucket, e.g. card_assets/<user>/<ts>.png
	ContentType string
	Data        []byte
}

// AssetStorage writes card photos to object storage.
type AssetStorage interface {
	// Upload stores asset and returns its public URL.
	Upload(ctx context.Context, asset *Asset) (string, error)

	// Close releases the underlying bucket.
	Close() error
}
