// Package storage defines the backend abstraction for configuration
// snapshot exports. Flattened environment dumps can be written to the
// local filesystem or to S3-compatible object storage (AWS S3, MinIO).
package storage

import (
	"context"
	"io"
)

// Storage is implemented by every snapshot backend.
type Storage interface {
	// PutObject writes a snapshot under the given key.
	PutObject(ctx context.Context, key string, data io.Reader, contentType string, size int64) error

	// GetObject retrieves a snapshot. The returned ReadCloser must be
	// closed by the caller.
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)

	// ObjectExists reports whether a snapshot exists under the key.
	ObjectExists(ctx context.Context, key string) (bool, error)

	// Type returns the backend identifier ("local" or "s3").
	Type() string
}
