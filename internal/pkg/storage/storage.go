package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage abstracts where uploaded selfies, CSV exports and backup dumps
// end up. Only local disk is implemented; an S3-style backend can be added
// behind the same interface.
type FileStorage interface {
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)
	Download(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)
	Exists(ctx context.Context, path string) (bool, error)
	List(ctx context.Context, prefix string) ([]string, error)
}
