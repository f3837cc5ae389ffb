package storage

import (
	"context"
	"io"
)

// Storage is the attachment blob store. The workflow core only records the
// returned path plus filename/mime/size metadata.
type Storage interface {
	Store(ctx context.Context, reader io.Reader, size int64, suggestedName, mime string) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
}
