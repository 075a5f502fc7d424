package storage

import (
	"context"
	"io"
)

// Storage is the file store behind image uploads. Paths are relative
// (e.g. "products/169...jpg"); URL mapping is the store's concern.
type Storage interface {
	// Save stores a file at the given relative path.
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Get retrieves a stored file.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, path string) error

	// Exists checks whether a file exists at the path.
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public URL path for a stored file.
	URL(path string) string
}
