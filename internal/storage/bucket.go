package storage

import (
	"context"
	"io"
)

// ObjectFile is an upload payload handed to the bucket.
type ObjectFile struct {
	Name        string
	Size        int64
	ContentType string
	Reader      io.Reader
}

//go:generate mockgen -source=bucket.go -destination=mock/bucket_mock.go -package=mock

// Bucket abstracts the cloud object store. Paths are bucket-relative keys
// like "employee/EMPLOYEE-7-1725100000000.png".
type Bucket interface {
	AddFile(ctx context.Context, path string, file ObjectFile) error
	GetURL(path string) string
	// PathFromURL recovers the object key from a stored public URL so rows
	// that persist URLs can still be deleted by key.
	PathFromURL(url string) string
	DeleteFile(ctx context.Context, path string) error
}
