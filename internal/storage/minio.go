package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
)

type minioBucket struct {
	client     *minio.Client
	bucketName string
	baseURL    string
}

// NewMinioBucket wraps a MinIO client as a Bucket. baseURL is the public
// endpoint prefix under which stored objects are reachable.
func NewMinioBucket(client *minio.Client, bucketName, baseURL string) Bucket {
	return &minioBucket{
		client:     client,
		bucketName: bucketName,
		baseURL:    baseURL,
	}
}

func (b *minioBucket) AddFile(ctx context.Context, path string, file ObjectFile) error {
	_, err := b.client.PutObject(ctx, b.bucketName, path, file.Reader, file.Size, minio.PutObjectOptions{
		ContentType: file.ContentType,
	})
	return err
}

func (b *minioBucket) GetURL(path string) string {
	return fmt.Sprintf("%s/%s/%s", b.baseURL, b.bucketName, path)
}

func (b *minioBucket) PathFromURL(url string) string {
	path := strings.TrimPrefix(url, b.baseURL)
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimPrefix(path, b.bucketName)
	return strings.TrimPrefix(path, "/")
}

func (b *minioBucket) DeleteFile(ctx context.Context, path string) error {
	return b.client.RemoveObject(ctx, b.bucketName, path, minio.RemoveObjectOptions{})
}
