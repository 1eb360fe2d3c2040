package upload

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/towoju5/bridge-verification-system-sub001/config"
)

// MinioBackend stores documents in an S3-compatible bucket.
type MinioBackend struct {
	client *minio.Client
	bucket string
}

// NewMinioBackend connects to the configured S3 endpoint.
func NewMinioBackend(cfg *config.StorageConfiguration) (*MinioBackend, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize s3 client: %w", err)
	}
	return &MinioBackend{client: client, bucket: cfg.S3Bucket}, nil
}

// Store uploads the document and returns its reference.
func (m *MinioBackend) Store(ctx context.Context, category, name string, r io.Reader, size int64, contentType string) (string, error) {
	key := category + "/" + objectName(name)
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}
	return key, nil
}

// Exists reports whether the reference resolves to a stored object.
func (m *MinioBackend) Exists(ctx context.Context, reference string) (bool, error) {
	_, err := m.client.StatObject(ctx, m.bucket, reference, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
