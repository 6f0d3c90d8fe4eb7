package objectstore

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"time"

	"qcscargo/internal/config"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/serrors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// MinioStore implements Store on a MinIO or S3 bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
	region string
}

// NewMinio creates a MinioStore for the configured bucket.
func NewMinio(cfg *config.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.Documents.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Documents.AccessKey, cfg.Documents.SecretKey, ""),
		Secure: cfg.Documents.UseSSL,
		Region: cfg.Documents.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create object storage client: %w", err)
	}

	return NewMinioWithClient(client, cfg.Documents.Bucket, cfg.Documents.Region), nil
}

// NewMinioWithClient wraps an existing client.
func NewMinioWithClient(client *minio.Client, bucket, region string) *MinioStore {
	return &MinioStore{client: client, bucket: bucket, region: region}
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not check bucket %s", s.bucket)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not create bucket %s", s.bucket)
	}
	logger.Info(ctx, "created document bucket", zap.String("bucket", s.bucket))

	return nil
}

// Put uploads obj.
func (s *MinioStore) Put(ctx context.Context, obj Object) error {
	if _, err := s.client.PutObject(ctx, s.bucket, obj.Key, obj.Body, obj.Size, minio.PutObjectOptions{
		ContentType: obj.ContentType,
	}); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not store object")
	}

	return nil
}

// Delete removes the object stored under key.
func (s *MinioStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}

		return serrors.Wrap(serrors.ErrUnavailable, err, "could not delete object")
	}

	return nil
}

// PresignGet returns a presigned download URL for key.
func (s *MinioStore) PresignGet(ctx context.Context, key, fileName string, ttl time.Duration) (string, error) {
	params := url.Values{}
	params.Set("response-content-disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))

	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, ttl, params)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, "could not sign download URL")
	}

	return u.String(), nil
}

var _ Store = &MinioStore{}
