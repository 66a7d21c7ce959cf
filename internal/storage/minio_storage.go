package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/fhuszti/memorials-ms-go/internal/port"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStorage struct {
	client        minioClient
	bucketName    string
	endpoint      string
	useSSL        bool
	publicBaseURL string
}

// compile-time check: *MinioStorage must satisfy port.Storage
var _ port.Storage = (*MinioStorage)(nil)

func NewMinioStorage(endpoint, accessKey, secretKey string, useSSL bool, bucket, publicBaseURL string) (*MinioStorage, error) {
	log.Println("initialising minio client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return &MinioStorage{
		client:        client,
		bucketName:    bucket,
		endpoint:      endpoint,
		useSSL:        useSSL,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (s *MinioStorage) InitBucket() error {
	ok, err := s.client.BucketExists(context.Background(), s.bucketName)
	if err != nil {
		return mapMinioErr(err)
	}
	if !ok {
		log.Printf("bucket %q does not exist, creating it...", s.bucketName)
		if err := s.client.MakeBucket(context.Background(), s.bucketName, minio.MakeBucketOptions{}); err != nil {
			return mapMinioErr(err)
		}
	}
	return nil
}

func (s *MinioStorage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	log.Printf("saving file %q into bucket %q...", fileKey, s.bucketName)

	putOpts := minio.PutObjectOptions{}
	if ct := opts["Content-Type"]; ct != "" {
		putOpts.ContentType = ct
	}
	if cc := opts["Cache-Control"]; cc != "" {
		putOpts.CacheControl = cc
	}

	_, err := s.client.PutObject(ctx, s.bucketName, fileKey, reader, fileSize, putOpts)
	if err != nil {
		return mapMinioErr(err)
	}
	return nil
}

func (s *MinioStorage) RemoveFile(ctx context.Context, fileKey string) error {
	log.Printf("removing file %q from bucket %q...", fileKey, s.bucketName)

	err := s.client.RemoveObject(ctx, s.bucketName, fileKey, minio.RemoveObjectOptions{})
	return mapMinioErr(err)
}

// ListPrefix walks every object under prefix. The client streams results
// page by page under the hood, following continuation tokens until the
// listing is exhausted; keys are accumulated in memory before returning.
func (s *MinioStorage) ListPrefix(ctx context.Context, prefix string) ([]string, error) {
	log.Printf("listing objects under prefix %q in bucket %q...", prefix, s.bucketName)

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, mapMinioErr(obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// RemoveFiles deletes the given keys in one bulk call. Callers are expected
// to keep batches at or below the storage API limit of 1000 keys.
func (s *MinioStorage) RemoveFiles(ctx context.Context, fileKeys []string) error {
	log.Printf("removing %d files from bucket %q...", len(fileKeys), s.bucketName)

	objectsCh := make(chan minio.ObjectInfo)
	go func() {
		defer close(objectsCh)
		for _, key := range fileKeys {
			objectsCh <- minio.ObjectInfo{Key: key}
		}
	}()

	for rErr := range s.client.RemoveObjects(ctx, s.bucketName, objectsCh, minio.RemoveObjectsOptions{}) {
		if rErr.Err != nil {
			return fmt.Errorf("failed to remove %q: %w", rErr.ObjectName, mapMinioErr(rErr.Err))
		}
	}
	return nil
}

func (s *MinioStorage) PublicURL(fileKey string) string {
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.publicBaseURL, fileKey)
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucketName, fileKey)
}
