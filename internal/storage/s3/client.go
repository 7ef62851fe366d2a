// Package s3 implements the object store on S3-compatible storage. The
// daemon never proxies payload bytes; clients up- and download directly
// against presigned URLs.
package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"sciodb/internal/config"
	"sciodb/internal/domain"
	"sciodb/internal/storage"
)

// presignExpiry is how long presigned URLs stay valid.
const presignExpiry = time.Hour

// defaultRegion is used when the environment provides no region, which is
// the normal case against non-AWS endpoints.
const defaultRegion = "us-east-1"

// Store is a handle to the S3 object store.
type Store struct {
	client  *awss3.Client
	presign *awss3.PresignClient
	bucket  string
}

// New creates an object store client. A non-empty endpoint switches the
// client to path-style addressing, as required by MinIO and friends.
// Configured access keys take precedence over the ambient AWS credential
// chain.
func New(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithDefaultRegion(defaultRegion),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Store{
		client:  client,
		presign: awss3.NewPresignClient(client),
		bucket:  cfg.Bucket,
	}, nil
}

// Bucket returns the configured bucket name.
func (s *Store) Bucket() string {
	return s.bucket
}

// PresignGet returns a presigned download URL for the object at the given
// location.
func (s *Store) PresignGet(ctx context.Context, loc domain.Location) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	}, awss3.WithPresignExpires(presignExpiry))
	if err != nil {
		storage.Logger("s3").Error("presign get failed", "key", loc.Key, "error", err)
		return "", fmt.Errorf("%w: get %s: %v", storage.ErrPresignFailed, loc.Key, err)
	}
	return req.URL, nil
}

// PresignPut returns a presigned upload URL for the object at the given
// location.
func (s *Store) PresignPut(ctx context.Context, loc domain.Location) (string, error) {
	req, err := s.presign.PresignPutObject(ctx, &awss3.PutObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	}, awss3.WithPresignExpires(presignExpiry))
	if err != nil {
		storage.Logger("s3").Error("presign put failed", "key", loc.Key, "error", err)
		return "", fmt.Errorf("%w: put %s: %v", storage.ErrPresignFailed, loc.Key, err)
	}
	return req.URL, nil
}

// InitMultipartUpload starts a multipart upload for the object at the
// given location and returns the upload id.
func (s *Store) InitMultipartUpload(ctx context.Context, loc domain.Location) (string, error) {
	out, err := s.client.CreateMultipartUpload(ctx, &awss3.CreateMultipartUploadInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	})
	if err != nil {
		return "", fmt.Errorf("create multipart upload for %s: %w", loc.Key, err)
	}
	return aws.ToString(out.UploadId), nil
}

// PresignUploadPart returns a presigned URL for uploading a single part of
// a multipart upload.
func (s *Store) PresignUploadPart(ctx context.Context, loc domain.Location, uploadID string, partNumber int32) (string, error) {
	if uploadID == "" {
		return "", fmt.Errorf("%w: %s", storage.ErrUploadNotStarted, loc.Key)
	}
	req, err := s.presign.PresignUploadPart(ctx, &awss3.UploadPartInput{
		Bucket:     aws.String(loc.Bucket),
		Key:        aws.String(loc.Key),
		UploadId:   aws.String(uploadID),
		PartNumber: aws.Int32(partNumber),
	}, awss3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("%w: part %d of %s: %v", storage.ErrPresignFailed, partNumber, loc.Key, err)
	}
	return req.URL, nil
}

// CompletedPart is one uploaded part of a multipart upload.
type CompletedPart struct {
	ETag       string
	PartNumber int32
}

// CompleteMultipartUpload finishes a multipart upload from the recorded
// parts.
func (s *Store) CompleteMultipartUpload(ctx context.Context, loc domain.Location, uploadID string, parts []CompletedPart) error {
	if uploadID == "" {
		return fmt.Errorf("%w: %s", storage.ErrUploadNotStarted, loc.Key)
	}

	completed := make([]types.CompletedPart, 0, len(parts))
	for _, p := range parts {
		completed = append(completed, types.CompletedPart{
			ETag:       aws.String(p.ETag),
			PartNumber: aws.Int32(p.PartNumber),
		})
	}

	_, err := s.client.CompleteMultipartUpload(ctx, &awss3.CompleteMultipartUploadInput{
		Bucket:   aws.String(loc.Bucket),
		Key:      aws.String(loc.Key),
		UploadId: aws.String(uploadID),
		MultipartUpload: &types.CompletedMultipartUpload{
			Parts: completed,
		},
	})
	if err != nil {
		return fmt.Errorf("complete multipart upload for %s: %w", loc.Key, err)
	}
	return nil
}

// Delete removes the object at the given location. Deleting a missing
// object is not an error.
func (s *Store) Delete(ctx context.Context, loc domain.Location) error {
	_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	})
	if err != nil {
		storage.Logger("s3").Error("delete failed", "key", loc.Key, "error", err)
		return fmt.Errorf("delete %s: %w", loc.Key, err)
	}
	return nil
}
