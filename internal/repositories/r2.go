package repositories

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// ImageStore hands out upload URLs for project images and resolves
// uploaded keys to public URLs.
type ImageStore interface {
	PresignUpload(ctx context.Context, filename string, expires time.Duration) (key, url string, err error)
	Exists(ctx context.Context, key string) (bool, error)
	PublicURL(key string) string
}

// R2Store is an ImageStore on a Cloudflare R2 (S3 compatible) bucket.
type R2Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewR2Store initializes the client using static credentials and the
// account endpoint.
func NewR2Store(accessKey, secretKey, accountID, bucketName, region, publicBaseURL string) *R2Store {
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
	return NewS3Store(endpoint, accessKey, secretKey, bucketName, region, publicBaseURL)
}

// NewS3Store targets any S3 compatible endpoint.
func NewS3Store(endpoint, accessKey, secretKey, bucketName, region, publicBaseURL string) *R2Store {
	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		Region:      region,
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})
	return &R2Store{
		client:        client,
		bucket:        bucketName,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// PresignUpload creates an object key under projects/ and a presigned PUT
// URL for it.
func (s *R2Store) PresignUpload(ctx context.Context, filename string, expires time.Duration) (string, string, error) {
	key := ImageKey(filename)
	presigner := s3.NewPresignClient(s.client)
	req, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return key, req.URL, nil
}

// Exists checks if a given object key exists in the bucket.
func (s *R2Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *s3types.NotFound
		if errors.As(err, &nsk) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check image: %w", err)
	}
	return true, nil
}

func (s *R2Store) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

// ImageKey builds a collision-free object key that keeps the file extension.
func ImageKey(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	return "projects/" + uuid.NewString() + ext
}
