package repositories

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rohits-web03/sociogram/internal/config"
)

// ObjectStorage holds the S3-compatible client used to hand out presigned
// URLs for profile images. The server never proxies image bytes itself.
type ObjectStorage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewObjectStorage initializes the client with static credentials against
// the account's R2 endpoint.
func NewObjectStorage(cfg config.S3Config) *ObjectStorage {
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)

	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	log.Println("Successfully initialized object storage client")

	return &ObjectStorage{
		client:        client,
		bucket:        cfg.BucketName,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}
}

// PresignPut creates a presigned URL for uploading an object.
func (o *ObjectStorage) PresignPut(ctx context.Context, key string, expires time.Duration) (string, error) {
	presigner := s3.NewPresignClient(o.client)
	req, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// PresignGet creates a presigned URL for downloading an object.
func (o *ObjectStorage) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	presigner := s3.NewPresignClient(o.client)
	req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// PublicURL is the stable URL a client should store in the profile image
// field after a successful upload.
func (o *ObjectStorage) PublicURL(key string) string {
	return o.publicBaseURL + "/" + key
}

// KeyFromURL recovers the object key from a public URL, reporting whether
// the URL actually points into this bucket.
func (o *ObjectStorage) KeyFromURL(url string) (string, bool) {
	prefix := o.publicBaseURL + "/"
	if o.publicBaseURL == "" || !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}
