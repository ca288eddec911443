package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	cfg "github.com/redade943-code/FabiansWelt/internal/config"
)

// Client wraps an S3-compatible object store holding the two public
// containers: one for images, one for audio clips. It works with AWS S3,
// MinIO, DigitalOcean Spaces, Cloudflare R2, etc.
type Client struct {
	s3          *s3.Client
	imageBucket string
	audioBucket string
	publicURL   string
}

// New creates the object storage client from the app config and makes
// sure both containers exist.
func New(ctx context.Context, c *cfg.Config) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.S3Region),
	}
	if c.S3AccessKey != "" && c.S3SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.S3AccessKey, c.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if c.S3Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(c.S3Endpoint)
			o.UsePathStyle = true // Required for MinIO and some S3-compatible services
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	publicURL := strings.TrimSuffix(c.S3Endpoint, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://s3.%s.amazonaws.com", c.S3Region)
	}

	sc := &Client{
		s3:          client,
		imageBucket: c.ImageBucket,
		audioBucket: c.AudioBucket,
		publicURL:   publicURL,
	}

	for _, bucket := range []string{sc.imageBucket, sc.audioBucket} {
		if err := sc.ensureBucket(ctx, bucket); err != nil {
			return nil, err
		}
	}

	return sc, nil
}

// ensureBucket checks if the bucket exists, creates it if not
func (c *Client) ensureBucket(ctx context.Context, bucket string) error {
	_, err := c.s3.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err == nil {
		return nil
	}

	_, err = c.s3.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return fmt.Errorf("bucket %q does not exist and could not be created: %w", bucket, err)
	}

	return nil
}

// UploadImage stores an image object and returns its public URL.
func (c *Client) UploadImage(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	return c.upload(ctx, c.imageBucket, key, body, contentType)
}

// UploadAudio stores an audio object and returns its public URL.
func (c *Client) UploadAudio(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	return c.upload(ctx, c.audioBucket, key, body, contentType)
}

// upload writes the object non-overwriting: If-None-Match makes the put
// fail if an object with that exact key already exists. Object keys are
// namespaced by a per-record UUID, so a collision is a real error worth
// surfacing, not something to ignore.
func (c *Client) upload(ctx context.Context, bucket, key string, body io.Reader, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	input := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        body,
		IfNoneMatch: aws.String("*"),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.s3.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s/%s: %w", bucket, key, err)
	}

	return c.objectURL(bucket, key), nil
}

func (c *Client) objectURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", c.publicURL, bucket, key)
}
