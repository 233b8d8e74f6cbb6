package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-pathtracer/pkg/core"
)

// UploadTimeout bounds a single image upload
const UploadTimeout = 30 * time.Second

// ErrPublishingDisabled is returned when publishing is requested without a bucket
var ErrPublishingDisabled = errors.New("publishing disabled: no S3 bucket configured")

// S3Config holds the connection details for an S3-compatible object store
type S3Config struct {
	Endpoint  string // Custom endpoint for S3-compatible stores; empty uses AWS
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Prefix    string // Key prefix for uploaded renders
}

// Enabled reports whether a bucket is configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Publisher uploads rendered images to an S3 bucket
type Publisher struct {
	client s3iface.S3API
	bucket string
	prefix string
	logger core.Logger
}

// NewS3Publisher creates a publisher using static credentials and path-style addressing
func NewS3Publisher(cfg S3Config, logger core.Logger) (*Publisher, error) {
	if !cfg.Enabled() {
		return nil, ErrPublishingDisabled
	}

	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return NewPublisherWithClient(s3.New(sess), cfg, logger), nil
}

// NewPublisherWithClient creates a publisher around an existing S3 client
func NewPublisherWithClient(client s3iface.S3API, cfg S3Config, logger core.Logger) *Publisher {
	return &Publisher{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		logger: logger,
	}
}

// Publish uploads img as a PNG under the configured prefix and returns the object key
func (p *Publisher) Publish(ctx context.Context, key string, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return "", err
	}

	objectKey := path.Join(p.prefix, key)
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(buf.Len())
	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectKey, err)
	}

	if p.logger != nil {
		p.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", objectKey, p.bucket, size)
	}
	return objectKey, nil
}
