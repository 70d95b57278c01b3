package s3kit

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/halcyonlabs/s3kit/errors"
	"github.com/halcyonlabs/s3kit/internal/operations/delete"
	"github.com/halcyonlabs/s3kit/internal/operations/download"
	"github.com/halcyonlabs/s3kit/internal/operations/folder"
	"github.com/halcyonlabs/s3kit/internal/operations/list"
	"github.com/halcyonlabs/s3kit/internal/operations/object"
	"github.com/halcyonlabs/s3kit/internal/operations/upload"
	"github.com/halcyonlabs/s3kit/internal/s3api"
)

// Client is an S3 facade bound to a single bucket. It is safe for concurrent
// use. Construct it with New or, for tests, NewWithClient.
type Client struct {
	cfg    Config
	logger zerolog.Logger

	uploader   *upload.Uploader
	downloader *download.Downloader
	deleter    *delete.Deleter
	lister     *list.Lister
	objects    *object.Objects
	folders    *folder.Folder
}

// New validates cfg and builds a client backed by a real S3 SDK client.
// Configuration errors surface here, before any operation runs; the factory
// is the only place that can fail on bad input, so operations never re-check
// the bucket.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	awsCfg, err := resolveAWSConfig(ctx, &cfg)
	if err != nil {
		return nil, errors.NewError("new", err).WithBucket(cfg.Bucket)
	}

	sdkClient := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	return newClient(sdkClient, cfg), nil
}

// NewWithClient builds a client on top of an existing S3 API implementation.
// Intended for tests injecting mocks and for callers who manage their own SDK
// client.
func NewWithClient(s3Client s3api.S3API, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(s3Client, cfg), nil
}

func newClient(s3Client s3api.S3API, cfg Config) *Client {
	return &Client{
		cfg:        cfg,
		logger:     cfg.logger(),
		uploader:   upload.New(s3Client),
		downloader: download.New(s3Client),
		deleter:    delete.New(s3Client),
		lister:     list.New(s3Client),
		objects:    object.New(s3Client),
		folders:    folder.New(s3Client),
	}
}

// Bucket returns the bucket this client operates on.
func (c *Client) Bucket() string {
	return c.cfg.Bucket
}

// opContext applies the configured per-operation timeout, if any.
func (c *Client) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, c.cfg.Timeout)
	}
	return ctx, func() {}
}

func resolveAWSConfig(ctx context.Context, cfg *Config) (aws.Config, error) {
	if cfg.AWSConfig != nil {
		return *cfg.AWSConfig, nil
	}

	var optFns []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		optFns = append(optFns, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		optFns = append(optFns, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, cfg.SessionToken),
		))
	}
	if cfg.MaxRetries > 0 {
		optFns = append(optFns, awsconfig.WithRetryMaxAttempts(cfg.MaxRetries))
	}
	if cfg.HTTPClient != nil {
		optFns = append(optFns, awsconfig.WithHTTPClient(cfg.HTTPClient))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return aws.Config{}, err
	}
	if awsCfg.Region == "" {
		awsCfg.Region = DefaultRegion
	}
	return awsCfg, nil
}
