package s3kit

import (
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/rs/zerolog"

	"github.com/halcyonlabs/s3kit/errors"
	"github.com/halcyonlabs/s3kit/internal/validation"
)

// DefaultRegion is used when neither Config.Region nor the ambient AWS
// configuration provides one.
const DefaultRegion = "us-east-1"

// DefaultConcurrency bounds the worker pool for folder uploads when
// Config.Concurrency is zero.
const DefaultConcurrency = 5

// Config describes a client bound to a single bucket. The zero values of all
// optional fields are usable; only Bucket is required. The struct is read
// once by New and never mutated afterwards.
type Config struct {
	// Bucket is the S3 bucket all client operations target. Required.
	Bucket string

	// Region is the AWS region. When empty the ambient configuration chain
	// decides, falling back to DefaultRegion.
	Region string

	// Endpoint overrides the S3 endpoint, e.g. for LocalStack or MinIO.
	Endpoint string

	// ForcePathStyle switches to path-style addressing, required by most
	// S3-compatible endpoints.
	ForcePathStyle bool

	// AccessKey and SecretKey select static credentials when both are set.
	// Otherwise the SDK's default credential chain applies. SessionToken is
	// optional and only read alongside static credentials.
	AccessKey    string
	SecretKey    string
	SessionToken string

	// MaxRetries caps SDK retry attempts. Zero keeps the SDK default.
	MaxRetries int

	// Timeout bounds each client operation. Zero means no deadline beyond
	// the caller's context.
	Timeout time.Duration

	// HTTPClient overrides the SDK's HTTP client.
	HTTPClient *http.Client

	// Concurrency bounds parallel file uploads in UploadFolder. Zero means
	// DefaultConcurrency.
	Concurrency int

	// Logger receives debug-level operation logs. Nil disables logging.
	Logger *zerolog.Logger

	// AWSConfig, when set, is used as-is and the Region, AccessKey,
	// SecretKey, SessionToken, MaxRetries and HTTPClient fields are ignored.
	AWSConfig *aws.Config
}

// Validate checks the configuration before any AWS call is made. It fails on
// a missing or non-DNS-compliant bucket name, negative limits, and a static
// credential pair with only one half set.
func (c *Config) Validate() error {
	if err := validation.BucketName(c.Bucket); err != nil {
		return err
	}
	if c.MaxRetries < 0 {
		return errors.NewError("validateConfig", errors.ErrInvalidConfig).
			WithMessage("MaxRetries cannot be negative")
	}
	if c.Timeout < 0 {
		return errors.NewError("validateConfig", errors.ErrInvalidConfig).
			WithMessage("Timeout cannot be negative")
	}
	if c.Concurrency < 0 {
		return errors.NewError("validateConfig", errors.ErrInvalidConfig).
			WithMessage("Concurrency cannot be negative")
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return errors.NewError("validateConfig", errors.ErrInvalidConfig).
			WithMessage("AccessKey and SecretKey must be set together")
	}
	return nil
}

func (c *Config) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return DefaultConcurrency
}

func (c *Config) logger() zerolog.Logger {
	if c.Logger != nil {
		return *c.Logger
	}
	return zerolog.Nop()
}
