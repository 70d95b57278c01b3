// Package upload drives single put-object operations with per-chunk progress
// reporting. Multipart orchestration is deliberately left to the AWS SDK and
// is not reimplemented here.
package upload

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awstypes "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/halcyonlabs/s3kit/errors"
	"github.com/halcyonlabs/s3kit/internal/progress"
	"github.com/halcyonlabs/s3kit/internal/s3api"
	"github.com/halcyonlabs/s3kit/s3types"
)

// Uploader executes put-object operations against the backend.
type Uploader struct {
	s3Client s3api.S3API
}

// New creates a new Uploader instance.
func New(s3Client s3api.S3API) *Uploader {
	return &Uploader{s3Client: s3Client}
}

// PutStream uploads size bytes from src to bucket/key as one PutObject call.
// The source is wrapped in the progress decorator so cfg.Progress observes
// every chunk before it reaches the transport. size is the caller-declared
// content length; the source is never probed to discover it.
//
// If src implements io.Closer it is closed exactly once on every exit path,
// including synchronous failures and context cancellation. The SDK call
// honors ctx, so cancelling the caller aborts the outstanding request.
func (u *Uploader) PutStream(
	ctx context.Context,
	bucket, key string,
	src io.Reader,
	size int64,
	cfg *s3types.UploadConfig,
	startTime time.Time,
) (*s3types.UploadResult, error) {
	var closeOnce sync.Once
	closeSrc := func() {
		closeOnce.Do(func() {
			if c, ok := src.(io.Closer); ok {
				_ = c.Close()
			}
		})
	}
	defer closeSrc()

	counter := progress.NewCounter(size)
	body := progress.NewReader(src, counter, progress.Func(cfg.Progress))

	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	}
	applyUploadConfig(input, cfg)

	output, err := u.s3Client.PutObject(ctx, input)
	if err != nil {
		return nil, errors.NewError("putStream", errors.Classify(err)).WithBucket(bucket).WithKey(key)
	}

	return &s3types.UploadResult{
		Key:       key,
		Size:      size,
		ETag:      aws.ToString(output.ETag),
		VersionID: aws.ToString(output.VersionId),
		Duration:  time.Since(startTime),
	}, nil
}

func applyUploadConfig(input *s3.PutObjectInput, cfg *s3types.UploadConfig) {
	if cfg.ContentType != "" {
		input.ContentType = aws.String(cfg.ContentType)
	}
	if len(cfg.Metadata) > 0 {
		input.Metadata = cfg.Metadata
	}
	if cfg.StorageClass != "" {
		input.StorageClass = awstypes.StorageClass(cfg.StorageClass)
	}
	if cfg.ACL != "" {
		input.ACL = awstypes.ObjectCannedACL(cfg.ACL)
	}
}
