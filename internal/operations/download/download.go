// Package download handles S3 object download operations.
package download

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/halcyonlabs/s3kit/errors"
	"github.com/halcyonlabs/s3kit/internal/pool"
	"github.com/halcyonlabs/s3kit/internal/progress"
	"github.com/halcyonlabs/s3kit/internal/s3api"
	"github.com/halcyonlabs/s3kit/s3types"
)

// Downloader handles S3 download operations with progress reporting.
type Downloader struct {
	s3Client s3api.S3API
}

// New creates a new Downloader instance.
func New(s3Client s3api.S3API) *Downloader {
	return &Downloader{s3Client: s3Client}
}

// Download streams an object from bucket/key into writer. The response body
// is always closed; fn, when non-nil, observes each chunk with the response
// content length as the total.
func (d *Downloader) Download(
	ctx context.Context,
	bucket, key string,
	writer io.Writer,
	fn s3types.ProgressFunc,
	startTime time.Time,
) (*s3types.DownloadResult, error) {
	output, err := d.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.NewError("download", errors.Classify(err)).WithBucket(bucket).WithKey(key)
	}
	defer output.Body.Close()

	size := aws.ToInt64(output.ContentLength)
	counter := progress.NewCounter(size)
	body := progress.NewReader(output.Body, counter, progress.Func(fn))

	written, err := pool.Copy(writer, body)
	if err != nil {
		return nil, errors.NewError("download", err).WithBucket(bucket).WithKey(key)
	}
	if size == 0 {
		size = written
	}

	return &s3types.DownloadResult{
		Key:      key,
		Size:     size,
		ETag:     aws.ToString(output.ETag),
		Duration: time.Since(startTime),
	}, nil
}

// Get downloads an entire object and returns it as a byte slice. Only
// suitable for objects that fit in memory.
func (d *Downloader) Get(
	ctx context.Context,
	bucket, key string,
	startTime time.Time,
) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.Download(ctx, bucket, key, &buf, nil, startTime); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
