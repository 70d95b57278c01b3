// Package delete implements single and batched object deletion.
package delete

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awstypes "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/halcyonlabs/s3kit/errors"
	"github.com/halcyonlabs/s3kit/internal/s3api"
	"github.com/halcyonlabs/s3kit/s3types"
)

// maxBatchSize is the S3 DeleteObjects per-request limit.
const maxBatchSize = 1000

// Deleter executes delete operations against the backend.
type Deleter struct {
	s3Client s3api.S3API
}

// New creates a new Deleter instance.
func New(s3Client s3api.S3API) *Deleter {
	return &Deleter{s3Client: s3Client}
}

// Delete removes a single object. S3 treats deleting a missing key as
// success, so no existence check is made.
func (d *Deleter) Delete(ctx context.Context, bucket, key string) error {
	_, err := d.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.NewError("delete", errors.Classify(err)).WithBucket(bucket).WithKey(key)
	}
	return nil
}

// DeleteMany removes the given keys in batches of up to 1000 per request.
// Per-key failures are collected in the result; a failed request marks every
// key in that batch as failed and the remaining batches still run.
func (d *Deleter) DeleteMany(
	ctx context.Context,
	bucket string,
	keys []string,
	startTime time.Time,
) (*s3types.DeleteResult, error) {
	result := &s3types.DeleteResult{}

	for start := 0; start < len(keys); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(keys) {
			end = len(keys)
		}
		d.deleteBatch(ctx, bucket, keys[start:end], result)
	}

	result.Duration = time.Since(startTime)
	return result, nil
}

func (d *Deleter) deleteBatch(ctx context.Context, bucket string, keys []string, result *s3types.DeleteResult) {
	objects := make([]awstypes.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, awstypes.ObjectIdentifier{Key: aws.String(key)})
	}

	output, err := d.s3Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &awstypes.Delete{
			Objects: objects,
			Quiet:   aws.Bool(false),
		},
	})
	if err != nil {
		for _, key := range keys {
			result.Errors = append(result.Errors, s3types.DeleteError{
				Key:     key,
				Message: err.Error(),
			})
		}
		return
	}

	for _, deleted := range output.Deleted {
		result.Deleted = append(result.Deleted, aws.ToString(deleted.Key))
	}
	for _, derr := range output.Errors {
		result.Errors = append(result.Errors, s3types.DeleteError{
			Key:     aws.ToString(derr.Key),
			Code:    aws.ToString(derr.Code),
			Message: aws.ToString(derr.Message),
		})
	}
}
