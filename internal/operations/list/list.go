// Package list implements paged and streaming object listing.
package list

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

// maxPageSize is the S3 ListObjectsV2 per-request limit.
const maxPageSize = 1000

// Lister executes list operations against the backend.
type Lister struct {
	s3Client s3api.S3API
}

// New creates a new Lister instance.
func New(s3Client s3api.S3API) *Lister {
	return &Lister{s3Client: s3Client}
}

// Page lists a single page of objects under prefix.
func (l *Lister) Page(
	ctx context.Context,
	bucket, prefix string,
	opts *s3types.ListOptionConfig,
	startTime time.Time,
) (*s3types.ListResult, error) {
	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(pageSize(opts.MaxKeys)),
	}
	if opts.Delimiter != "" {
		input.Delimiter = aws.String(opts.Delimiter)
	}
	if opts.ContinuationToken != "" {
		input.ContinuationToken = aws.String(opts.ContinuationToken)
	} else if opts.StartAfter != "" {
		input.StartAfter = aws.String(opts.StartAfter)
	}

	output, err := l.s3Client.ListObjectsV2(ctx, input)
	if err != nil {
		return nil, errors.NewError("list", errors.Classify(err)).WithBucket(bucket).WithKey(prefix)
	}

	result := convertPage(output)
	result.Duration = time.Since(startTime)
	return result, nil
}

// All streams every object under prefix, paginating internally. The channel
// is closed when the listing completes, fails, or ctx is cancelled; a failure
// is delivered as the final element's Err.
func (l *Lister) All(ctx context.Context, bucket, prefix string) <-chan s3types.ObjectResult {
	results := make(chan s3types.ObjectResult, 100)

	go func() {
		defer close(results)

		input := &s3.ListObjectsV2Input{
			Bucket:  aws.String(bucket),
			Prefix:  aws.String(prefix),
			MaxKeys: aws.Int32(maxPageSize),
		}

		for {
			output, err := l.s3Client.ListObjectsV2(ctx, input)
			if err != nil {
				select {
				case results <- s3types.ObjectResult{Err: errors.NewError("listAll", errors.Classify(err)).WithBucket(bucket).WithKey(prefix)}:
				case <-ctx.Done():
				}
				return
			}

			for _, obj := range output.Contents {
				select {
				case results <- s3types.ObjectResult{Object: convertObject(obj)}:
				case <-ctx.Done():
					return
				}
			}

			if !aws.ToBool(output.IsTruncated) {
				return
			}
			input.ContinuationToken = output.NextContinuationToken
		}
	}()

	return results
}

func pageSize(maxKeys int32) int32 {
	if maxKeys <= 0 || maxKeys > maxPageSize {
		return maxPageSize
	}
	return maxKeys
}

func convertPage(output *s3.ListObjectsV2Output) *s3types.ListResult {
	result := &s3types.ListResult{
		Objects:               make([]s3types.Object, 0, len(output.Contents)),
		IsTruncated:           aws.ToBool(output.IsTruncated),
		NextContinuationToken: aws.ToString(output.NextContinuationToken),
	}
	for _, obj := range output.Contents {
		result.Objects = append(result.Objects, convertObject(obj))
	}
	for _, prefix := range output.CommonPrefixes {
		result.CommonPrefixes = append(result.CommonPrefixes, aws.ToString(prefix.Prefix))
	}
	return result
}

func convertObject(obj awstypes.Object) s3types.Object {
	return s3types.Object{
		Key:          aws.ToString(obj.Key),
		Size:         aws.ToInt64(obj.Size),
		LastModified: aws.ToTime(obj.LastModified),
		ETag:         aws.ToString(obj.ETag),
		StorageClass: string(obj.StorageClass),
	}
}
