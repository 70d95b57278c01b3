// Package object implements single-object management: server-side rename,
// existence checks, metadata retrieval, and ACL updates.
package object

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

// Objects executes single-object operations against the backend.
type Objects struct {
	s3Client s3api.S3API
}

// New creates a new Objects instance.
func New(s3Client s3api.S3API) *Objects {
	return &Objects{s3Client: s3Client}
}

// Rename moves an object to a new key using a server-side copy followed by a
// delete of the source. The copy happens first so a failure leaves the source
// intact. S3 has no native rename; this is not atomic.
func (o *Objects) Rename(ctx context.Context, bucket, srcKey, dstKey string) error {
	_, err := o.s3Client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(bucket),
		Key:        aws.String(dstKey),
		CopySource: aws.String(bucket + "/" + srcKey),
	})
	if err != nil {
		return errors.NewError("rename", errors.Classify(err)).WithBucket(bucket).WithKey(srcKey)
	}

	_, err = o.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(srcKey),
	})
	if err != nil {
		return errors.NewError("rename", errors.Classify(err)).
			WithBucket(bucket).
			WithKey(srcKey).
			WithMessage("copied to " + dstKey + " but failed to delete source")
	}

	return nil
}

// Exists reports whether an object exists. A not-found response is not an
// error; any other failure is.
func (o *Objects) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := o.s3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		classified := errors.Classify(err)
		if errors.IsObjectNotFound(classified) {
			return false, nil
		}
		return false, errors.NewError("exists", classified).WithBucket(bucket).WithKey(key)
	}
	return true, nil
}

// Metadata retrieves object metadata without downloading the body.
func (o *Objects) Metadata(ctx context.Context, bucket, key string) (*s3types.ObjectMetadata, error) {
	output, err := o.s3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.NewError("getMetadata", errors.Classify(err)).WithBucket(bucket).WithKey(key)
	}

	return &s3types.ObjectMetadata{
		ContentType:   aws.ToString(output.ContentType),
		ContentLength: aws.ToInt64(output.ContentLength),
		LastModified:  aws.ToTime(output.LastModified),
		ETag:          aws.ToString(output.ETag),
		Metadata:      output.Metadata,
	}, nil
}

// SetACL applies a canned ACL to an existing object.
func (o *Objects) SetACL(ctx context.Context, bucket, key string, acl s3types.ObjectACL) error {
	_, err := o.s3Client.PutObjectAcl(ctx, &s3.PutObjectAclInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		ACL:    awstypes.ObjectCannedACL(acl),
	})
	if err != nil {
		return errors.NewError("setACL", errors.Classify(err)).WithBucket(bucket).WithKey(key)
	}
	return nil
}

// Touch writes a zero-byte object at key. Used for folder placeholder
// markers of the form "prefix/".
func (o *Objects) Touch(ctx context.Context, bucket, key string, startTime time.Time) (*s3types.UploadResult, error) {
	output, err := o.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		ContentLength: aws.Int64(0),
	})
	if err != nil {
		return nil, errors.NewError("createFolder", errors.Classify(err)).WithBucket(bucket).WithKey(key)
	}

	return &s3types.UploadResult{
		Key:      key,
		ETag:     aws.ToString(output.ETag),
		Duration: time.Since(startTime),
	}, nil
}
