package s3kit

import (
	"context"
	"time"

	"github.com/halcyonlabs/s3kit/errors"
	"github.com/halcyonlabs/s3kit/internal/validation"
	"github.com/halcyonlabs/s3kit/s3types"
)

// Delete removes the object at key. Deleting a missing key succeeds; S3
// delete is idempotent.
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := validation.ObjectKey(key); err != nil {
		return err
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	if err := c.deleter.Delete(ctx, c.cfg.Bucket, key); err != nil {
		return err
	}

	c.logger.Debug().Str("op", "delete").Str("key", key).Msg("object deleted")
	return nil
}

// DeleteMany removes the given keys in batches. Per-key failures are
// reported in the result rather than aborting the batch.
func (c *Client) DeleteMany(ctx context.Context, keys []string) (*s3types.DeleteResult, error) {
	startTime := time.Now()
	for _, key := range keys {
		if err := validation.ObjectKey(key); err != nil {
			return nil, err
		}
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	result, err := c.deleter.DeleteMany(ctx, c.cfg.Bucket, keys, startTime)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("op", "deleteMany").
		Int("deleted", len(result.Deleted)).
		Int("failed", len(result.Errors)).
		Msg("batch delete finished")
	return result, nil
}

// Rename moves the object at srcKey to dstKey via a server-side copy
// followed by a delete of the source. The two steps are not atomic: a
// failure between them leaves both objects in place. Renaming a key to
// itself is rejected.
func (c *Client) Rename(ctx context.Context, srcKey, dstKey string) error {
	if err := validation.ObjectKey(srcKey); err != nil {
		return err
	}
	if err := validation.ObjectKey(dstKey); err != nil {
		return err
	}
	if srcKey == dstKey {
		return errors.NewError("rename", errors.ErrInvalidInput).
			WithBucket(c.cfg.Bucket).
			WithKey(srcKey).
			WithMessage("source and destination keys are identical")
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	if err := c.objects.Rename(ctx, c.cfg.Bucket, srcKey, dstKey); err != nil {
		return err
	}

	c.logger.Debug().Str("op", "rename").Str("key", srcKey).Str("dst", dstKey).Msg("object renamed")
	return nil
}

// Exists reports whether the object at key exists.
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	if err := validation.ObjectKey(key); err != nil {
		return false, err
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	return c.objects.Exists(ctx, c.cfg.Bucket, key)
}

// GetMetadata retrieves the object's metadata without its body.
func (c *Client) GetMetadata(ctx context.Context, key string) (*s3types.ObjectMetadata, error) {
	if err := validation.ObjectKey(key); err != nil {
		return nil, err
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	return c.objects.Metadata(ctx, c.cfg.Bucket, key)
}

// List returns one page of objects under prefix. Pagination is driven by
// WithContinuationToken using the token from the previous page.
func (c *Client) List(ctx context.Context, prefix string, opts ...s3types.ListOption) (*s3types.ListResult, error) {
	startTime := time.Now()

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	return c.lister.Page(ctx, c.cfg.Bucket, prefix, resolveListOptions(opts), startTime)
}

// ListAll streams every object under prefix, paginating internally. The
// stream ends early if ctx is cancelled; a listing failure is delivered as
// the final element's Err.
func (c *Client) ListAll(ctx context.Context, prefix string) <-chan s3types.ObjectResult {
	return c.lister.All(ctx, c.cfg.Bucket, prefix)
}
