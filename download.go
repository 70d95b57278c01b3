package s3kit

import (
	"context"
	"io"
	"time"

	"github.com/halcyonlabs/s3kit/internal/validation"
	"github.com/halcyonlabs/s3kit/s3types"
)

// Download streams the object at key into w. Progress callbacks registered
// via WithDownloadProgress observe each chunk with the response content
// length as the total.
func (c *Client) Download(
	ctx context.Context,
	key string,
	w io.Writer,
	opts ...s3types.DownloadOption,
) (*s3types.DownloadResult, error) {
	startTime := time.Now()
	if err := validation.ObjectKey(key); err != nil {
		return nil, err
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	cfg := resolveDownloadOptions(opts)
	result, err := c.downloader.Download(ctx, c.cfg.Bucket, key, w, cfg.Progress, startTime)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("op", "download").
		Str("key", key).
		Int64("size", result.Size).
		Dur("duration", result.Duration).
		Msg("object downloaded")
	return result, nil
}

// Get downloads the object at key into memory. Only suitable for objects
// that fit in memory; use Download for large objects.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	startTime := time.Now()
	if err := validation.ObjectKey(key); err != nil {
		return nil, err
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	return c.downloader.Get(ctx, c.cfg.Bucket, key, startTime)
}
