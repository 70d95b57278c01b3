package s3kit

import (
	"bytes"
	"context"
	"io"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/halcyonlabs/s3kit/errors"
	"github.com/halcyonlabs/s3kit/internal/validation"
	"github.com/halcyonlabs/s3kit/s3types"
)

// Upload streams size bytes from src to key in the configured bucket. size
// must be the exact content length; it is declared to S3 up front and the
// source is never probed. If src implements io.Closer it is closed exactly
// once, whatever the outcome.
//
// Progress callbacks registered via WithProgress observe every chunk before
// it reaches the transport, with cumulative bytes and the declared total.
func (c *Client) Upload(
	ctx context.Context,
	key string,
	src io.Reader,
	size int64,
	opts ...s3types.UploadOption,
) (*s3types.UploadResult, error) {
	startTime := time.Now()
	cfg := resolveUploadOptions(opts)

	if err := c.validateUpload(key, cfg); err != nil {
		closeIfCloser(src)
		return nil, err
	}
	if size < 0 {
		closeIfCloser(src)
		return nil, errors.NewError("upload", errors.ErrInvalidInput).
			WithBucket(c.cfg.Bucket).
			WithKey(key).
			WithMessage("size cannot be negative")
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	result, err := c.uploader.PutStream(ctx, c.cfg.Bucket, key, src, size, cfg, startTime)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("op", "upload").
		Str("key", key).
		Int64("size", size).
		Dur("duration", result.Duration).
		Msg("object uploaded")
	return result, nil
}

// Put uploads an in-memory byte slice to key.
func (c *Client) Put(
	ctx context.Context,
	key string,
	data []byte,
	opts ...s3types.UploadOption,
) (*s3types.UploadResult, error) {
	return c.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), opts...)
}

// UploadFile uploads a local file to key. Unless WithContentType overrides
// it, the content type is sniffed from the file contents with an extension
// based fallback.
func (c *Client) UploadFile(
	ctx context.Context,
	key, path string,
	opts ...s3types.UploadOption,
) (*s3types.UploadResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.NewError("uploadFile", err).WithBucket(c.cfg.Bucket).WithKey(key)
	}
	if info.IsDir() {
		return nil, errors.NewError("uploadFile", errors.ErrInvalidInput).
			WithBucket(c.cfg.Bucket).
			WithKey(key).
			WithMessage(path + " is a directory")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewError("uploadFile", err).WithBucket(c.cfg.Bucket).WithKey(key)
	}

	cfg := resolveUploadOptions(opts)
	if cfg.ContentType == "" {
		opts = append(opts, WithContentType(detectContentType(path)))
	}

	return c.Upload(ctx, key, file, info.Size(), opts...)
}

// UploadWithProgress uploads like Upload but reports progress on the
// returned channel instead of through a callback. The sequence is zero or
// more UploadInProgress values with non-decreasing BytesWritten, then exactly
// one terminal UploadCompleted or UploadFailed, then the channel closes.
// Cancelling ctx stops emission, possibly without a terminal value; the
// source is still closed. The channel must be drained to completion or the
// context cancelled, otherwise the upload goroutine blocks.
func (c *Client) UploadWithProgress(
	ctx context.Context,
	key string,
	src io.Reader,
	size int64,
	opts ...s3types.UploadOption,
) <-chan s3types.UploadProgress {
	updates := make(chan s3types.UploadProgress, 16)
	startTime := time.Now()
	cfg := resolveUploadOptions(opts)
	chained := cfg.Progress

	go func() {
		defer close(updates)

		emit := func(p s3types.UploadProgress) {
			select {
			case updates <- p:
			case <-ctx.Done():
			}
		}

		if err := c.validateUpload(key, cfg); err != nil {
			closeIfCloser(src)
			emit(s3types.UploadFailed{Cause: err})
			return
		}

		cfg.Progress = func(bytesWritten, totalBytes int64) {
			if chained != nil {
				chained(bytesWritten, totalBytes)
			}
			emit(s3types.UploadInProgress{BytesWritten: bytesWritten, TotalBytes: totalBytes})
		}

		opCtx, cancel := c.opContext(ctx)
		defer cancel()

		result, err := c.uploader.PutStream(opCtx, c.cfg.Bucket, key, src, size, cfg, startTime)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			emit(s3types.UploadFailed{Cause: err})
			return
		}
		emit(s3types.UploadCompleted{ETag: result.ETag, VersionID: result.VersionID})
	}()

	return updates
}

func (c *Client) validateUpload(key string, cfg *s3types.UploadConfig) error {
	if err := validation.ObjectKey(key); err != nil {
		return err
	}
	if err := validation.Metadata(cfg.Metadata); err != nil {
		return err
	}
	return validation.ACL(cfg.ACL)
}

// detectContentType sniffs the file contents, falling back to the extension
// when sniffing is inconclusive.
func detectContentType(path string) string {
	const fallback = "application/octet-stream"

	if mtype, err := mimetype.DetectFile(path); err == nil && mtype.String() != fallback {
		return mtype.String()
	}
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		return byExt
	}
	return fallback
}

func closeIfCloser(r io.Reader) {
	if c, ok := r.(io.Closer); ok {
		_ = c.Close()
	}
}
