package s3kit

import (
	"context"
	"strings"
	"time"

	"github.com/halcyonlabs/s3kit/internal/validation"
	"github.com/halcyonlabs/s3kit/s3types"
)

// CreateFolder writes a zero-byte marker object at "prefix/". S3 has no real
// directories; the marker makes the prefix visible to listing UIs.
func (c *Client) CreateFolder(ctx context.Context, prefix string) (*s3types.UploadResult, error) {
	startTime := time.Now()
	marker := normalizePrefix(prefix)
	if err := validation.ObjectKey(marker); err != nil {
		return nil, err
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	result, err := c.objects.Touch(ctx, c.cfg.Bucket, marker, startTime)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Str("op", "createFolder").Str("prefix", marker).Msg("folder marker created")
	return result, nil
}

// DeleteFolder removes every object under prefix, including the folder
// marker if present. Per-object failures are collected in the result; the
// operation keeps going past them.
func (c *Client) DeleteFolder(ctx context.Context, prefix string) (*s3types.FolderResult, error) {
	startTime := time.Now()
	normalized := normalizePrefix(prefix)
	if err := validation.ObjectKey(normalized); err != nil {
		return nil, err
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	result, err := c.folders.DeletePrefix(ctx, c.cfg.Bucket, normalized, startTime)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("op", "deleteFolder").
		Str("prefix", normalized).
		Int("deleted", len(result.Keys)).
		Int("failed", len(result.Errors)).
		Msg("folder deleted")
	return result, nil
}

// ListFolder lists one level of a folder: objects directly under prefix plus
// the sub-folder prefixes, using "/" as the delimiter unless overridden.
func (c *Client) ListFolder(ctx context.Context, prefix string, opts ...s3types.ListOption) (*s3types.ListResult, error) {
	startTime := time.Now()
	normalized := normalizePrefix(prefix)

	listCfg := resolveListOptions(opts)
	if listCfg.Delimiter == "" {
		listCfg.Delimiter = "/"
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	return c.lister.Page(ctx, c.cfg.Bucket, normalized, listCfg, startTime)
}

// UploadFolder uploads every regular file under localDir to keys rooted at
// prefix, preserving the relative layout. Files upload concurrently on a
// worker pool sized by WithConcurrency or the client's Concurrency setting.
// WithFolderProgress observes cumulative bytes against the total discovered
// up front; per-file failures are collected in the result.
func (c *Client) UploadFolder(
	ctx context.Context,
	localDir, prefix string,
	opts ...s3types.FolderOption,
) (*s3types.FolderResult, error) {
	startTime := time.Now()
	folderCfg := resolveFolderOptions(opts)

	concurrency := folderCfg.Concurrency
	if concurrency <= 0 {
		concurrency = c.cfg.concurrency()
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	result, err := c.folders.UploadDir(ctx, c.cfg.Bucket, localDir, prefix, concurrency, folderCfg.Progress, startTime)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("op", "uploadFolder").
		Str("prefix", prefix).
		Int("uploaded", len(result.Keys)).
		Int("failed", len(result.Errors)).
		Dur("duration", result.Duration).
		Msg("folder uploaded")
	return result, nil
}

// normalizePrefix ensures a folder prefix ends with exactly one "/".
func normalizePrefix(prefix string) string {
	return strings.TrimSuffix(prefix, "/") + "/"
}
