package s3kit

import (
	"context"

	"github.com/halcyonlabs/s3kit/internal/validation"
	"github.com/halcyonlabs/s3kit/s3types"
)

// SetACL applies a canned ACL to an existing object. To set an ACL at upload
// time use the WithACL upload option instead.
func (c *Client) SetACL(ctx context.Context, key string, acl s3types.ObjectACL) error {
	if err := validation.ObjectKey(key); err != nil {
		return err
	}
	if err := validation.ACL(acl); err != nil {
		return err
	}

	ctx, cancel := c.opContext(ctx)
	defer cancel()

	if err := c.objects.SetACL(ctx, c.cfg.Bucket, key, acl); err != nil {
		return err
	}

	c.logger.Debug().Str("op", "setACL").Str("key", key).Str("acl", string(acl)).Msg("object ACL updated")
	return nil
}
