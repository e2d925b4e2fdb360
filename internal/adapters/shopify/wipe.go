package shopify

import (
	"context"
	"errors"
)

type WipeService interface {
	WipeImported(ctx context.Context) (int, error)
}

// WipeImported deletes every product carrying the pipeline's provenance tag.
// Per-record failures abort the wipe; a partial wipe is reported via the
// count of deletions that did go through.
func (c *Client) WipeImported(ctx context.Context) (int, error) {
	if c == nil {
		return 0, errors.New("shopify client is nil")
	}

	existing, err := c.SnapshotImported(ctx)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, gid := range existing {
		if err := c.DeleteProduct(ctx, gid); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}
