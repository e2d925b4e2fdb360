package usecases

import (
	"context"
	"fmt"

	"shopify-importer/internal/adapters/shopify"
	"shopify-importer/internal/adapters/supplier"
	"shopify-importer/internal/domain/model"
	"shopify-importer/internal/logging"
)

type SyncCatalogService interface {
	Run(ctx context.Context, dryRun bool) error
}

type Client struct {
	supplierClient supplier.FeedService
	shopifyClient  shopify.NewClientService
	normalizer     *supplier.Normalizer
	logger         logging.LoggerService
}

func NewSyncCatalog(supplierClient supplier.FeedService, shopifyClient shopify.NewClientService, normalizer *supplier.Normalizer, logger logging.LoggerService) SyncCatalogService {
	return &Client{
		supplierClient: supplierClient,
		shopifyClient:  shopifyClient,
		normalizer:     normalizer,
		logger:         logger,
	}
}

// Run executes one full sync: fetch feed, snapshot the imported set,
// reconcile, push the bulk upsert batch, publish the refreshed set and
// delete records that left the feed. Everything is sequential; fatal steps
// abort the run, per-record publish/delete failures only log.
func (c *Client) Run(ctx context.Context, dryRun bool) error {
	c.logger.Log("Catalog sync started")

	feed, err := c.supplierClient.FetchCatalog(ctx)
	if err != nil {
		c.logger.LogError("Error fetch supplier catalog", err)
		return err
	}
	c.logger.Log(fmt.Sprintf("Catalog fetched products=%d", len(feed)))

	if dryRun {
		c.logger.LogSuccess(fmt.Sprintf("Dry run completed fetched=%d", len(feed)))
		return nil
	}

	existing, err := c.shopifyClient.SnapshotImported(ctx)
	if err != nil {
		c.logger.LogError("Error snapshot imported products", err)
		return err
	}
	c.logger.Log(fmt.Sprintf("Imported snapshot size=%d", len(existing)))

	normalized := make([]model.CanonicalProduct, 0, len(feed))
	skipped := 0
	for _, raw := range feed {
		product, err := c.normalizer.Normalize(raw)
		if err != nil {
			skipped++
			c.logger.LogWarning(fmt.Sprintf("Skipping record: %v", err))
			continue
		}
		normalized = append(normalized, product)
	}

	result := Reconcile(normalized, existing)
	duplicates := len(normalized) - len(result.Upserts)
	updates := 0
	for _, p := range result.Upserts {
		if p.ShopifyGID != "" {
			updates++
		}
	}
	creates := len(result.Upserts) - updates
	c.logger.Log(fmt.Sprintf(
		"Reconciled creates=%d updates=%d deletes=%d duplicates=%d skipped=%d",
		creates, updates, len(result.ObsoleteKeys), duplicates, skipped,
	))

	if len(result.Upserts) > 0 {
		bulkGid, err := c.shopifyClient.SubmitBatch(ctx, result.Upserts)
		if err != nil {
			c.logger.LogError("Error submit bulk batch", err)
			return err
		}
		c.logger.Log(fmt.Sprintf("Bulk operation started id=%s", bulkGid))

		if err := c.shopifyClient.AwaitBulk(ctx, bulkGid); err != nil {
			c.logger.LogError("Error await bulk operation", err)
			return err
		}
		c.logger.Log("Bulk operation completed")
	} else {
		c.logger.LogWarning("Empty upsert batch, skipping bulk submission")
	}

	// Fresh snapshot so newly created products get published too.
	refreshed, err := c.shopifyClient.SnapshotImported(ctx)
	if err != nil {
		c.logger.LogError("Error refresh imported snapshot", err)
		return err
	}

	publishFailures := 0
	for _, gid := range refreshed {
		if err := c.shopifyClient.PublishProduct(ctx, gid); err != nil {
			publishFailures++
			c.logger.LogError(fmt.Sprintf("Error publish product %s", gid), err)
		}
	}

	deleteFailures := 0
	deleted := 0
	for _, key := range result.ObsoleteKeys {
		gid, ok := existing[key]
		if !ok {
			continue
		}
		if err := c.shopifyClient.DeleteProduct(ctx, gid); err != nil {
			deleteFailures++
			c.logger.LogError(fmt.Sprintf("Error delete product %s key=%s", gid, key), err)
			continue
		}
		deleted++
	}

	c.logger.LogSuccess(fmt.Sprintf(
		"Catalog sync completed upserts=%d published=%d deleted=%d skipped=%d publish_failures=%d delete_failures=%d",
		len(result.Upserts),
		len(refreshed)-publishFailures,
		deleted,
		skipped,
		publishFailures,
		deleteFailures,
	))

	return nil
}
