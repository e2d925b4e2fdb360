package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"shopify-importer/internal/adapters/shopify"
	"shopify-importer/internal/adapters/supplier"
	"shopify-importer/internal/app/usecases"
	"shopify-importer/internal/config"
	infrahttp "shopify-importer/internal/infra/http"
	"shopify-importer/internal/logging"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "only fetch the supplier catalog and report the count")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.TelegramBot)
	httpClient := infrahttp.NewClient(cfg.Shopify.Timeout)

	supplierClient := supplier.NewClient(cfg.Supplier, httpClient)
	shopifyClient := shopify.NewClient(cfg.Shopify, cfg.Sync, httpClient)
	normalizer := supplier.NewNormalizer(cfg.Sync)

	syncCatalog := usecases.NewSyncCatalog(supplierClient, shopifyClient, normalizer, logger)
	if err := syncCatalog.Run(context.Background(), *dryRun); err != nil {
		logger.LogError("catalog sync failed", err)
		os.Exit(1)
	}
}
