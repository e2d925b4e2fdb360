package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"shopify-importer/internal/adapters/shopify"
	"shopify-importer/internal/config"
	infrahttp "shopify-importer/internal/infra/http"
	"shopify-importer/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.TelegramBot)
	httpClient := infrahttp.NewClient(cfg.Shopify.Timeout)

	logger.Log(fmt.Sprintf("wipe imported started tag=%s", cfg.Sync.ProvenanceTag))

	shopifyClient := shopify.NewClient(cfg.Shopify, cfg.Sync, httpClient)
	wipeClient, ok := shopifyClient.(shopify.WipeService)
	if !ok {
		logger.LogError("wipe imported error", fmt.Errorf("shopify wipe service unavailable"))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	deleted, err := wipeClient.WipeImported(ctx)
	if err != nil {
		logger.LogError(fmt.Sprintf("wipe imported error after %d deletions", deleted), err)
		os.Exit(1)
	}

	logger.LogSuccess(fmt.Sprintf("wipe imported completed deleted=%d", deleted))
}
