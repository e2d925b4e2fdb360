package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIVersion    = "2024-10"
	defaultProvenanceTag = "ImportadoAPI"
	defaultTaxRate       = 21.0
)

// Load reads the full sync configuration from the environment, loading a
// local .env file first when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	shopDomain, err := requiredString("SHOP_URL")
	if err != nil {
		return Config{}, err
	}
	shopToken, err := requiredString("SHOP_TOKEN")
	if err != nil {
		return Config{}, err
	}
	locationID, err := requiredString("LOCATION_ID")
	if err != nil {
		return Config{}, err
	}
	publicationID, err := requiredString("PUBLICATION_ID")
	if err != nil {
		return Config{}, err
	}
	supplierURL, err := requiredString("SUPPLIER_URL")
	if err != nil {
		return Config{}, err
	}

	categories := splitList(stringWithDefault("SUBFAMILIAS", ""))
	if len(categories) == 0 {
		return Config{}, fmt.Errorf("missing required env var: SUBFAMILIAS")
	}

	taxRate, err := floatWithDefault("TAX_RATE", defaultTaxRate)
	if err != nil {
		return Config{}, err
	}

	timeout, err := durationWithDefault("HTTP_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, err
	}
	pollInterval, err := durationWithDefault("SHOPIFY_BULK_POLL_INTERVAL", 5*time.Second)
	if err != nil {
		return Config{}, err
	}
	waitMax, err := durationWithDefault("SHOPIFY_BULK_WAIT_MAX", 15*time.Minute)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Shopify: ShopifyConfig{
			ShopDomain:    shopDomain,
			Token:         shopToken,
			APIVer:        stringWithDefault("SHOPIFY_API_VERSION", defaultAPIVersion),
			LocationID:    locationID,
			PublicationID: publicationID,
			Timeout:       timeout,
		},
		Supplier: SupplierConfig{
			BaseUrl:    supplierURL,
			Categories: categories,
			Timeout:    timeout,
		},
		Sync: SyncConfig{
			TaxRate:          taxRate,
			ProvenanceTag:    stringWithDefault("PROVENANCE_TAG", defaultProvenanceTag),
			BulkPollInterval: pollInterval,
			BulkWaitMax:      waitMax,
		},
		TelegramBot: TelegramBotConfig{
			ChatId: stringWithDefault("TELEGRAM_CHAT_ID", ""),
			Token:  stringWithDefault("TELEGRAM_TOKEN", ""),
		},
	}, nil
}

func requiredString(key string) (string, error) {
	variable, isOk := os.LookupEnv(key)
	if !isOk || variable == "" {
		return "", fmt.Errorf("missing required env var: %s", key)
	}
	return variable, nil
}

func stringWithDefault(key, def string) string {
	variable, isOk := os.LookupEnv(key)
	if !isOk || variable == "" {
		return def
	}
	return variable
}

func floatWithDefault(key string, def float64) (float64, error) {
	variable, isOk := os.LookupEnv(key)
	if !isOk || variable == "" {
		return def, nil
	}
	number, err := strconv.ParseFloat(variable, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float for %s: %w", key, err)
	}
	return number, nil
}

func durationWithDefault(key string, def time.Duration) (time.Duration, error) {
	variable, isOk := os.LookupEnv(key)
	if !isOk || variable == "" {
		return def, nil
	}
	duration, err := time.ParseDuration(variable)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return duration, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
