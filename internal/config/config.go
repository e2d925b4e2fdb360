package config

import "time"

type Config struct {
	Shopify     ShopifyConfig
	Supplier    SupplierConfig
	Sync        SyncConfig
	TelegramBot TelegramBotConfig
}

type ShopifyConfig struct {
	ShopDomain    string
	Token         string
	APIVer        string
	LocationID    string
	PublicationID string
	Timeout       time.Duration
}

type SupplierConfig struct {
	BaseUrl    string
	Categories []string
	Timeout    time.Duration
}

type SyncConfig struct {
	// TaxRate is the VAT percentage applied on top of the margined price.
	TaxRate          float64
	ProvenanceTag    string
	BulkPollInterval time.Duration
	BulkWaitMax      time.Duration
}

type TelegramBotConfig struct {
	ChatId string
	Token  string
}
