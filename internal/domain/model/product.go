package model

import "github.com/shopspring/decimal"

// CanonicalProduct is the platform-ready shape of one supplier record.
// Handle is the stable key used to match the record against previously
// imported products across runs.
type CanonicalProduct struct {
	Handle      string
	Title       string
	Description string
	ProductType string
	Status      string
	Tags        []string
	Sku         string
	Barcode     string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string

	// ShopifyGID is set by the reconciler when the handle matched an
	// existing platform record; its presence turns the bulk operation
	// into an update-in-place.
	ShopifyGID string
}

// ExistingRecord is one entry of the platform-side snapshot: the stable key
// together with the platform identifier it currently maps to.
type ExistingRecord struct {
	Handle     string
	ShopifyGID string
}

// ReconciliationResult holds the two output sets of a reconciliation pass.
type ReconciliationResult struct {
	// Upserts preserves feed order; entries with a ShopifyGID update in
	// place, the rest create new products.
	Upserts []CanonicalProduct
	// ObsoleteKeys are stable keys present in the snapshot but absent
	// from the new feed, sorted for deterministic processing.
	ObsoleteKeys []string
}
