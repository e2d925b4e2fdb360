package supplier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"shopify-importer/internal/adapters/supplier/dto"
	"shopify-importer/internal/config"
	"shopify-importer/internal/domain/model"
	"shopify-importer/internal/domain/pricing"
)

// HandlePrefix prefixes the catalog code to form the stable key shared
// with the platform-side snapshot.
const HandlePrefix = "ean-"

type Normalizer struct {
	taxRate       decimal.Decimal
	provenanceTag string
}

func NewNormalizer(cfg config.SyncConfig) *Normalizer {
	return &Normalizer{
		taxRate:       decimal.NewFromFloat(cfg.TaxRate),
		provenanceTag: cfg.ProvenanceTag,
	}
}

// Normalize maps one feed record into the platform-ready shape. Records
// without a catalog code and records with malformed numeric fields are
// rejected; the caller decides whether to skip or abort.
func (n *Normalizer) Normalize(p dto.SupplierProduct) (model.CanonicalProduct, error) {
	ean := strings.TrimSpace(p.EAN.String())
	if ean == "" {
		return model.CanonicalProduct{}, fmt.Errorf("product %q: missing catalog code", p.Name)
	}

	price, err := pricing.ComputePrice(p.PVD.String(), p.Canon.String(), p.Margin.String(), n.taxRate)
	if err != nil {
		return model.CanonicalProduct{}, fmt.Errorf("product %q: %w", p.Name, err)
	}

	stock, err := parseStock(p.Stock.String())
	if err != nil {
		return model.CanonicalProduct{}, fmt.Errorf("product %q: %w", p.Name, err)
	}

	return model.CanonicalProduct{
		Handle:      HandlePrefix + ean,
		Title:       p.Name,
		Description: p.Description,
		ProductType: p.Subfamilia,
		Status:      "ACTIVE",
		Tags:        []string{n.provenanceTag},
		Sku:         p.Ref.String(),
		Barcode:     ean,
		Price:       price,
		Stock:       stock,
		ImageURL:    p.ImageURL,
	}, nil
}

// parseStock accepts the feed's stock field as a plain or fractional number
// and truncates it to a whole unit count.
func parseStock(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed stock value %q", raw)
	}
	return int(value), nil
}
