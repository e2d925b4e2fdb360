package usecases

import (
	"sort"

	"shopify-importer/internal/domain/model"
)

// Reconcile computes the upsert batch and the obsolete-key set from the
// newly normalized feed and the platform snapshot (stable key -> GID).
// Duplicate keys in the feed keep their first occurrence; matched products
// get the existing GID attached so the bulk mutation updates in place.
// Pure function, no I/O.
func Reconcile(newProducts []model.CanonicalProduct, existingByKey map[string]string) model.ReconciliationResult {
	seen := make(map[string]struct{}, len(newProducts))
	upserts := make([]model.CanonicalProduct, 0, len(newProducts))

	for _, product := range newProducts {
		if _, duplicate := seen[product.Handle]; duplicate {
			continue
		}
		seen[product.Handle] = struct{}{}

		if gid, exists := existingByKey[product.Handle]; exists {
			product.ShopifyGID = gid
		}
		upserts = append(upserts, product)
	}

	obsolete := make([]string, 0)
	for key := range existingByKey {
		if _, stillPresent := seen[key]; !stillPresent {
			obsolete = append(obsolete, key)
		}
	}
	sort.Strings(obsolete)

	return model.ReconciliationResult{
		Upserts:      upserts,
		ObsoleteKeys: obsolete,
	}
}
