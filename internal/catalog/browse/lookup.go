package browse

import "github.com/tair/product-catalog/internal/catalog/domain"

// FindByID returns the first record whose id equals id exactly.
// The boolean is false when no record matches.
func FindByID(records []domain.Product, id string) (domain.Product, bool) {
	for _, p := range records {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
