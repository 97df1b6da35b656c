package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/stylora/stylist-intent/internal/models"
)

// Catalog holds the ordered, read-only product list for the process lifetime.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
}

// New builds a catalog from an already-loaded product list.
func New(products []models.Product) *Catalog {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{
		products: products,
		byID:     byID,
	}
}

// Load reads the product catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return New(products), nil
}

// Products returns the full catalog in load order.
func (c *Catalog) Products() []models.Product {
	return c.products
}

// Get looks a product up by id.
func (c *Catalog) Get(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Filter returns the products satisfying every declared filter, preserving
// catalog order.
func (c *Catalog) Filter(filters models.QueryFilters) []models.Product {
	matching := []models.Product{}
	for _, p := range c.products {
		if Matches(p, filters) {
			matching = append(matching, p)
		}
	}
	return matching
}
