package products

import (
	"sort"
	"strings"

	pkgerrors "github.com/amborella-organics/storefront-backend/pkg/errors"
)

// Catalog exposes read-only lookups over the static product assortment.
type Catalog struct {
	products []Product
}

// NewCatalog builds a catalog over the built-in assortment.
func NewCatalog() *Catalog {
	return &Catalog{products: catalog}
}

// ListInput captures the browse filters from the shop page.
type ListInput struct {
	Category string
	Query    string
	Sort     string
}

// FindByID returns the product with the given id.
func (c *Catalog) FindByID(id int) (*Product, error) {
	for i := range c.products {
		if c.products[i].ID == id {
			product := c.products[i]
			return &product, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
		WithDetails(map[string]any{"productId": id})
}

// List filters by category and case-insensitive substring match over name,
// description and the grows-into label, then sorts. An empty or "all"
// category passes everything; name order is the default sort.
func (c *Catalog) List(input ListInput) []Product {
	results := make([]Product, 0, len(c.products))
	query := strings.ToLower(strings.TrimSpace(input.Query))

	for _, product := range c.products {
		if !matchesCategory(product, input.Category) {
			continue
		}
		if query != "" && !matchesQuery(product, query) {
			continue
		}
		results = append(results, product)
	}

	sortProducts(results, input.Sort)
	return results
}

// Featured returns the products highlighted on the home page, in catalog order.
func (c *Catalog) Featured() []Product {
	results := make([]Product, 0, len(c.products))
	for _, product := range c.products {
		if product.Featured {
			results = append(results, product)
		}
	}
	return results
}

// Related returns up to limit in-stock products sharing the category of the
// given product, excluding the product itself.
func (c *Catalog) Related(id, limit int) ([]Product, error) {
	product, err := c.FindByID(id)
	if err != nil {
		return nil, err
	}

	results := make([]Product, 0, limit)
	for _, candidate := range c.products {
		if len(results) == limit {
			break
		}
		if candidate.ID == id || candidate.Category != product.Category {
			continue
		}
		results = append(results, candidate)
	}
	return results, nil
}

// Categories returns the category filters with live product counts,
// including the synthetic "all" bucket.
func (c *Catalog) Categories() []Category {
	counts := map[string]int{}
	for _, product := range c.products {
		counts[product.Category]++
	}

	results := []Category{{ID: CategoryAll, Name: "All Products", Count: len(c.products)}}
	for _, id := range []string{CategoryHerbs, CategoryFlowers, CategoryBundles} {
		results = append(results, Category{ID: id, Name: categoryNames[id], Count: counts[id]})
	}
	return results
}

func matchesCategory(product Product, category string) bool {
	category = strings.ToLower(strings.TrimSpace(category))
	return category == "" || category == CategoryAll || product.Category == category
}

func matchesQuery(product Product, query string) bool {
	return strings.Contains(strings.ToLower(product.Name), query) ||
		strings.Contains(strings.ToLower(product.Description), query) ||
		strings.Contains(strings.ToLower(product.GrowsInto), query)
}

func sortProducts(results []Product, order string) {
	switch order {
	case SortByPriceLow:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Price.LessThan(results[j].Price)
		})
	case SortByPriceHigh:
		sort.SliceStable(results, func(i, j int) bool {
			return results[j].Price.LessThan(results[i].Price)
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Name < results[j].Name
		})
	}
}
