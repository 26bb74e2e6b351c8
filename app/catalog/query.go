package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dirtbike-shop/storefront/models"
)

// CategorySelector is a category filter value: CategoryAll or one of the
// concrete catalog categories. The typed value keeps invalid categories
// out of the query by construction.
type CategorySelector string

// CategoryAll disables the category constraint.
const CategoryAll CategorySelector = "all"

// ParseSelector maps a raw filter value to a selector. The empty string
// parses as CategoryAll; anything that is neither "all" nor a catalog
// category is rejected.
func ParseSelector(s string) (CategorySelector, bool) {
	if s == "" || CategorySelector(s) == CategoryAll {
		return CategoryAll, true
	}
	if models.Category(s).Valid() {
		return CategorySelector(s), true
	}
	return CategoryAll, false
}

// Query filters an immutable product catalog by free-text search term,
// category and inclusive price range. Criteria are mutated through the
// setters; Results is a pure function of (catalog, criteria) and always
// preserves catalog order. A fresh query matches the whole catalog.
type Query struct {
	products []models.Product

	term     string
	category CategorySelector
	minPrice decimal.Decimal
	maxPrice decimal.Decimal

	// Price domain derived from the catalog; no bound may leave it.
	domainMin decimal.Decimal
	domainMax decimal.Decimal
}

// NewQuery builds a query over the given catalog. The catalog slice is
// treated as read-only and must not be mutated by the caller afterwards.
func NewQuery(products []models.Product) *Query {
	q := &Query{
		products: products,
		category: CategoryAll,
	}
	for i, p := range products {
		if i == 0 || p.Price.LessThan(q.domainMin) {
			q.domainMin = p.Price
		}
		if i == 0 || p.Price.GreaterThan(q.domainMax) {
			q.domainMax = p.Price
		}
	}
	q.minPrice = q.domainMin
	q.maxPrice = q.domainMax
	return q
}

// SetSearchTerm replaces the stored term verbatim. Matching is
// case-insensitive and happens at query time; an empty term matches
// everything.
func (q *Query) SetSearchTerm(term string) {
	q.term = term
}

// SetCategory replaces the category selector.
func (q *Query) SetCategory(sel CategorySelector) {
	q.category = sel
}

// SetPriceRange updates the inclusive bounds. The new minimum is capped
// at the current maximum and the new maximum is raised to the effective
// minimum, so the range can never invert; both bounds are additionally
// clamped into the catalog price domain.
func (q *Query) SetPriceRange(min, max decimal.Decimal) {
	min = clamp(min, q.domainMin, q.maxPrice)
	max = clamp(max, min, q.domainMax)
	q.minPrice = min
	q.maxPrice = max
}

// PriceRange returns the currently effective inclusive bounds.
func (q *Query) PriceRange() (min, max decimal.Decimal) {
	return q.minPrice, q.maxPrice
}

// Results returns every product matching all active criteria, in
// catalog order. No matches yields an empty slice.
func (q *Query) Results() []models.Product {
	term := strings.ToLower(q.term)
	matched := make([]models.Product, 0, len(q.products))
	for _, p := range q.products {
		matchesSearch := strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
		matchesCategory := q.category == CategoryAll ||
			models.Category(q.category) == p.Category
		matchesPrice := p.Price.GreaterThanOrEqual(q.minPrice) &&
			p.Price.LessThanOrEqual(q.maxPrice)

		if matchesSearch && matchesCategory && matchesPrice {
			matched = append(matched, p)
		}
	}
	return matched
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
