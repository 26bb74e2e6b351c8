package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultCatalogInvariants(t *testing.T) {
	catalog := DefaultCatalog()
	assert.NotEmpty(t, catalog)

	seen := make(map[uint]bool)
	for _, p := range catalog {
		assert.False(t, seen[p.ID], "duplicate product id %d", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.True(t, p.Price.IsPositive(), "%s must have a positive price", p.Name)
		assert.True(t, p.Category.Valid(), "%s has unknown category %q", p.Name, p.Category)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
	}
}

func TestDefaultCatalogPriceDomain(t *testing.T) {
	// The storefront price filter advertises this range; every catalog
	// product must fall inside it.
	min := decimal.NewFromInt(3499)
	max := decimal.NewFromInt(8499)

	for _, p := range DefaultCatalog() {
		assert.True(t, p.Price.GreaterThanOrEqual(min), "%s priced below domain", p.Name)
		assert.True(t, p.Price.LessThanOrEqual(max), "%s priced above domain", p.Name)
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid())
	}
	assert.False(t, Category("all").Valid())
	assert.False(t, Category("").Valid())
	assert.False(t, Category("cruiser").Valid())
}
