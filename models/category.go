package models

// Category classifies a bike in the catalog.
// The storefront filter adds a synthetic "all" selector on top of these;
// the catalog itself only ever holds the concrete values.
type Category string

const (
	CategoryMotocross Category = "motocross"
	CategoryEnduro    Category = "enduro"
	CategoryYouth     Category = "youth"
)

// Categories lists every concrete catalog category, in display order.
func Categories() []Category {
	return []Category{CategoryMotocross, CategoryEnduro, CategoryYouth}
}

// Valid reports whether c is one of the fixed catalog categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMotocross, CategoryEnduro, CategoryYouth:
		return true
	}
	return false
}
