package models

import (
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product represents a bike in the catalog.
// Products are immutable once seeded; the cart embeds a full copy of the
// product in its persisted record, so the JSON shape here is part of the
// cart storage format.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    Category        `gorm:"type:varchar(16);not null;index" json:"category"`
	Description string          `gorm:"not null" json:"description"`
	Specs       pq.StringArray  `gorm:"type:text[]" json:"specs"`
	Rating      float64         `gorm:"not null;default:0" json:"rating"`
	CC          int             `gorm:"column:cc" json:"cc"`
	Stroke      string          `json:"stroke"`
}

func (p *Product) TableName() string {
	return "products"
}
