package models

import (
	"errors"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// GetAllProducts returns the full catalog in catalog (insertion) order.
func (r *ProductsRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.db.
		Order("id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.
		Where("id = ?", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

// CountByCategory returns the number of catalog products per category.
func (r *ProductsRepository) CountByCategory() (map[Category]int64, error) {
	var rows []struct {
		Category Category
		Total    int64
	}
	if err := r.db.Model(&Product{}).
		Select("category, count(*) as total").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[Category]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Total
	}
	return counts, nil
}

// Seed inserts the given catalog if the products table is empty.
// An already-seeded table is left untouched.
func (r *ProductsRepository) Seed(products []Product) error {
	var count int64
	if err := r.db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&products).Error
}
