package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dirtbike-shop/storefront/models"
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type Product struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Specs       []string `json:"specs"`
	Rating      float64  `json:"rating"`
	CC          int      `json:"cc"`
	Stroke      string   `json:"stroke"`
}

type ProductProvider interface {
	GetAllProducts() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
}

type CatalogHandler struct {
	repo ProductProvider
}

func NewCatalogHandler(r ProductProvider) *CatalogHandler {
	return &CatalogHandler{
		repo: r,
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	// Parse pagination query params
	offset := 0
	limit := 10

	if oStr := r.URL.Query().Get("offset"); oStr != "" {
		if o, err := strconv.Atoi(oStr); err == nil && o >= 0 {
			offset = o
		}
	}

	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			if l < 1 {
				limit = 1
			} else if l > 100 {
				limit = 100
			} else {
				limit = l
			}
		}
	}

	catalog, err := h.repo.GetAllProducts()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	query := NewQuery(catalog)
	query.SetSearchTerm(r.URL.Query().Get("search"))

	if sel, ok := ParseSelector(r.URL.Query().Get("category")); ok {
		query.SetCategory(sel)
	}

	curMin, curMax := query.PriceRange()
	min, max := curMin, curMax
	if minStr := r.URL.Query().Get("price_min"); minStr != "" {
		if val, err := decimal.NewFromString(minStr); err == nil {
			min = val
		}
	}
	if maxStr := r.URL.Query().Get("price_max"); maxStr != "" {
		if val, err := decimal.NewFromString(maxStr); err == nil {
			max = val
		}
	}
	query.SetPriceRange(min, max)

	matched := query.Results()
	total := len(matched)

	// Apply pagination to the filtered view
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	page := matched[start:end]

	products := make([]Product, len(page))
	for i, p := range page {
		products[i] = mapProduct(p)
	}

	w.Header().Set("Content-Type", "application/json")
	response := Response{
		Total:    total,
		Products: products,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	product, err := h.repo.GetByID(uint(id))
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(mapProduct(*product)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func mapProduct(p models.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.InexactFloat64(),
		Category:    string(p.Category),
		Description: p.Description,
		Specs:       []string(p.Specs),
		Rating:      p.Rating,
		CC:          p.CC,
		Stroke:      p.Stroke,
	}
}
