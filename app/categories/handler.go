package categories

import (
	"encoding/json"
	"net/http"

	"github.com/dirtbike-shop/storefront/models"
)

type CategoryResponse struct {
	Name     string `json:"name"`
	Products int64  `json:"products"`
}

type CategoryCounter interface {
	CountByCategory() (map[models.Category]int64, error)
}

type CategoryHandler struct {
	repo CategoryCounter
}

func NewCategoryHandler(r CategoryCounter) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

// HandleGetAll lists the fixed catalog categories together with the
// number of products currently in each.
func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	counts, err := h.repo.CountByCategory()
	if err != nil {
		http.Error(w, "failed to fetch categories", http.StatusInternalServerError)
		return
	}

	all := models.Categories()
	response := make([]CategoryResponse, len(all))
	for i, c := range all {
		response[i] = CategoryResponse{
			Name:     string(c),
			Products: counts[c],
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
