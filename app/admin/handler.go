package admin

import (
	"encoding/json"
	"net/http"
	"time"
)

// Credential headers. Real authentication is out of scope; callers
// assert identity through headers the same way the rest of the mock
// stack injects data.
const (
	UserHeader = "X-Auth-User"
	RoleHeader = "X-Auth-Role"
)

type ProductMetricsResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitsSold int     `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
	Category  string  `json:"category"`
}

type CategoryMetricsResponse struct {
	Name       string `json:"name"`
	Value      int    `json:"value"`
	Percentage int    `json:"percentage"`
}

type OrderMetricsResponse struct {
	Date    string  `json:"date"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type MetricsResponse struct {
	TotalRevenue         float64                   `json:"total_revenue"`
	OrdersCount          int                       `json:"orders_count"`
	TopProducts          []ProductMetricsResponse  `json:"top_products"`
	AvgOrderValue        float64                   `json:"avg_order_value"`
	InventoryStatus      int                       `json:"inventory_status"`
	CategoryDistribution []CategoryMetricsResponse `json:"category_distribution"`
	OrderTrends          []OrderMetricsResponse    `json:"order_trends"`
	LastUpdated          string                    `json:"last_updated"`
}

// MetricsHandler serves the dashboard snapshot to authorized users.
type MetricsHandler struct {
	src          Source
	requiredRole Role
}

func NewMetricsHandler(src Source, requiredRole Role) *MetricsHandler {
	return &MetricsHandler{
		src:          src,
		requiredRole: requiredRole,
	}
}

func (h *MetricsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	isAuthenticated := r.Header.Get(UserHeader) != ""
	role, _ := ParseRole(r.Header.Get(RoleHeader))

	if !Authorize(isAuthenticated, role, h.requiredRole) {
		http.Error(w, "Access denied", http.StatusForbidden)
		return
	}

	metrics, err := h.src.Fetch(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch metrics", http.StatusInternalServerError)
		return
	}

	topProducts := make([]ProductMetricsResponse, len(metrics.TopProducts))
	for i, p := range metrics.TopProducts {
		topProducts[i] = ProductMetricsResponse{
			ID:        p.ID,
			Name:      p.Name,
			UnitsSold: p.UnitsSold,
			Revenue:   p.Revenue.InexactFloat64(),
			Category:  p.Category,
		}
	}

	distribution := make([]CategoryMetricsResponse, len(metrics.CategoryDistribution))
	for i, c := range metrics.CategoryDistribution {
		distribution[i] = CategoryMetricsResponse{
			Name:       c.Name,
			Value:      c.Value,
			Percentage: c.Percentage,
		}
	}

	trends := make([]OrderMetricsResponse, len(metrics.OrderTrends))
	for i, o := range metrics.OrderTrends {
		trends[i] = OrderMetricsResponse{
			Date:    o.Date,
			Count:   o.Count,
			Revenue: o.Revenue.InexactFloat64(),
		}
	}

	response := MetricsResponse{
		TotalRevenue:         metrics.TotalRevenue.InexactFloat64(),
		OrdersCount:          metrics.OrdersCount,
		TopProducts:          topProducts,
		AvgOrderValue:        metrics.AvgOrderValue.InexactFloat64(),
		InventoryStatus:      metrics.InventoryStatus,
		CategoryDistribution: distribution,
		OrderTrends:          trends,
		LastUpdated:          metrics.LastUpdated.UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
