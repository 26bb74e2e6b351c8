package cart

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dirtbike-shop/storefront/models"
	"github.com/dirtbike-shop/storefront/storage"
)

// SessionCookie carries the cart session id between requests.
const SessionCookie = "cart_session"

type LineItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type Response struct {
	Items         []LineItem `json:"items"`
	TotalItems    int        `json:"total_items"`
	TotalPrice    float64    `json:"total_price"`
	AverageRating float64    `json:"average_rating"`
}

type AddItemRequest struct {
	ProductID uint `json:"product_id"`
}

type ProductProvider interface {
	GetByID(id uint) (*models.Product, error)
}

// CartHandler exposes one cart per browser session. Each request
// resolves its session cookie (minting one when absent) and runs
// against an engine bound to that session's storage key.
type CartHandler struct {
	repo  ProductProvider
	store storage.Store
	log   *slog.Logger
}

func NewCartHandler(repo ProductProvider, store storage.Store, log *slog.Logger) *CartHandler {
	return &CartHandler{
		repo:  repo,
		store: store,
		log:   log,
	}
}

func (h *CartHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	engine := h.engineFor(w, r)
	writeCart(w, engine)
}

func (h *CartHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var input AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	product, err := h.repo.GetByID(input.ProductID)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to retrieve product", http.StatusInternalServerError)
		return
	}

	engine := h.engineFor(w, r)
	engine.AddItem(r.Context(), *product)
	writeCart(w, engine)
}

func (h *CartHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	engine := h.engineFor(w, r)
	engine.RemoveItem(r.Context(), uint(id))
	writeCart(w, engine)
}

func (h *CartHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	engine := h.engineFor(w, r)
	engine.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// engineFor loads the cart engine for the request's session, creating
// the session cookie on first contact.
func (h *CartHandler) engineFor(w http.ResponseWriter, r *http.Request) *Engine {
	var sessionID string
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		sessionID = c.Value
	} else {
		sessionID = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
		})
	}
	key := StorageKey + ":" + sessionID
	return NewEngine(r.Context(), h.store, key, h.log)
}

func writeCart(w http.ResponseWriter, engine *Engine) {
	lines := engine.Lines()
	items := make([]LineItem, len(lines))
	for i, l := range lines {
		items[i] = LineItem{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.Price.InexactFloat64(),
			Quantity:  l.Quantity,
			LineTotal: l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))).InexactFloat64(),
		}
	}

	totals := engine.Totals()
	response := Response{
		Items:         items,
		TotalItems:    totals.Items,
		TotalPrice:    totals.Price.InexactFloat64(),
		AverageRating: totals.AverageRating,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
