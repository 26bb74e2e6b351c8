package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/dirtbike-shop/storefront/models"
	"github.com/dirtbike-shop/storefront/storage"
)

// StorageKey is the key prefix cart records are persisted under.
const StorageKey = "dirtbike-shop-cart"

// Line pairs a catalog product with the quantity in the cart. The
// product is embedded in full so a persisted cart can be restored
// without a catalog lookup.
type Line struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

func (l Line) valid() bool {
	return l.Quantity >= 1 &&
		l.Product.ID > 0 &&
		!l.Product.Price.IsNegative() &&
		l.Product.Rating >= 0 &&
		l.Product.Rating <= 5
}

// Totals aggregates the cart: item count, total price and the
// quantity-weighted average product rating (0 for an empty cart).
type Totals struct {
	Items         int
	Price         decimal.Decimal
	AverageRating float64
}

// Engine owns the line list for one cart and is its only writer.
// Every mutation re-persists the full list under the engine's storage
// key; persistence failures are logged and swallowed so the in-memory
// cart stays authoritative. Lines keep first-added order; adding an
// already-present product only bumps its quantity.
type Engine struct {
	store storage.Store
	key   string
	log   *slog.Logger

	lines []Line
}

// NewEngine creates a cart engine bound to the given storage key and
// loads any previously persisted record. A record that fails to parse,
// or contains a single structurally invalid line, is discarded whole
// and the cart starts empty.
func NewEngine(ctx context.Context, store storage.Store, key string, log *slog.Logger) *Engine {
	e := &Engine{
		store: store,
		key:   key,
		log:   log,
	}
	e.load(ctx)
	return e
}

func (e *Engine) load(ctx context.Context) {
	raw, err := e.store.Get(ctx, e.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			e.log.Error("loading cart record", "key", e.key, "err", err)
		}
		return
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		e.log.Warn("discarding malformed cart record", "key", e.key, "err", err)
		return
	}
	for _, l := range lines {
		if !l.valid() {
			e.log.Warn("discarding cart record with invalid line",
				"key", e.key, "product_id", l.Product.ID, "quantity", l.Quantity)
			return
		}
	}
	e.lines = lines
}

// AddItem puts one unit of the product in the cart. If a line for the
// product already exists its quantity is incremented; otherwise a new
// line is appended.
func (e *Engine) AddItem(ctx context.Context, p models.Product) {
	merged := false
	for i := range e.lines {
		if e.lines[i].Product.ID == p.ID {
			e.lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		e.lines = append(e.lines, Line{Product: p, Quantity: 1})
	}
	e.persist(ctx)
}

// RemoveItem takes one unit of the product out of the cart. A quantity
// of 1 removes the line entirely; an absent product is a no-op.
func (e *Engine) RemoveItem(ctx context.Context, productID uint) {
	for i := range e.lines {
		if e.lines[i].Product.ID != productID {
			continue
		}
		if e.lines[i].Quantity > 1 {
			e.lines[i].Quantity--
		} else {
			e.lines = slices.Delete(e.lines, i, i+1)
		}
		e.persist(ctx)
		return
	}
}

// Clear empties the cart and removes the persistent record.
func (e *Engine) Clear(ctx context.Context) {
	e.lines = nil
	if err := e.store.Delete(ctx, e.key); err != nil {
		e.log.Error("removing cart record", "key", e.key, "err", err)
	}
}

// Lines returns a snapshot of the cart in first-added order.
func (e *Engine) Lines() []Line {
	return slices.Clone(e.lines)
}

// Totals recomputes the derived aggregates from the current line list.
func (e *Engine) Totals() Totals {
	t := Totals{Price: decimal.Zero}
	var ratingSum float64
	for _, l := range e.lines {
		qty := decimal.NewFromInt(int64(l.Quantity))
		t.Items += l.Quantity
		t.Price = t.Price.Add(l.Product.Price.Mul(qty))
		ratingSum += l.Product.Rating * float64(l.Quantity)
	}
	if t.Items > 0 {
		t.AverageRating = ratingSum / float64(t.Items)
	}
	return t
}

func (e *Engine) persist(ctx context.Context) {
	raw, err := json.Marshal(e.lines)
	if err != nil {
		e.log.Error("encoding cart record", "key", e.key, "err", err)
		return
	}
	if err := e.store.Set(ctx, e.key, string(raw)); err != nil {
		e.log.Error("persisting cart record", "key", e.key, "err", err)
	}
}
