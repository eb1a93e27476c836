package catalog

import (
	"context"
	"sync"

	"github.com/Lounge-Area/fivemshop/models"
)

// ProductLister is the read capability the Refresher depends on.
type ProductLister interface {
	ListProducts(ctx context.Context, filter ProductFilter) []models.Product
}

// Refresher keeps a current resolved product view under rapid
// re-querying (e.g. per-keystroke search edits). In-flight queries are
// not cancelled; instead a completion is applied only when no newer
// refresh has been issued since, so a slow stale query never
// overwrites a fresher result.
type Refresher struct {
	lister ProductLister

	mu       sync.Mutex
	seq      uint64
	products []models.Product
}

// NewRefresher creates a refresher over the given lister.
func NewRefresher(lister ProductLister) *Refresher {
	return &Refresher{lister: lister}
}

// Refresh resolves the filter and installs the result unless a newer
// Refresh was issued while this one was in flight. Safe for concurrent
// use.
func (r *Refresher) Refresh(ctx context.Context, filter ProductFilter) {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.mu.Unlock()

	products := r.lister.ListProducts(ctx, filter)

	r.mu.Lock()
	defer r.mu.Unlock()
	if seq == r.seq {
		r.products = products
	}
}

// Products returns the most recently installed product view.
func (r *Refresher) Products() []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}
