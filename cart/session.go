package cart

import (
	"sync"
	"time"

	"github.com/Lounge-Area/fivemshop/models"
	"github.com/Lounge-Area/fivemshop/nui"
)

// Session is one browsing session's cart: at most one line per product
// id, every line with quantity >= 1. Each mutation mirrors the new cart
// state to the host over the bridge. Nothing is persisted; the cart is
// discarded with the session.
type Session struct {
	id     string
	bridge nui.Bridge

	mu    sync.Mutex
	lines map[string]*models.CartItem
	order []string
}

// NewSession creates an empty cart wired to the given bridge.
func NewSession(id string, bridge nui.Bridge) *Session {
	return &Session{
		id:     id,
		bridge: bridge,
		lines:  make(map[string]*models.CartItem),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Add puts one unit of the product into the cart, merging into an
// existing line when present. Emits an addToCart notification followed
// by a full cart mirror.
func (s *Session) Add(product models.Product) {
	s.mu.Lock()
	if line, ok := s.lines[product.ID]; ok {
		line.Quantity++
	} else {
		s.lines[product.ID] = &models.CartItem{Product: product, Quantity: 1}
		s.order = append(s.order, product.ID)
	}
	items := s.snapshot()
	s.mu.Unlock()

	s.bridge.Notify(nui.ActionAddToCart, map[string]any{
		"product":   product,
		"quantity":  1,
		"timestamp": time.Now().UnixMilli(),
	})
	s.notifyState(items)
}

// SetQuantity replaces the quantity of an existing line. Zero (or
// negative) removes the line; setting a quantity on an absent line is
// a no-op. Emits a cart mirror.
func (s *Session) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}

	s.mu.Lock()
	line, ok := s.lines[productID]
	if ok {
		line.Quantity = quantity
	}
	items := s.snapshot()
	s.mu.Unlock()

	s.notifyState(items)
}

// Remove deletes the line for the product if present. Emits a cart
// mirror either way.
func (s *Session) Remove(productID string) {
	s.mu.Lock()
	if _, ok := s.lines[productID]; ok {
		delete(s.lines, productID)
		for i, id := range s.order {
			if id == productID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	items := s.snapshot()
	s.mu.Unlock()

	s.notifyState(items)
}

// Clear empties the cart and emits an empty cart mirror.
func (s *Session) Clear() {
	s.mu.Lock()
	s.lines = make(map[string]*models.CartItem)
	s.order = nil
	items := s.snapshot()
	s.mu.Unlock()

	s.notifyState(items)
}

// TotalItems returns the sum of all line quantities.
func (s *Session) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice returns the cart total.
func (s *Session) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, line := range s.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Items returns the cart lines in insertion order.
func (s *Session) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// snapshot copies the lines in insertion order. Callers must hold mu.
func (s *Session) snapshot() []models.CartItem {
	items := make([]models.CartItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, *s.lines[id])
	}
	return items
}

func (s *Session) notifyState(items []models.CartItem) {
	count := 0
	total := 0.0
	for _, item := range items {
		count += item.Quantity
		total += item.Price * float64(item.Quantity)
	}
	s.bridge.Notify(nui.ActionUpdateCart, map[string]any{
		"items": items,
		"count": count,
		"total": total,
	})
}
