package handlers

import (
	"github.com/Lounge-Area/fivemshop/cart"
	"github.com/Lounge-Area/fivemshop/catalog"
	"github.com/Lounge-Area/fivemshop/nui"
)

// SessionHeader carries the cart session id between the SPA and the
// service. Issued on the first cart response.
const SessionHeader = "X-Session-ID"

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	Resolver *catalog.Resolver
	Mutator  *catalog.Mutator
	Carts    *cart.Manager
	Bridge   nui.Bridge
}

// New creates the handler set.
func New(resolver *catalog.Resolver, mutator *catalog.Mutator, carts *cart.Manager, bridge nui.Bridge) *Handler {
	return &Handler{
		Resolver: resolver,
		Mutator:  mutator,
		Carts:    carts,
		Bridge:   bridge,
	}
}
