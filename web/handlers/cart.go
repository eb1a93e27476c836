package handlers

import (
	"github.com/Lounge-Area/fivemshop/cart"
	"github.com/Lounge-Area/fivemshop/nui"
	"github.com/gofiber/fiber/v2"
)

// session resolves the cart session for the request and echoes its id
// back so the SPA can keep it.
func (h *Handler) session(c *fiber.Ctx) *cart.Session {
	session := h.Carts.GetOrCreate(c.Get(SessionHeader))
	c.Set(SessionHeader, session.ID())
	return session
}

// cartState is the JSON shape of a cart response.
func cartState(s *cart.Session) fiber.Map {
	return fiber.Map{
		"items": s.Items(),
		"count": s.TotalItems(),
		"total": s.TotalPrice(),
	}
}

// GetCart returns the current cart state
func (h *Handler) GetCart(c *fiber.Ctx) error {
	return c.JSON(cartState(h.session(c)))
}

// AddCartItem adds one unit of a product to the cart
func (h *Handler) AddCartItem(c *fiber.Ctx) error {
	var body struct {
		ProductID string `json:"product_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.ProductID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "product_id is required")
	}

	product := h.Resolver.GetProduct(c.UserContext(), body.ProductID)
	if product == nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	session := h.session(c)
	session.Add(*product)
	return c.Status(fiber.StatusCreated).JSON(cartState(session))
}

// SetCartItemQuantity replaces a line's quantity; zero removes it
func (h *Handler) SetCartItemQuantity(c *fiber.Ctx) error {
	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil || body.Quantity == nil || *body.Quantity < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be a non-negative integer")
	}

	session := h.session(c)
	session.SetQuantity(c.Params("productId"), *body.Quantity)
	return c.JSON(cartState(session))
}

// RemoveCartItem removes a line from the cart
func (h *Handler) RemoveCartItem(c *fiber.Ctx) error {
	session := h.session(c)
	session.Remove(c.Params("productId"))
	return c.JSON(cartState(session))
}

// ClearCart empties the cart
func (h *Handler) ClearCart(c *fiber.Ctx) error {
	session := h.session(c)
	session.Clear()
	return c.JSON(cartState(session))
}

// CloseNUI asks the host to close the storefront overlay
func (h *Handler) CloseNUI(c *fiber.Ctx) error {
	h.Bridge.Notify(nui.ActionCloseNUI, nil)
	return c.SendStatus(fiber.StatusAccepted)
}
