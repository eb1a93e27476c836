package handlers

import (
	"github.com/Lounge-Area/fivemshop/catalog"
	"github.com/gofiber/fiber/v2"
)

// GetCategories returns all categories with subcategories and counts
func (h *Handler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(h.Resolver.ListCategories(c.UserContext()))
}

// GetProducts returns products matching the query filters
func (h *Handler) GetProducts(c *fiber.Ctx) error {
	filter := catalog.ProductFilter{
		CategoryID:    c.Query("category_id"),
		SubcategoryID: c.Query("subcategory_id"),
		SearchTerm:    c.Query("search"),
		InStockOnly:   c.QueryBool("in_stock"),
	}

	products := h.Resolver.ListProducts(c.UserContext(), filter)

	// Optional client-side pipeline sort, applied after resolution so
	// the response matches the storefront's rendered order.
	if sortKey := c.Query("sort"); sortKey != "" {
		products = catalog.Resolve(products, catalog.ResolveOptions{SortKey: sortKey})
	}

	return c.JSON(products)
}

// GetProduct returns a single product or 404
func (h *Handler) GetProduct(c *fiber.Ctx) error {
	product := h.Resolver.GetProduct(c.UserContext(), c.Params("id"))
	if product == nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}
	return c.JSON(product)
}

// GetShops returns all active shops
func (h *Handler) GetShops(c *fiber.Ctx) error {
	return c.JSON(h.Resolver.ListShops(c.UserContext()))
}

// GetShop returns a single shop or 404
func (h *Handler) GetShop(c *fiber.Ctx) error {
	shop := h.Resolver.GetShop(c.UserContext(), c.Params("id"))
	if shop == nil {
		return fiber.NewError(fiber.StatusNotFound, "shop not found")
	}
	return c.JSON(shop)
}

// Health reports the operating mode of the catalog
func (h *Handler) Health(c *fiber.Ctx) error {
	mode := "fallback"
	if h.Resolver.BackendAvailable() {
		mode = "backend"
	}
	return c.JSON(fiber.Map{
		"status": "ok",
		"mode":   mode,
	})
}
