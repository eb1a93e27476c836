package handlers

import (
	"github.com/Lounge-Area/fivemshop/models"
	"github.com/gofiber/fiber/v2"
)

// CreateProduct creates a new product
func (h *Handler) CreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product payload")
	}

	created, err := h.Mutator.CreateProduct(c.UserContext(), &product)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateProduct applies a partial product update
func (h *Handler) UpdateProduct(c *fiber.Ctx) error {
	var updates map[string]any
	if err := c.BodyParser(&updates); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid update payload")
	}

	updated, err := h.Mutator.UpdateProduct(c.UserContext(), c.Params("id"), updates)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// DeleteProduct removes a product
func (h *Handler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.Mutator.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateShop creates a new shop
func (h *Handler) CreateShop(c *fiber.Ctx) error {
	var shop models.Shop
	if err := c.BodyParser(&shop); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid shop payload")
	}

	created, err := h.Mutator.CreateShop(c.UserContext(), &shop)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateShop applies a partial shop update
func (h *Handler) UpdateShop(c *fiber.Ctx) error {
	var updates map[string]any
	if err := c.BodyParser(&updates); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid update payload")
	}

	updated, err := h.Mutator.UpdateShop(c.UserContext(), c.Params("id"), updates)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// DeleteShop removes a shop
func (h *Handler) DeleteShop(c *fiber.Ctx) error {
	if err := h.Mutator.DeleteShop(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
