package web

import (
	"errors"

	"github.com/Lounge-Area/fivemshop/catalog"
	"github.com/Lounge-Area/fivemshop/pkg/logx"
	"github.com/Lounge-Area/fivemshop/web/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server over the given handler set
func NewServer(h *handlers.Handler) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	setupRoutes(app, h)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	logx.Info().Str("port", port).Msg("Server starting")
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// errorHandler maps service errors to HTTP statuses and renders a JSON
// body. Write-path errors arrive here unchanged from the mutator.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	case errors.Is(err, catalog.ErrBackendRequired):
		code = fiber.StatusServiceUnavailable
	case errors.Is(err, catalog.ErrValidation):
		code = fiber.StatusBadRequest
	case errors.Is(err, gorm.ErrRecordNotFound):
		code = fiber.StatusNotFound
	}

	if code >= fiber.StatusInternalServerError {
		logx.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	api.Get("/health", h.Health)

	// Catalog reads
	api.Get("/categories", h.GetCategories)
	api.Get("/products", h.GetProducts)
	api.Get("/products/:id", h.GetProduct)
	api.Get("/shops", h.GetShops)
	api.Get("/shops/:id", h.GetShop)

	// Admin writes
	api.Post("/products", h.CreateProduct)
	api.Put("/products/:id", h.UpdateProduct)
	api.Delete("/products/:id", h.DeleteProduct)
	api.Post("/shops", h.CreateShop)
	api.Put("/shops/:id", h.UpdateShop)
	api.Delete("/shops/:id", h.DeleteShop)

	// Cart session
	api.Get("/cart", h.GetCart)
	api.Post("/cart/items", h.AddCartItem)
	api.Put("/cart/items/:productId", h.SetCartItemQuantity)
	api.Delete("/cart/items/:productId", h.RemoveCartItem)
	api.Delete("/cart", h.ClearCart)

	// Host channel
	api.Post("/nui/close", h.CloseNUI)
}
