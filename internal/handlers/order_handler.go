package handlers

import (
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for order submission and history.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/order")
	orderRoutes.Post("/submit/:username", h.HandleSubmit)
	orderRoutes.Get("/history/:username", h.HandleHistory)
}

// HandleSubmit snapshots the user's cart into a new order.
func (h *OrderHandler) HandleSubmit(c *fiber.Ctx) error {
	order, err := h.service.Submit(c.Params("username"))
	if err != nil {
		return writeServiceError(c, err, "submit order")
	}
	return c.JSON(order)
}

// HandleHistory lists all orders placed by the user.
func (h *OrderHandler) HandleHistory(c *fiber.Ctx) error {
	orders, err := h.service.History(c.Params("username"))
	if err != nil {
		return writeServiceError(c, err, "order history")
	}
	return c.JSON(orders)
}
