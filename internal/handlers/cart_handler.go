package handlers

import (
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// CartHandler handles HTTP requests for cart mutation.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Post("/addToCart", h.HandleAddToCart)
	cartRoutes.Post("/removeFromCart", h.HandleRemoveFromCart)
}

// ModifyCartRequest represents the request body for both cart mutations.
type ModifyCartRequest struct {
	Username string `json:"username" validate:"required"`
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// HandleAddToCart appends item copies to the user's cart.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req ModifyCartRequest
	if handled, err := h.bindRequest(c, &req); handled {
		return err
	}
	cart, err := h.service.AddToCart(req.Username, req.ItemID, req.Quantity)
	if err != nil {
		return writeServiceError(c, err, "add to cart")
	}
	return c.JSON(cart)
}

// HandleRemoveFromCart removes item copies from the user's cart.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	var req ModifyCartRequest
	if handled, err := h.bindRequest(c, &req); handled {
		return err
	}
	cart, err := h.service.RemoveFromCart(req.Username, req.ItemID, req.Quantity)
	if err != nil {
		return writeServiceError(c, err, "remove from cart")
	}
	return c.JSON(cart)
}

// bindRequest binds and validates the cart mutation body. handled reports
// that a rejection response was already written.
func (h *CartHandler) bindRequest(c *fiber.Ctx, req *ModifyCartRequest) (handled bool, err error) {
	if err := c.BodyParser(req); err != nil {
		log.WithError(err).Warn("failed to parse cart request")
		return true, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return true, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  validationMessages(err),
		})
	}
	return false, nil
}
