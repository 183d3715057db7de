package handlers

import (
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ItemHandler handles HTTP requests for the item catalog.
type ItemHandler struct {
	service  *services.ItemService
	validate *validator.Validate
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
// The name route must be registered before the id wildcard.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/item")
	itemRoutes.Get("/", h.HandleGetItems)
	itemRoutes.Get("/name/:name", h.HandleGetItemsByName)
	itemRoutes.Post("/create", h.HandleCreateItem)
	itemRoutes.Get("/:id", h.HandleGetItemByID)
}

// HandleGetItems returns the whole catalog, empty list included.
func (h *ItemHandler) HandleGetItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems()
	if err != nil {
		return writeServiceError(c, err, "list items")
	}
	return c.JSON(items)
}

// HandleGetItemByID returns a single item or 404.
func (h *ItemHandler) HandleGetItemByID(c *fiber.Ctx) error {
	item, err := h.service.GetItemByID(c.Params("id"))
	if err != nil {
		return writeServiceError(c, err, "get item by id")
	}
	return c.JSON(item)
}

// HandleGetItemsByName returns all items with the exact name, 404 if none.
func (h *ItemHandler) HandleGetItemsByName(c *fiber.Ctx) error {
	items, err := h.service.GetItemsByName(c.Params("name"))
	if err != nil {
		return writeServiceError(c, err, "get items by name")
	}
	return c.JSON(items)
}

// HandleCreateItem validates and stores a new catalog item.
func (h *ItemHandler) HandleCreateItem(c *fiber.Ctx) error {
	var item models.Item
	if err := c.BodyParser(&item); err != nil {
		log.WithError(err).Warn("failed to parse create item request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	if err := h.validate.Struct(item); err != nil {
		log.WithError(err).Warn("create item validation failed")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.CreateItem(&item); err != nil {
		return writeServiceError(c, err, "create item")
	}
	return c.JSON(item)
}
