package handlers

import (
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// UserHandler handles HTTP requests for the user registry and login.
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. The username
// wildcard must come after the fixed-path routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user")
	userRoutes.Get("/id/:id", h.HandleGetUserByID)
	userRoutes.Post("/create", h.HandleCreateUser)
	userRoutes.Post("/login", h.HandleLogin)
	userRoutes.Get("/:username", h.HandleGetUserByUsername)
}

// HandleGetUserByID returns a single user or 404.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByID(c.Params("id"))
	if err != nil {
		return writeServiceError(c, err, "get user by id")
	}
	return c.JSON(user)
}

// HandleGetUserByUsername returns a single user, 404 when absent, 500 when
// the lookup itself fails.
func (h *UserHandler) HandleGetUserByUsername(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByUsername(c.Params("username"))
	if err != nil {
		return writeServiceError(c, err, "get user by username")
	}
	return c.JSON(user)
}

// CreateUserRequest represents the request body for registration.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleCreateUser registers a new user with an empty cart. The response
// never carries the password hash.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.WithError(err).Warn("failed to parse create user request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	user, err := h.userService.RegisterUser(req.Username, req.Password)
	if err != nil {
		return writeServiceError(c, err, "create user")
	}

	log.Infof("registered user %s", user.Username)
	return c.JSON(user)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a user and issues a JWT.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.WithError(err).Warn("failed to parse login request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  validationMessages(err),
		})
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		log.Warnf("login rejected for user %s", req.Username)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "authentication failed",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}
