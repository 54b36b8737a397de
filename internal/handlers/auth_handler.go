package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"chefbook/internal/models"
	"chefbook/internal/services"
)

// AuthHandler handles HTTP requests for registration, login, and
// logout. Error bodies are plain text and the login response carries
// the raw token, which existing clients depend on.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/register", h.HandleRegister)
	router.Post("/login", h.HandleLogin)
	router.Post("/logout", h.HandleLogout)
}

// HandleRegister handles new chef registration.
// 201 with the persisted chef on success, 409 when the username is
// taken, 400 on a malformed body.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var chef models.Chef
	if err := c.BodyParser(&chef); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid chef data")
	}
	if err := h.validate.Struct(chef); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid chef data")
	}

	if err := h.authService.Register(&chef); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return c.Status(fiber.StatusConflict).SendString("Username already exists")
		}
		log.Printf("Error registering chef: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid chef data")
	}

	return c.Status(fiber.StatusCreated).JSON(chef)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a chef and issues a session token. The
// token is returned both as the raw response body and in the
// Authorization response header, with a 201 status.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid login data")
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid login data")
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Printf("Error during login for user %s: %v", req.Username, err)
		}
		return c.Status(fiber.StatusUnauthorized).SendString("Invalid username or password")
	}

	c.Set("Authorization", token)
	return c.Status(fiber.StatusCreated).SendString(token)
}

// HandleLogout invalidates the session named by the Authorization
// header. Logging out an unknown token still succeeds.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	token := c.Get("Authorization")
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).SendString("No authorization token provided")
	}

	token = strings.TrimPrefix(token, "Bearer ")

	if err := h.authService.Logout(token); err != nil {
		log.Printf("Error revoking session token: %v", err)
	}
	return c.Status(fiber.StatusOK).SendString("Logout successful")
}
