package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"chefbook/internal/models"
	"chefbook/internal/pagination"
	"chefbook/internal/services"
)

// ChefHandler handles HTTP requests for chef accounts. Creation happens
// through /register; this handler covers lookup, search, profile
// update, and deletion. Listing bifurcates like ingredients: a plain
// array without pagination parameters, a page object with them.
type ChefHandler struct {
	service *services.ChefService
}

// NewChefHandler creates a new ChefHandler.
func NewChefHandler(service *services.ChefService) *ChefHandler {
	return &ChefHandler{
		service: service,
	}
}

// RegisterRoutes registers the chef routes with the Fiber app.
func (h *ChefHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/chefs", h.HandleGetChefs)
	router.Get("/chefs/:id", h.HandleGetChefByID)
	router.Put("/chefs/:id", h.HandleUpdateChef)
	router.Delete("/chefs/:id", h.HandleDeleteChef)
}

// HandleGetChefs lists chefs, paginated only when the request asks for
// it. The term matches usernames and emails.
func (h *ChefHandler) HandleGetChefs(c *fiber.Ctx) error {
	term := c.Query("term")

	if c.Query("page") == "" && c.Query("pageSize") == "" {
		chefs, err := h.service.SearchChefs(term)
		if err != nil {
			log.Printf("Error searching chefs: %v", err)
			chefs = []models.Chef{}
		}
		if chefs == nil {
			chefs = []models.Chef{}
		}
		return c.Status(fiber.StatusOK).JSON(chefs)
	}

	opts := pagination.NewOptions(
		c.QueryInt("page", 1),
		c.QueryInt("pageSize", pagination.DefaultPageSize),
		c.Query("sortBy", "username"),
		c.Query("sortDirection", "asc"),
	)
	page, err := h.service.SearchChefsPaged(term, opts)
	if err != nil {
		log.Printf("Error searching chefs: %v", err)
		page = pagination.Paginate([]models.Chef{}, opts)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// HandleGetChefByID returns a single chef, or 404.
func (h *ChefHandler) HandleGetChefByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Chef not found")
	}

	chef, err := h.service.FindChef(id)
	if err != nil {
		log.Printf("Error getting chef by ID %d: %v", id, err)
		return c.Status(fiber.StatusNotFound).SendString("Chef not found")
	}
	if chef == nil {
		return c.Status(fiber.StatusNotFound).SendString("Chef not found")
	}
	return c.Status(fiber.StatusOK).JSON(chef)
}

// HandleUpdateChef updates a chef profile, or 404s when the id is
// unknown. Admin status cannot be changed through this endpoint.
func (h *ChefHandler) HandleUpdateChef(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Chef not found")
	}

	existing, err := h.service.FindChef(id)
	if err != nil {
		log.Printf("Error getting chef by ID %d: %v", id, err)
		return c.Status(fiber.StatusNotFound).SendString("Chef not found")
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).SendString("Chef not found")
	}

	var chef models.Chef
	if err := c.BodyParser(&chef); err != nil {
		log.Printf("Error parsing chef request body: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid chef data")
	}

	chef.ID = id
	chef.IsAdmin = existing.IsAdmin
	if err := h.service.SaveChef(&chef); err != nil {
		log.Printf("Error updating chef %d: %v", id, err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid chef data")
	}
	return c.Status(fiber.StatusOK).JSON(chef)
}

// HandleDeleteChef deletes a chef, or 404s when the id is unknown.
func (h *ChefHandler) HandleDeleteChef(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Chef not found")
	}

	existing, err := h.service.FindChef(id)
	if err != nil {
		log.Printf("Error getting chef by ID %d: %v", id, err)
		return c.Status(fiber.StatusNotFound).SendString("Chef not found")
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).SendString("Chef not found")
	}

	if err := h.service.DeleteChef(id); err != nil {
		log.Printf("Error deleting chef %d: %v", id, err)
		return c.Status(fiber.StatusNotFound).SendString("Chef not found")
	}
	return c.Status(fiber.StatusOK).SendString("Chef deleted successfully.")
}
