package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"chefbook/internal/models"
	"chefbook/internal/pagination"
	"chefbook/internal/services"
)

// IngredientHandler handles HTTP requests for ingredients.
//
// Listing bifurcates on the presence of pagination parameters: when
// both page and pageSize are absent the response is a plain JSON array
// of every match, otherwise it is a page object. The two shapes are
// distinct contracts, not one with defaults.
type IngredientHandler struct {
	service *services.IngredientService
}

// NewIngredientHandler creates a new IngredientHandler.
func NewIngredientHandler(service *services.IngredientService) *IngredientHandler {
	return &IngredientHandler{
		service: service,
	}
}

// RegisterRoutes registers the ingredient routes with the Fiber app.
func (h *IngredientHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ingredients", h.HandleGetIngredients)
	router.Get("/ingredients/:id", h.HandleGetIngredientByID)
	router.Post("/ingredients", h.HandleCreateIngredient)
	router.Put("/ingredients/:id", h.HandleUpdateIngredient)
	router.Delete("/ingredients/:id", h.HandleDeleteIngredient)
}

// HandleGetIngredients lists ingredients, paginated only when the
// request asks for it.
func (h *IngredientHandler) HandleGetIngredients(c *fiber.Ctx) error {
	term := c.Query("term")

	if c.Query("page") == "" && c.Query("pageSize") == "" {
		ingredients, err := h.service.SearchIngredients(term)
		if err != nil {
			log.Printf("Error searching ingredients: %v", err)
			ingredients = []models.Ingredient{}
		}
		if ingredients == nil {
			ingredients = []models.Ingredient{}
		}
		return c.Status(fiber.StatusOK).JSON(ingredients)
	}

	opts := pagination.NewOptions(
		c.QueryInt("page", 1),
		c.QueryInt("pageSize", pagination.DefaultPageSize),
		c.Query("sortBy", "name"),
		c.Query("sortDirection", "asc"),
	)
	page, err := h.service.SearchIngredientsPaged(term, opts)
	if err != nil {
		log.Printf("Error searching ingredients: %v", err)
		page = pagination.Paginate([]models.Ingredient{}, opts)
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// HandleGetIngredientByID returns a single ingredient, or 404.
func (h *IngredientHandler) HandleGetIngredientByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Ingredient not found")
	}

	ingredient, err := h.service.FindIngredient(id)
	if err != nil {
		log.Printf("Error getting ingredient by ID %d: %v", id, err)
		return c.Status(fiber.StatusNotFound).SendString("Ingredient not found")
	}
	if ingredient == nil {
		return c.Status(fiber.StatusNotFound).SendString("Ingredient not found")
	}
	return c.Status(fiber.StatusOK).JSON(ingredient)
}

// HandleCreateIngredient creates a new ingredient.
func (h *IngredientHandler) HandleCreateIngredient(c *fiber.Ctx) error {
	var ingredient models.Ingredient
	if err := c.BodyParser(&ingredient); err != nil {
		log.Printf("Error parsing ingredient request body: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid ingredient data")
	}

	ingredient.ID = 0
	if err := h.service.SaveIngredient(&ingredient); err != nil {
		log.Printf("Error creating ingredient: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid ingredient data")
	}
	return c.SendStatus(fiber.StatusCreated)
}

// HandleUpdateIngredient updates an existing ingredient with a 204, or
// 404s when the id is unknown.
func (h *IngredientHandler) HandleUpdateIngredient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Ingredient not found")
	}

	existing, err := h.service.FindIngredient(id)
	if err != nil {
		log.Printf("Error getting ingredient by ID %d: %v", id, err)
		return c.Status(fiber.StatusNotFound).SendString("Ingredient not found")
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).SendString("Ingredient not found")
	}

	var ingredient models.Ingredient
	if err := c.BodyParser(&ingredient); err != nil {
		log.Printf("Error parsing ingredient request body: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid ingredient data")
	}

	ingredient.ID = id
	if err := h.service.SaveIngredient(&ingredient); err != nil {
		log.Printf("Error updating ingredient %d: %v", id, err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid ingredient data")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteIngredient deletes an ingredient. The response is 204
// whether or not the id existed.
func (h *IngredientHandler) HandleDeleteIngredient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	if err := h.service.DeleteIngredient(id); err != nil {
		log.Printf("Error deleting ingredient %d: %v", id, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
