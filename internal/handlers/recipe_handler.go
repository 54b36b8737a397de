package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"chefbook/internal/models"
	"chefbook/internal/pagination"
	"chefbook/internal/services"
)

// RecipeHandler handles HTTP requests for recipes. Listing is always
// paginated (defaults applied when parameters are absent), creation
// requires an authenticated session, and update preserves the original
// author. Update and delete intentionally carry no token check, which
// matches the system this replaces.
type RecipeHandler struct {
	service *services.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(service *services.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		service: service,
	}
}

// RegisterRoutes registers the recipe routes with the Fiber app.
// tokenRequired gates recipe creation only.
func (h *RecipeHandler) RegisterRoutes(router fiber.Router, tokenRequired fiber.Handler) {
	router.Get("/recipes", h.HandleGetRecipes)
	router.Get("/recipes/:id", h.HandleGetRecipeByID)
	router.Post("/recipes", tokenRequired, h.HandleCreateRecipe)
	router.Put("/recipes/:id", h.HandleUpdateRecipe)
	router.Delete("/recipes/:id", h.HandleDeleteRecipe)
}

// HandleGetRecipes returns a page of recipes filtered by the optional
// term, or 404 when nothing matches.
func (h *RecipeHandler) HandleGetRecipes(c *fiber.Ctx) error {
	term := c.Query("term")
	opts := pagination.NewOptions(
		c.QueryInt("page", 1),
		c.QueryInt("pageSize", pagination.DefaultPageSize),
		c.Query("sortBy", "name"),
		c.Query("sortDirection", "asc"),
	)

	page, err := h.service.SearchRecipesPaged(term, opts)
	if err != nil {
		log.Printf("Error searching recipes: %v", err)
		return c.Status(fiber.StatusNotFound).SendString("No recipes found")
	}
	if len(page.Items) == 0 {
		return c.Status(fiber.StatusNotFound).SendString("No recipes found")
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

// HandleGetRecipeByID returns a single recipe, or 404.
func (h *RecipeHandler) HandleGetRecipeByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Recipe not found")
	}

	recipe, err := h.service.FindRecipe(id)
	if err != nil {
		log.Printf("Error getting recipe by ID %d: %v", id, err)
		return c.Status(fiber.StatusNotFound).SendString("Recipe not found")
	}
	if recipe == nil {
		return c.Status(fiber.StatusNotFound).SendString("Recipe not found")
	}
	return c.Status(fiber.StatusOK).JSON(recipe)
}

// HandleCreateRecipe creates a recipe authored by the session's chef.
// TokenRequired has already resolved the session and rejected
// unauthenticated callers.
func (h *RecipeHandler) HandleCreateRecipe(c *fiber.Ctx) error {
	chef, ok := c.Locals("chef").(models.Chef)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
	}

	var recipe models.Recipe
	if err := c.BodyParser(&recipe); err != nil {
		log.Printf("Error parsing recipe request body: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid recipe data")
	}

	recipe.ID = 0
	recipe.Author = chef
	recipe.AuthorID = chef.ID
	if err := h.service.SaveRecipe(&recipe); err != nil {
		log.Printf("Error creating recipe: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid recipe data")
	}
	return c.SendStatus(fiber.StatusCreated)
}

// HandleUpdateRecipe replaces a recipe's fields while keeping the
// author from the existing record, or 404s when the id is unknown.
func (h *RecipeHandler) HandleUpdateRecipe(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Recipe not found.")
	}

	existing, err := h.service.FindRecipe(id)
	if err != nil {
		log.Printf("Error getting recipe by ID %d: %v", id, err)
		return c.Status(fiber.StatusNotFound).SendString("Recipe not found.")
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).SendString("Recipe not found.")
	}

	var recipe models.Recipe
	if err := c.BodyParser(&recipe); err != nil {
		log.Printf("Error parsing recipe request body: %v", err)
		return c.Status(fiber.StatusBadRequest).SendString("Invalid recipe data")
	}

	recipe.ID = id
	recipe.Author = existing.Author
	recipe.AuthorID = existing.AuthorID
	if err := h.service.SaveRecipe(&recipe); err != nil {
		log.Printf("Error updating recipe %d: %v", id, err)
		return c.Status(fiber.StatusNotFound).SendString("Recipe not found.")
	}
	return c.Status(fiber.StatusOK).JSON(recipe)
}

// HandleDeleteRecipe deletes a recipe, or 404s when the id is unknown.
func (h *RecipeHandler) HandleDeleteRecipe(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Recipe not found.")
	}

	existing, err := h.service.FindRecipe(id)
	if err != nil {
		log.Printf("Error getting recipe by ID %d: %v", id, err)
		return c.Status(fiber.StatusNotFound).SendString("Recipe not found.")
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).SendString("Recipe not found.")
	}

	if err := h.service.DeleteRecipe(id); err != nil {
		log.Printf("Error deleting recipe %d: %v", id, err)
		return c.Status(fiber.StatusNotFound).SendString("Recipe not found.")
	}
	return c.Status(fiber.StatusOK).SendString("Recipe deleted successfully.")
}
