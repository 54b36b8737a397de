package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"chefbook/internal/models"
)

// GORMRecipeRepository is a GORM implementation of RecipeRepository.
// The Author association is read via Preload and written through
// AuthorID only, so saving a recipe never touches the chef row.
type GORMRecipeRepository struct {
	db *gorm.DB
}

// NewGORMRecipeRepository creates a new instance of GORMRecipeRepository.
func NewGORMRecipeRepository(db *gorm.DB) *GORMRecipeRepository {
	return &GORMRecipeRepository{
		db: db,
	}
}

// GetAll retrieves all recipes with their authors, ordered by the given
// field and direction.
func (r *GORMRecipeRepository) GetAll(sortBy, sortDirection string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.
		Preload("Author").
		Order(orderClause(sortBy, sortDirection, "name")).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all recipes: %w", err)
	}
	return recipes, nil
}

// GetByID retrieves a single recipe with its author, or (nil, nil) if absent.
func (r *GORMRecipeRepository) GetByID(id int) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.Preload("Author").First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recipe by ID %d: %w", id, err)
	}
	return &recipe, nil
}

// Create inserts a new recipe and fills in the generated id.
func (r *GORMRecipeRepository) Create(recipe *models.Recipe) error {
	if recipe.AuthorID == 0 {
		recipe.AuthorID = recipe.Author.ID
	}
	if err := r.db.Omit("Author").Create(recipe).Error; err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	return nil
}

// Update saves all fields of an existing recipe.
func (r *GORMRecipeRepository) Update(recipe *models.Recipe) error {
	if recipe.AuthorID == 0 {
		recipe.AuthorID = recipe.Author.ID
	}
	if err := r.db.Omit("Author").Save(recipe).Error; err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	return nil
}

// Delete removes a recipe by id. Deleting an unknown id is not an error.
func (r *GORMRecipeRepository) Delete(id int) error {
	if err := r.db.Delete(&models.Recipe{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

// Search retrieves recipes whose name or instructions contain term,
// case-insensitively, with their authors, ordered by the given field and
// direction.
func (r *GORMRecipeRepository) Search(term, sortBy, sortDirection string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.
		Preload("Author").
		Where("LOWER(name) LIKE ? OR LOWER(instructions) LIKE ?", pattern, pattern).
		Order(orderClause(sortBy, sortDirection, "name")).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	return recipes, nil
}
