package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"chefbook/internal/models"
)

// GORMIngredientRepository is a GORM implementation of IngredientRepository.
type GORMIngredientRepository struct {
	db *gorm.DB
}

// NewGORMIngredientRepository creates a new instance of GORMIngredientRepository.
func NewGORMIngredientRepository(db *gorm.DB) *GORMIngredientRepository {
	return &GORMIngredientRepository{
		db: db,
	}
}

// GetAll retrieves all ingredients ordered by the given field and direction.
func (r *GORMIngredientRepository) GetAll(sortBy, sortDirection string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := r.db.Order(orderClause(sortBy, sortDirection, "name")).Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("failed to get all ingredients: %w", err)
	}
	return ingredients, nil
}

// GetByID retrieves a single ingredient by id, or (nil, nil) if absent.
func (r *GORMIngredientRepository) GetByID(id int) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.First(&ingredient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ingredient by ID %d: %w", id, err)
	}
	return &ingredient, nil
}

// Create inserts a new ingredient and fills in the generated id.
func (r *GORMIngredientRepository) Create(ingredient *models.Ingredient) error {
	if err := r.db.Create(ingredient).Error; err != nil {
		return fmt.Errorf("failed to create ingredient: %w", err)
	}
	return nil
}

// Update saves all fields of an existing ingredient.
func (r *GORMIngredientRepository) Update(ingredient *models.Ingredient) error {
	if err := r.db.Save(ingredient).Error; err != nil {
		return fmt.Errorf("failed to update ingredient: %w", err)
	}
	return nil
}

// Delete removes an ingredient by id. Deleting an unknown id is not an error.
func (r *GORMIngredientRepository) Delete(id int) error {
	if err := r.db.Delete(&models.Ingredient{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}
	return nil
}

// Search retrieves ingredients whose name contains term,
// case-insensitively, ordered by the given field and direction.
func (r *GORMIngredientRepository) Search(term, sortBy, sortDirection string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.
		Where("LOWER(name) LIKE ?", pattern).
		Order(orderClause(sortBy, sortDirection, "name")).
		Find(&ingredients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}
	return ingredients, nil
}
