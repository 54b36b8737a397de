package repositories

import "chefbook/internal/models"

// IngredientRepository defines the interface for ingredient data access.
//
// GetAll and Search return the full ordered result set; slicing into
// pages happens in the pagination package. Search matches the term as a
// case-insensitive substring of the name. GetByID returns (nil, nil)
// when no ingredient has the given id; a non-nil error always means the
// store itself failed.
type IngredientRepository interface {
	GetAll(sortBy, sortDirection string) ([]models.Ingredient, error)
	GetByID(id int) (*models.Ingredient, error)
	Create(ingredient *models.Ingredient) error
	Update(ingredient *models.Ingredient) error
	Delete(id int) error
	Search(term, sortBy, sortDirection string) ([]models.Ingredient, error)
}
