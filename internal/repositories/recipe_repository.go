package repositories

import "chefbook/internal/models"

// RecipeRepository defines the interface for recipe data access.
//
// GetAll and Search return the full ordered result set with authors
// populated; slicing into pages happens in the pagination package.
// Search matches the term as a case-insensitive substring of the name
// or instructions. GetByID returns (nil, nil) when no recipe has the
// given id; a non-nil error always means the store itself failed.
type RecipeRepository interface {
	GetAll(sortBy, sortDirection string) ([]models.Recipe, error)
	GetByID(id int) (*models.Recipe, error)
	Create(recipe *models.Recipe) error
	Update(recipe *models.Recipe) error
	Delete(id int) error
	Search(term, sortBy, sortDirection string) ([]models.Recipe, error)
}
