package services

import (
	"chefbook/internal/models"
	"chefbook/internal/pagination"
	"chefbook/internal/repositories"
)

// IngredientService handles business logic related to ingredients.
type IngredientService struct {
	repo repositories.IngredientRepository
}

// NewIngredientService creates a new IngredientService.
func NewIngredientService(repo repositories.IngredientRepository) *IngredientService {
	return &IngredientService{
		repo: repo,
	}
}

// FindIngredient retrieves a single ingredient by id, or (nil, nil) if absent.
func (s *IngredientService) FindIngredient(id int) (*models.Ingredient, error) {
	return s.repo.GetByID(id)
}

// SearchIngredients returns the full result set for term, unsliced,
// ordered by name. An empty term matches every ingredient.
func (s *IngredientService) SearchIngredients(term string) ([]models.Ingredient, error) {
	if term == "" {
		return s.repo.GetAll("name", "asc")
	}
	return s.repo.Search(term, "name", "asc")
}

// SearchIngredientsPaged returns one page of the result set for term.
// The repository filters and orders; the slice is computed here.
func (s *IngredientService) SearchIngredientsPaged(term string, opts pagination.Options) (pagination.Page[models.Ingredient], error) {
	var (
		ingredients []models.Ingredient
		err         error
	)
	if term == "" {
		ingredients, err = s.repo.GetAll(opts.SortBy, opts.SortDirection)
	} else {
		ingredients, err = s.repo.Search(term, opts.SortBy, opts.SortDirection)
	}
	if err != nil {
		return pagination.Page[models.Ingredient]{}, err
	}
	return pagination.Paginate(ingredients, opts), nil
}

// SaveIngredient creates the ingredient when its id is zero, updating
// the ingredient's id in place, and updates the existing record
// otherwise.
func (s *IngredientService) SaveIngredient(ingredient *models.Ingredient) error {
	if ingredient.ID == 0 {
		return s.repo.Create(ingredient)
	}
	return s.repo.Update(ingredient)
}

// DeleteIngredient deletes an ingredient by id if it exists.
func (s *IngredientService) DeleteIngredient(id int) error {
	ingredient, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ingredient == nil {
		return nil
	}
	return s.repo.Delete(id)
}
