package services

import (
	"chefbook/internal/models"
	"chefbook/internal/pagination"
	"chefbook/internal/repositories"
)

// ChefService handles business logic related to chefs.
type ChefService struct {
	repo repositories.ChefRepository
}

// NewChefService creates a new ChefService.
func NewChefService(repo repositories.ChefRepository) *ChefService {
	return &ChefService{
		repo: repo,
	}
}

// FindChef retrieves a single chef by id, or (nil, nil) if absent.
func (s *ChefService) FindChef(id int) (*models.Chef, error) {
	return s.repo.GetByID(id)
}

// SearchChefs returns the full result set for term, unsliced, ordered
// by username. An empty term matches every chef.
func (s *ChefService) SearchChefs(term string) ([]models.Chef, error) {
	if term == "" {
		return s.repo.GetAll("username", "asc")
	}
	return s.repo.Search(term, "username", "asc")
}

// SearchChefsPaged returns one page of the result set for term. The
// repository filters and orders; the slice is computed here.
func (s *ChefService) SearchChefsPaged(term string, opts pagination.Options) (pagination.Page[models.Chef], error) {
	var (
		chefs []models.Chef
		err   error
	)
	if term == "" {
		chefs, err = s.repo.GetAll(opts.SortBy, opts.SortDirection)
	} else {
		chefs, err = s.repo.Search(term, opts.SortBy, opts.SortDirection)
	}
	if err != nil {
		return pagination.Page[models.Chef]{}, err
	}
	return pagination.Paginate(chefs, opts), nil
}

// SaveChef creates the chef when its id is zero, updating the chef's id
// in place, and updates the existing record otherwise.
func (s *ChefService) SaveChef(chef *models.Chef) error {
	if chef.ID == 0 {
		return s.repo.Create(chef)
	}
	return s.repo.Update(chef)
}

// DeleteChef deletes a chef by id if it exists.
func (s *ChefService) DeleteChef(id int) error {
	chef, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if chef == nil {
		return nil
	}
	return s.repo.Delete(id)
}
