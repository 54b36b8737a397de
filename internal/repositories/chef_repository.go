package repositories

import "chefbook/internal/models"

// ChefRepository defines the interface for chef data access.
//
// GetAll and Search return the full ordered result set; slicing into
// pages happens in the pagination package. Search matches the term as a
// case-insensitive substring of the username or email. GetByID returns
// (nil, nil) when no chef has the given id; a non-nil error always
// means the store itself failed.
type ChefRepository interface {
	GetAll(sortBy, sortDirection string) ([]models.Chef, error)
	GetByID(id int) (*models.Chef, error)
	Create(chef *models.Chef) error
	Update(chef *models.Chef) error
	Delete(id int) error
	Search(term, sortBy, sortDirection string) ([]models.Chef, error)
}
