package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"chefbook/internal/models"
)

// GORMChefRepository is a GORM implementation of ChefRepository.
type GORMChefRepository struct {
	db *gorm.DB
}

// NewGORMChefRepository creates a new instance of GORMChefRepository.
func NewGORMChefRepository(db *gorm.DB) *GORMChefRepository {
	return &GORMChefRepository{
		db: db,
	}
}

// GetAll retrieves all chefs ordered by the given field and direction.
func (r *GORMChefRepository) GetAll(sortBy, sortDirection string) ([]models.Chef, error) {
	var chefs []models.Chef
	if err := r.db.Order(orderClause(sortBy, sortDirection, "username")).Find(&chefs).Error; err != nil {
		return nil, fmt.Errorf("failed to get all chefs: %w", err)
	}
	return chefs, nil
}

// GetByID retrieves a single chef by id, or (nil, nil) if absent.
func (r *GORMChefRepository) GetByID(id int) (*models.Chef, error) {
	var chef models.Chef
	if err := r.db.First(&chef, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chef by ID %d: %w", id, err)
	}
	return &chef, nil
}

// Create inserts a new chef and fills in the generated id.
func (r *GORMChefRepository) Create(chef *models.Chef) error {
	if err := r.db.Create(chef).Error; err != nil {
		return fmt.Errorf("failed to create chef: %w", err)
	}
	return nil
}

// Update saves all fields of an existing chef.
func (r *GORMChefRepository) Update(chef *models.Chef) error {
	if err := r.db.Save(chef).Error; err != nil {
		return fmt.Errorf("failed to update chef: %w", err)
	}
	return nil
}

// Delete removes a chef by id. Deleting an unknown id is not an error.
func (r *GORMChefRepository) Delete(id int) error {
	if err := r.db.Delete(&models.Chef{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete chef: %w", err)
	}
	return nil
}

// Search retrieves chefs whose username or email contains term,
// case-insensitively, ordered by the given field and direction.
func (r *GORMChefRepository) Search(term, sortBy, sortDirection string) ([]models.Chef, error) {
	var chefs []models.Chef
	pattern := "%" + strings.ToLower(term) + "%"
	err := r.db.
		Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern).
		Order(orderClause(sortBy, sortDirection, "username")).
		Find(&chefs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search chefs: %w", err)
	}
	return chefs, nil
}

// orderClause builds the ORDER BY expression. The sort field and
// direction come straight from the query string, as the source system
// did; callers that want to harden this should map them through an
// allow-list first.
func orderClause(sortBy, sortDirection, defaultField string) string {
	if sortBy == "" {
		sortBy = defaultField
	}
	if sortDirection == "" {
		sortDirection = "asc"
	}
	return fmt.Sprintf("%s %s", sortBy, sortDirection)
}
