package repositories

import (
	"sort"
	"strings"
	"sync"

	"chefbook/internal/models"
)

// MockChefRepository is an in-memory implementation of ChefRepository.
type MockChefRepository struct {
	chefs  map[int]models.Chef
	nextID int
	mu     sync.RWMutex
}

// NewMockChefRepository creates a new instance of MockChefRepository.
func NewMockChefRepository() *MockChefRepository {
	return &MockChefRepository{
		chefs:  make(map[int]models.Chef),
		nextID: 1,
	}
}

// GetAll returns all chefs, sorted.
func (r *MockChefRepository) GetAll(sortBy, sortDirection string) ([]models.Chef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chefList := make([]models.Chef, 0, len(r.chefs))
	for _, chef := range r.chefs {
		chefList = append(chefList, chef)
	}
	sortChefs(chefList, sortBy, sortDirection)
	return chefList, nil
}

// GetByID returns a chef by id, or (nil, nil) if absent.
func (r *MockChefRepository) GetByID(id int) (*models.Chef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chef, ok := r.chefs[id]
	if !ok {
		return nil, nil
	}
	return &chef, nil
}

// Create adds a new chef, assigning the next id.
func (r *MockChefRepository) Create(chef *models.Chef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if chef.ID == 0 {
		chef.ID = r.nextID
		r.nextID++
	} else if chef.ID >= r.nextID {
		r.nextID = chef.ID + 1
	}
	r.chefs[chef.ID] = *chef
	return nil
}

// Update modifies an existing chef. Unknown ids are ignored.
func (r *MockChefRepository) Update(chef *models.Chef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.chefs[chef.ID]; ok {
		r.chefs[chef.ID] = *chef
	}
	return nil
}

// Delete removes a chef by id. Unknown ids are ignored.
func (r *MockChefRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.chefs, id)
	return nil
}

// Search returns chefs whose username or email contains term,
// case-insensitively, sorted.
func (r *MockChefRepository) Search(term, sortBy, sortDirection string) ([]models.Chef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowered := strings.ToLower(term)
	var matches []models.Chef
	for _, chef := range r.chefs {
		if strings.Contains(strings.ToLower(chef.Username), lowered) ||
			strings.Contains(strings.ToLower(chef.Email), lowered) {
			matches = append(matches, chef)
		}
	}
	sortChefs(matches, sortBy, sortDirection)
	return matches, nil
}

func sortChefs(chefs []models.Chef, sortBy, sortDirection string) {
	desc := strings.EqualFold(sortDirection, "desc")
	sort.Slice(chefs, func(i, j int) bool {
		a, b := chefs[i], chefs[j]
		if desc {
			a, b = b, a
		}
		switch sortBy {
		case "email":
			return a.Email < b.Email
		case "id":
			return a.ID < b.ID
		default:
			return a.Username < b.Username
		}
	})
}
