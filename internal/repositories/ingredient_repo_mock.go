package repositories

import (
	"sort"
	"strings"
	"sync"

	"chefbook/internal/models"
)

// MockIngredientRepository is an in-memory implementation of IngredientRepository.
type MockIngredientRepository struct {
	ingredients map[int]models.Ingredient
	nextID      int
	mu          sync.RWMutex
}

// NewMockIngredientRepository creates a new instance of MockIngredientRepository.
func NewMockIngredientRepository() *MockIngredientRepository {
	return &MockIngredientRepository{
		ingredients: make(map[int]models.Ingredient),
		nextID:      1,
	}
}

// GetAll returns all ingredients, sorted.
func (r *MockIngredientRepository) GetAll(sortBy, sortDirection string) ([]models.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ingredientList := make([]models.Ingredient, 0, len(r.ingredients))
	for _, ingredient := range r.ingredients {
		ingredientList = append(ingredientList, ingredient)
	}
	sortIngredients(ingredientList, sortBy, sortDirection)
	return ingredientList, nil
}

// GetByID returns an ingredient by id, or (nil, nil) if absent.
func (r *MockIngredientRepository) GetByID(id int) (*models.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ingredient, ok := r.ingredients[id]
	if !ok {
		return nil, nil
	}
	return &ingredient, nil
}

// Create adds a new ingredient, assigning the next id.
func (r *MockIngredientRepository) Create(ingredient *models.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ingredient.ID == 0 {
		ingredient.ID = r.nextID
		r.nextID++
	} else if ingredient.ID >= r.nextID {
		r.nextID = ingredient.ID + 1
	}
	r.ingredients[ingredient.ID] = *ingredient
	return nil
}

// Update modifies an existing ingredient. Unknown ids are ignored.
func (r *MockIngredientRepository) Update(ingredient *models.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ingredients[ingredient.ID]; ok {
		r.ingredients[ingredient.ID] = *ingredient
	}
	return nil
}

// Delete removes an ingredient by id. Unknown ids are ignored.
func (r *MockIngredientRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.ingredients, id)
	return nil
}

// Search returns ingredients whose name contains term,
// case-insensitively, sorted.
func (r *MockIngredientRepository) Search(term, sortBy, sortDirection string) ([]models.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowered := strings.ToLower(term)
	var matches []models.Ingredient
	for _, ingredient := range r.ingredients {
		if strings.Contains(strings.ToLower(ingredient.Name), lowered) {
			matches = append(matches, ingredient)
		}
	}
	sortIngredients(matches, sortBy, sortDirection)
	return matches, nil
}

func sortIngredients(ingredients []models.Ingredient, sortBy, sortDirection string) {
	desc := strings.EqualFold(sortDirection, "desc")
	sort.Slice(ingredients, func(i, j int) bool {
		a, b := ingredients[i], ingredients[j]
		if desc {
			a, b = b, a
		}
		switch sortBy {
		case "id":
			return a.ID < b.ID
		default:
			return a.Name < b.Name
		}
	})
}
