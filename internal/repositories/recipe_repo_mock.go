package repositories

import (
	"sort"
	"strings"
	"sync"

	"chefbook/internal/models"
)

// MockRecipeRepository is an in-memory implementation of RecipeRepository.
type MockRecipeRepository struct {
	recipes map[int]models.Recipe
	nextID  int
	mu      sync.RWMutex
}

// NewMockRecipeRepository creates a new instance of MockRecipeRepository.
func NewMockRecipeRepository() *MockRecipeRepository {
	return &MockRecipeRepository{
		recipes: make(map[int]models.Recipe),
		nextID:  1,
	}
}

// GetAll returns all recipes, sorted.
func (r *MockRecipeRepository) GetAll(sortBy, sortDirection string) ([]models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipeList := make([]models.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		recipeList = append(recipeList, recipe)
	}
	sortRecipes(recipeList, sortBy, sortDirection)
	return recipeList, nil
}

// GetByID returns a recipe by id, or (nil, nil) if absent.
func (r *MockRecipeRepository) GetByID(id int) (*models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipe, ok := r.recipes[id]
	if !ok {
		return nil, nil
	}
	return &recipe, nil
}

// Create adds a new recipe, assigning the next id.
func (r *MockRecipeRepository) Create(recipe *models.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if recipe.ID == 0 {
		recipe.ID = r.nextID
		r.nextID++
	} else if recipe.ID >= r.nextID {
		r.nextID = recipe.ID + 1
	}
	if recipe.AuthorID == 0 {
		recipe.AuthorID = recipe.Author.ID
	}
	r.recipes[recipe.ID] = *recipe
	return nil
}

// Update modifies an existing recipe. Unknown ids are ignored.
func (r *MockRecipeRepository) Update(recipe *models.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if recipe.AuthorID == 0 {
		recipe.AuthorID = recipe.Author.ID
	}
	if _, ok := r.recipes[recipe.ID]; ok {
		r.recipes[recipe.ID] = *recipe
	}
	return nil
}

// Delete removes a recipe by id. Unknown ids are ignored.
func (r *MockRecipeRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.recipes, id)
	return nil
}

// Search returns recipes whose name or instructions contain term,
// case-insensitively, sorted.
func (r *MockRecipeRepository) Search(term, sortBy, sortDirection string) ([]models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowered := strings.ToLower(term)
	var matches []models.Recipe
	for _, recipe := range r.recipes {
		if strings.Contains(strings.ToLower(recipe.Name), lowered) ||
			strings.Contains(strings.ToLower(recipe.Instructions), lowered) {
			matches = append(matches, recipe)
		}
	}
	sortRecipes(matches, sortBy, sortDirection)
	return matches, nil
}

func sortRecipes(recipes []models.Recipe, sortBy, sortDirection string) {
	desc := strings.EqualFold(sortDirection, "desc")
	sort.Slice(recipes, func(i, j int) bool {
		a, b := recipes[i], recipes[j]
		if desc {
			a, b = b, a
		}
		switch sortBy {
		case "instructions":
			return a.Instructions < b.Instructions
		case "id":
			return a.ID < b.ID
		default:
			return a.Name < b.Name
		}
	})
}
