package services

import (
	"log"

	"chefbook/internal/models"
	"chefbook/internal/pagination"
	"chefbook/internal/repositories"
	"chefbook/pkg/rabbitmq"
)

// RecipeService handles business logic related to recipes. A RabbitMQ
// client may be nil, in which case lifecycle events are skipped; event
// publishing is best-effort and never fails the operation.
type RecipeService struct {
	repo     repositories.RecipeRepository
	mqClient *rabbitmq.Client
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(repo repositories.RecipeRepository, mqClient *rabbitmq.Client) *RecipeService {
	return &RecipeService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// FindRecipe retrieves a single recipe by id, or (nil, nil) if absent.
func (s *RecipeService) FindRecipe(id int) (*models.Recipe, error) {
	return s.repo.GetByID(id)
}

// SearchRecipesPaged returns one page of the result set for term,
// matched against recipe names and instructions. The repository filters
// and orders; the slice is computed here.
func (s *RecipeService) SearchRecipesPaged(term string, opts pagination.Options) (pagination.Page[models.Recipe], error) {
	var (
		recipes []models.Recipe
		err     error
	)
	if term == "" {
		recipes, err = s.repo.GetAll(opts.SortBy, opts.SortDirection)
	} else {
		recipes, err = s.repo.Search(term, opts.SortBy, opts.SortDirection)
	}
	if err != nil {
		return pagination.Page[models.Recipe]{}, err
	}
	return pagination.Paginate(recipes, opts), nil
}

// SaveRecipe creates the recipe when its id is zero, updating the
// recipe's id in place, and updates the existing record otherwise. A
// recipe.created event is published for new recipes.
func (s *RecipeService) SaveRecipe(recipe *models.Recipe) error {
	if recipe.ID == 0 {
		if err := s.repo.Create(recipe); err != nil {
			return err
		}
		s.publishEvent("recipe.created", recipe)
		return nil
	}
	return s.repo.Update(recipe)
}

// DeleteRecipe deletes a recipe by id if it exists and publishes a
// recipe.deleted event.
func (s *RecipeService) DeleteRecipe(id int) error {
	recipe, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if recipe == nil {
		return nil
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publishEvent("recipe.deleted", recipe)
	return nil
}

func (s *RecipeService) publishEvent(event string, recipe *models.Recipe) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"recipeID": recipe.ID,
		"name":     recipe.Name,
		"authorID": recipe.AuthorID,
	}
	if err := s.mqClient.PublishRecipeEvent(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for recipe %d: %v", event, recipe.ID, err)
	}
}
