package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chefbook/internal/models"
	"chefbook/internal/pagination"
	"chefbook/internal/repositories"
	"chefbook/internal/services"
)

func TestIngredientService_SaveAndFind(t *testing.T) {
	repo := repositories.NewMockIngredientRepository()
	service := services.NewIngredientService(repo)

	ingredient := models.Ingredient{Name: "carrot"}
	assert.NoError(t, service.SaveIngredient(&ingredient))
	assert.NotZero(t, ingredient.ID)

	found, err := service.FindIngredient(ingredient.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, "carrot", found.Name)
	}

	ingredient.Name = "baby carrot"
	assert.NoError(t, service.SaveIngredient(&ingredient))

	found, err = service.FindIngredient(ingredient.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, found) {
		assert.Equal(t, "baby carrot", found.Name)
	}
}

func TestIngredientService_Delete(t *testing.T) {
	repo := repositories.NewMockIngredientRepository()
	service := services.NewIngredientService(repo)

	ingredient := models.Ingredient{Name: "salt"}
	assert.NoError(t, service.SaveIngredient(&ingredient))

	assert.NoError(t, service.DeleteIngredient(ingredient.ID))

	found, err := service.FindIngredient(ingredient.ID)
	assert.NoError(t, err)
	assert.Nil(t, found)

	assert.NoError(t, service.DeleteIngredient(99))
}

func TestIngredientService_SearchUnpaged(t *testing.T) {
	repo := repositories.NewMockIngredientRepository()
	service := services.NewIngredientService(repo)
	for _, name := range []string{"sugar", "salt", "Saffron", "pepper"} {
		ingredient := models.Ingredient{Name: name}
		assert.NoError(t, service.SaveIngredient(&ingredient))
	}

	// Empty term returns everything, ordered by name.
	all, err := service.SearchIngredients("")
	assert.NoError(t, err)
	assert.Len(t, all, 4)

	// Case-insensitive substring match.
	matches, err := service.SearchIngredients("sa")
	assert.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = service.SearchIngredients("anchovy")
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestIngredientService_SearchPaged(t *testing.T) {
	repo := repositories.NewMockIngredientRepository()
	service := services.NewIngredientService(repo)
	for _, name := range []string{"basil", "bay leaf", "black pepper", "butter"} {
		ingredient := models.Ingredient{Name: name}
		assert.NoError(t, service.SaveIngredient(&ingredient))
	}

	page, err := service.SearchIngredientsPaged("b", pagination.NewOptions(2, 3, "name", "asc"))
	assert.NoError(t, err)
	assert.Equal(t, 4, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	if assert.Len(t, page.Items, 1) {
		assert.Equal(t, "butter", page.Items[0].Name)
	}
}
