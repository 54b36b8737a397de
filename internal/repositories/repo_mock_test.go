package repositories_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"chefbook/internal/models"
	"chefbook/internal/repositories"
)

func TestMockIngredientRepository_DescendingSortWithDuplicateNames(t *testing.T) {
	repo := repositories.NewMockIngredientRepository()
	for i := 0; i < 4; i++ {
		assert.NoError(t, repo.Create(&models.Ingredient{Name: "salt"}))
	}
	for _, name := range []string{"pepper", "sugar", "pepper"} {
		assert.NoError(t, repo.Create(&models.Ingredient{Name: name}))
	}

	ingredients, err := repo.GetAll("name", "desc")
	assert.NoError(t, err)
	assert.Len(t, ingredients, 7)

	// Duplicate keys must still come out in non-increasing order.
	for i := 1; i < len(ingredients); i++ {
		assert.GreaterOrEqual(t, ingredients[i-1].Name, ingredients[i].Name,
			"names out of order at index %d", i)
	}
	assert.Equal(t, "sugar", ingredients[0].Name)
	assert.Equal(t, "pepper", ingredients[len(ingredients)-1].Name)
}

func TestMockChefRepository_DescendingIsReverseOfAscending(t *testing.T) {
	repo := repositories.NewMockChefRepository()
	for i := 0; i < 5; i++ {
		assert.NoError(t, repo.Create(&models.Chef{
			Username: fmt.Sprintf("chef%d", i),
			Email:    fmt.Sprintf("chef%d@example.com", i),
		}))
	}

	ascending, err := repo.GetAll("username", "asc")
	assert.NoError(t, err)
	descending, err := repo.GetAll("username", "desc")
	assert.NoError(t, err)

	assert.Len(t, descending, len(ascending))
	for i := range ascending {
		assert.Equal(t, ascending[i].Username, descending[len(descending)-1-i].Username)
	}
}

func TestMockRecipeRepository_DescendingSortWithDuplicateNames(t *testing.T) {
	repo := repositories.NewMockRecipeRepository()
	for i := 0; i < 3; i++ {
		assert.NoError(t, repo.Create(&models.Recipe{Name: "stew", Instructions: fmt.Sprintf("v%d", i)}))
	}
	assert.NoError(t, repo.Create(&models.Recipe{Name: "bread"}))
	assert.NoError(t, repo.Create(&models.Recipe{Name: "tart"}))

	recipes, err := repo.GetAll("name", "desc")
	assert.NoError(t, err)
	assert.Len(t, recipes, 5)

	for i := 1; i < len(recipes); i++ {
		assert.GreaterOrEqual(t, recipes[i-1].Name, recipes[i].Name,
			"names out of order at index %d", i)
	}
	assert.Equal(t, "tart", recipes[0].Name)
	assert.Equal(t, "bread", recipes[len(recipes)-1].Name)
}
