package ports

import (
	"context"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
)

type RecipeService interface {
	SearchByIngredients(ctx context.Context, raw string, limit string) ([]domain.RecipeSummary, error)
	Random(ctx context.Context) (*domain.RandomRecipe, error)
	Detail(ctx context.Context, id string) (*domain.RecipeDetail, error)
}
