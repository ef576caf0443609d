package ports

import (
	"context"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
)

// FavoriteDraft carries the client-supplied fields of a favorite.
type FavoriteDraft struct {
	Title        string
	Image        string
	Instructions string
	Ingredients  []string
	ReadyIn      *int
}

type FavoriteService interface {
	List(ctx context.Context) ([]domain.Favorite, error)
	Create(ctx context.Context, draft FavoriteDraft) (*domain.Favorite, error)
	Update(ctx context.Context, id int64, draft FavoriteDraft) (*domain.Favorite, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
