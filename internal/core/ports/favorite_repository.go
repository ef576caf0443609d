package ports

import (
	"context"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
)

// FavoriteRepository defines the interface for favorite persistence. The
// backing store owns the title-uniqueness invariant: Create and Update must
// return domain.ErrDuplicateFavorite when a constraint violation is detected
// at commit time, so concurrent writers can never produce silent duplicates.
type FavoriteRepository interface {
	List(ctx context.Context) ([]domain.Favorite, error)
	Create(ctx context.Context, fav *domain.Favorite) (*domain.Favorite, error)
	Update(ctx context.Context, fav *domain.Favorite) (*domain.Favorite, error)
	Delete(ctx context.Context, id int64) error
}
