package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
	"github.com/saifmalkurdi/Flavor-Table/internal/core/ports"
)

type stubFavoriteRepo struct {
	favorites map[int64]*domain.Favorite
	nextID    int64
}

func newStubFavoriteRepo() *stubFavoriteRepo {
	return &stubFavoriteRepo{favorites: make(map[int64]*domain.Favorite), nextID: 1}
}

func (r *stubFavoriteRepo) List(_ context.Context) ([]domain.Favorite, error) {
	out := make([]domain.Favorite, 0, len(r.favorites))
	for id := r.nextID - 1; id >= 1; id-- {
		if fav, ok := r.favorites[id]; ok {
			out = append(out, *fav)
		}
	}
	return out, nil
}

func (r *stubFavoriteRepo) Create(_ context.Context, fav *domain.Favorite) (*domain.Favorite, error) {
	for _, existing := range r.favorites {
		if existing.Title == fav.Title {
			return nil, domain.ErrDuplicateFavorite
		}
	}
	created := *fav
	created.ID = r.nextID
	r.nextID++
	r.favorites[created.ID] = &created
	return &created, nil
}

func (r *stubFavoriteRepo) Update(_ context.Context, fav *domain.Favorite) (*domain.Favorite, error) {
	if _, ok := r.favorites[fav.ID]; !ok {
		return nil, domain.ErrFavoriteNotFound
	}
	for id, existing := range r.favorites {
		if id != fav.ID && existing.Title == fav.Title {
			return nil, domain.ErrDuplicateFavorite
		}
	}
	updated := *fav
	r.favorites[fav.ID] = &updated
	return &updated, nil
}

func (r *stubFavoriteRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.favorites[id]; !ok {
		return domain.ErrFavoriteNotFound
	}
	delete(r.favorites, id)
	return nil
}

func newTestFavoriteService(repo ports.FavoriteRepository) *FavoriteService {
	return NewFavoriteService(repo, zerolog.Nop())
}

func TestFavoriteService_Create_EmptyTitle(t *testing.T) {
	svc := newTestFavoriteService(newStubFavoriteRepo())

	for _, title := range []string{"", "   ", "\t"} {
		if _, err := svc.Create(context.Background(), ports.FavoriteDraft{Title: title}); err != domain.ErrMissingTitle {
			t.Fatalf("expected ErrMissingTitle for %q, got %v", title, err)
		}
	}
}

func TestFavoriteService_Create_NormalizesIngredients(t *testing.T) {
	svc := newTestFavoriteService(newStubFavoriteRepo())

	created, err := svc.Create(context.Background(), ports.FavoriteDraft{Title: " Chili "})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Title != "Chili" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.Ingredients == nil || len(created.Ingredients) != 0 {
		t.Fatalf("expected empty ingredient list, got %v", created.Ingredients)
	}
}

func TestFavoriteService_Create_Duplicate(t *testing.T) {
	svc := newTestFavoriteService(newStubFavoriteRepo())

	if _, err := svc.Create(context.Background(), ports.FavoriteDraft{Title: "Soup"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.FavoriteDraft{Title: "Soup", Image: "x.jpg"}); err != domain.ErrDuplicateFavorite {
		t.Fatalf("expected ErrDuplicateFavorite, got %v", err)
	}

	favorites, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	count := 0
	for _, f := range favorites {
		if f.Title == "Soup" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one Soup, got %d", count)
	}
}

func TestFavoriteService_Update_Lifecycle(t *testing.T) {
	svc := newTestFavoriteService(newStubFavoriteRepo())

	created, err := svc.Create(context.Background(), ports.FavoriteDraft{
		Title:       "Chili",
		Ingredients: []string{"beans", "beef"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// empty title leaves the stored favorite unchanged
	if _, err := svc.Update(context.Background(), created.ID, ports.FavoriteDraft{Title: ""}); err != domain.ErrMissingTitle {
		t.Fatalf("expected ErrMissingTitle, got %v", err)
	}
	favorites, _ := svc.List(context.Background())
	if len(favorites) != 1 || favorites[0].Title != "Chili" {
		t.Fatalf("favorite changed after failed update: %+v", favorites)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.FavoriteDraft{
		Title:       "Chili v2",
		Ingredients: []string{"beans"},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Chili v2" || len(updated.Ingredients) != 1 {
		t.Fatalf("unexpected updated favorite: %+v", updated)
	}
}

func TestFavoriteService_Update_NotFound(t *testing.T) {
	svc := newTestFavoriteService(newStubFavoriteRepo())

	if _, err := svc.Update(context.Background(), 404, ports.FavoriteDraft{Title: "Ghost"}); err != domain.ErrFavoriteNotFound {
		t.Fatalf("expected ErrFavoriteNotFound, got %v", err)
	}
}

func TestFavoriteService_Delete(t *testing.T) {
	svc := newTestFavoriteService(newStubFavoriteRepo())

	created, err := svc.Create(context.Background(), ports.FavoriteDraft{Title: "Stew"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	id, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if id != created.ID {
		t.Fatalf("expected deleted id %d, got %d", created.ID, id)
	}

	if _, err := svc.Delete(context.Background(), created.ID); err != domain.ErrFavoriteNotFound {
		t.Fatalf("expected ErrFavoriteNotFound on second delete, got %v", err)
	}

	favorites, _ := svc.List(context.Background())
	if len(favorites) != 0 {
		t.Fatalf("expected empty list after delete, got %+v", favorites)
	}
}
