package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
	"github.com/saifmalkurdi/Flavor-Table/internal/core/ports"
)

// FavoriteService implements CRUD over the shared favorites collection.
// Title uniqueness is arbitrated by the store at commit time; this layer only
// performs input validation and normalisation.
type FavoriteService struct {
	repo ports.FavoriteRepository
	log  zerolog.Logger
}

func NewFavoriteService(repo ports.FavoriteRepository, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{repo: repo, log: log}
}

// List returns all favorites, most recently created first.
func (s *FavoriteService) List(ctx context.Context) ([]domain.Favorite, error) {
	return s.repo.List(ctx)
}

func (s *FavoriteService) Create(ctx context.Context, draft ports.FavoriteDraft) (*domain.Favorite, error) {
	fav, err := draftToFavorite(draft)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, fav)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("favorite_id", created.ID).Str("title", created.Title).Msg("favorite created")
	return created, nil
}

func (s *FavoriteService) Update(ctx context.Context, id int64, draft ports.FavoriteDraft) (*domain.Favorite, error) {
	fav, err := draftToFavorite(draft)
	if err != nil {
		return nil, err
	}
	fav.ID = id

	updated, err := s.repo.Update(ctx, fav)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("favorite_id", id).Msg("favorite updated")
	return updated, nil
}

// Delete removes a favorite and returns its id.
func (s *FavoriteService) Delete(ctx context.Context, id int64) (int64, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return 0, err
	}

	s.log.Info().Int64("favorite_id", id).Msg("favorite deleted")
	return id, nil
}

// draftToFavorite validates and normalises a client draft. A nil ingredient
// list becomes an empty one so the stored JSON is always an array.
func draftToFavorite(draft ports.FavoriteDraft) (*domain.Favorite, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, domain.ErrMissingTitle
	}

	ingredients := draft.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	return &domain.Favorite{
		Title:        title,
		Image:        draft.Image,
		Instructions: draft.Instructions,
		Ingredients:  ingredients,
		ReadyIn:      draft.ReadyIn,
	}, nil
}
