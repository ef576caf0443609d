package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
	"github.com/saifmalkurdi/Flavor-Table/internal/core/ports"
)

type stubFavoriteService struct {
	listFn   func(ctx context.Context) ([]domain.Favorite, error)
	createFn func(ctx context.Context, draft ports.FavoriteDraft) (*domain.Favorite, error)
	updateFn func(ctx context.Context, id int64, draft ports.FavoriteDraft) (*domain.Favorite, error)
	deleteFn func(ctx context.Context, id int64) (int64, error)
}

func (s *stubFavoriteService) List(ctx context.Context) ([]domain.Favorite, error) {
	return s.listFn(ctx)
}

func (s *stubFavoriteService) Create(ctx context.Context, draft ports.FavoriteDraft) (*domain.Favorite, error) {
	return s.createFn(ctx, draft)
}

func (s *stubFavoriteService) Update(ctx context.Context, id int64, draft ports.FavoriteDraft) (*domain.Favorite, error) {
	return s.updateFn(ctx, id, draft)
}

func (s *stubFavoriteService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.deleteFn(ctx, id)
}

func TestFavoriteHandler_List(t *testing.T) {
	stub := &stubFavoriteService{
		listFn: func(_ context.Context) ([]domain.Favorite, error) {
			return []domain.Favorite{
				{ID: 2, Title: "Chili", Ingredients: []string{"beans"}},
				{ID: 1, Title: "Soup", Ingredients: []string{}},
			}, nil
		},
	}
	h := NewFavoriteHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/favorites", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var favorites []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &favorites); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(favorites) != 2 || favorites[0]["title"] != "Chili" {
		t.Fatalf("unexpected payload: %v", favorites)
	}
}

func TestFavoriteHandler_Create_Success(t *testing.T) {
	stub := &stubFavoriteService{
		createFn: func(_ context.Context, draft ports.FavoriteDraft) (*domain.Favorite, error) {
			if draft.Title != "Chili" || len(draft.Ingredients) != 2 {
				t.Fatalf("unexpected draft: %+v", draft)
			}
			return &domain.Favorite{ID: 5, Title: draft.Title, Ingredients: draft.Ingredients}, nil
		},
	}
	h := NewFavoriteHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/favorites",
		`{"title":"Chili","ingredients":["beans","beef"]}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var created map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if created["id"] != float64(5) {
		t.Fatalf("expected assigned id, got %v", created)
	}
}

func TestFavoriteHandler_Create_MissingTitle(t *testing.T) {
	h := NewFavoriteHandler(&stubFavoriteService{})

	c, _ := newTestContext(t, http.MethodPost, "/favorites", `{"image":"x.jpg"}`)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestFavoriteHandler_Create_Duplicate(t *testing.T) {
	stub := &stubFavoriteService{
		createFn: func(_ context.Context, _ ports.FavoriteDraft) (*domain.Favorite, error) {
			return nil, domain.ErrDuplicateFavorite
		},
	}
	h := NewFavoriteHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/favorites", `{"title":"Soup"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrDuplicateFavorite) {
		t.Fatalf("expected ErrDuplicateFavorite, got %v", err)
	}
}

func TestFavoriteHandler_Update_InvalidID(t *testing.T) {
	h := NewFavoriteHandler(&stubFavoriteService{})

	c, _ := newTestContext(t, http.MethodPut, "/favorites/abc", `{"title":"Soup"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Update(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestFavoriteHandler_Update_NotFound(t *testing.T) {
	stub := &stubFavoriteService{
		updateFn: func(_ context.Context, id int64, _ ports.FavoriteDraft) (*domain.Favorite, error) {
			return nil, domain.ErrFavoriteNotFound
		},
	}
	h := NewFavoriteHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/favorites/404", `{"title":"Ghost"}`)
	c.SetParamNames("id")
	c.SetParamValues("404")

	if err := h.Update(c); !errors.Is(err, domain.ErrFavoriteNotFound) {
		t.Fatalf("expected ErrFavoriteNotFound, got %v", err)
	}
}

func TestFavoriteHandler_Delete_Success(t *testing.T) {
	stub := &stubFavoriteService{
		deleteFn: func(_ context.Context, id int64) (int64, error) {
			if id != 9 {
				t.Fatalf("unexpected id: %d", id)
			}
			return id, nil
		},
	}
	h := NewFavoriteHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/favorites/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(9) {
		t.Fatalf("expected deleted id, got %v", resp)
	}
}
