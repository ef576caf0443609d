package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
	"github.com/saifmalkurdi/Flavor-Table/internal/core/ports"
)

type stubProvider struct {
	searchFn func(ctx context.Context, ingredients string, number int) ([]ports.ProviderSearchResult, error)
	randomFn func(ctx context.Context) (*ports.ProviderRecipe, error)
	detailFn func(ctx context.Context, id string) (*ports.ProviderRecipeInformation, error)
}

func (s *stubProvider) FindByIngredients(ctx context.Context, ingredients string, number int) ([]ports.ProviderSearchResult, error) {
	return s.searchFn(ctx, ingredients, number)
}

func (s *stubProvider) RandomRecipe(ctx context.Context) (*ports.ProviderRecipe, error) {
	return s.randomFn(ctx)
}

func (s *stubProvider) RecipeInformation(ctx context.Context, id string) (*ports.ProviderRecipeInformation, error) {
	return s.detailFn(ctx, id)
}

type stubCache struct {
	entries map[string]*domain.RecipeDetail
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]*domain.RecipeDetail)}
}

func (c *stubCache) GetDetail(_ context.Context, id string) (*domain.RecipeDetail, error) {
	return c.entries[id], nil
}

func (c *stubCache) SetDetail(_ context.Context, id string, detail *domain.RecipeDetail) error {
	c.entries[id] = detail
	return nil
}

func newTestRecipeService(provider ports.RecipeProvider) *RecipeService {
	return NewRecipeService(provider, newStubCache(), zerolog.Nop())
}

func TestRecipeService_Search_EmptyIngredients(t *testing.T) {
	svc := newTestRecipeService(&stubProvider{})

	for _, raw := range []string{"", "   ", ", ,  ,"} {
		if _, err := svc.SearchByIngredients(context.Background(), raw, "10"); err != domain.ErrMissingIngredients {
			t.Fatalf("expected ErrMissingIngredients for %q, got %v", raw, err)
		}
	}
}

func TestRecipeService_Search_SanitizesAndClamps(t *testing.T) {
	var gotIngredients string
	var gotNumber int
	provider := &stubProvider{
		searchFn: func(_ context.Context, ingredients string, number int) ([]ports.ProviderSearchResult, error) {
			gotIngredients = ingredients
			gotNumber = number
			return nil, nil
		},
	}
	svc := newTestRecipeService(provider)

	if _, err := svc.SearchByIngredients(context.Background(), "tomato, Cheese ,", "999"); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if gotIngredients != "tomato,cheese" {
		t.Fatalf("expected sanitized %q, got %q", "tomato,cheese", gotIngredients)
	}
	if gotNumber != 50 {
		t.Fatalf("expected limit clamped to 50, got %d", gotNumber)
	}
}

func TestRecipeService_Search_LimitDefaults(t *testing.T) {
	var gotNumber int
	provider := &stubProvider{
		searchFn: func(_ context.Context, _ string, number int) ([]ports.ProviderSearchResult, error) {
			gotNumber = number
			return nil, nil
		},
	}
	svc := newTestRecipeService(provider)

	cases := map[string]int{
		"":    10,
		"abc": 10,
		"0":   1,
		"-5":  1,
		"7":   7,
	}
	for limit, want := range cases {
		if _, err := svc.SearchByIngredients(context.Background(), "tomato", limit); err != nil {
			t.Fatalf("search failed for limit %q: %v", limit, err)
		}
		if gotNumber != want {
			t.Fatalf("limit %q: expected %d, got %d", limit, want, gotNumber)
		}
	}
}

func TestRecipeService_Search_MapsResults(t *testing.T) {
	provider := &stubProvider{
		searchFn: func(_ context.Context, _ string, _ int) ([]ports.ProviderSearchResult, error) {
			return []ports.ProviderSearchResult{
				{
					ID:    101,
					Title: "Tomato Soup",
					Image: "soup.jpg",
					UsedIngredients: []ports.ProviderIngredient{
						{Name: "tomato", Original: "2 ripe tomatoes"},
					},
					MissedIngredients: []ports.ProviderIngredient{
						{Name: "basil"},
					},
				},
			}, nil
		},
	}
	svc := newTestRecipeService(provider)

	results, err := svc.SearchByIngredients(context.Background(), "tomato", "")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.ID != 101 || r.Title != "Tomato Soup" {
		t.Fatalf("unexpected result: %+v", r)
	}
	if len(r.UsedIngredients) != 1 || r.UsedIngredients[0] != "tomato" {
		t.Fatalf("expected used ingredient names, got %v", r.UsedIngredients)
	}
	if len(r.MissedIngredients) != 1 || r.MissedIngredients[0] != "basil" {
		t.Fatalf("expected missed ingredient names, got %v", r.MissedIngredients)
	}
}

func TestRecipeService_Random_NoneFound(t *testing.T) {
	provider := &stubProvider{
		randomFn: func(_ context.Context) (*ports.ProviderRecipe, error) {
			return nil, nil
		},
	}
	svc := newTestRecipeService(provider)

	if _, err := svc.Random(context.Background()); err != domain.ErrNoRecipeFound {
		t.Fatalf("expected ErrNoRecipeFound, got %v", err)
	}
}

func TestRecipeService_Random_PrefersStructuredSteps(t *testing.T) {
	provider := &stubProvider{
		randomFn: func(_ context.Context) (*ports.ProviderRecipe, error) {
			return &ports.ProviderRecipe{
				ID:           7,
				Title:        "Chili",
				Instructions: "raw fallback text",
				AnalyzedInstructions: []ports.ProviderInstructionBlock{
					{Steps: []ports.ProviderInstructionStep{
						{Step: "Chop the onion."},
						{Step: "Simmer for an hour."},
					}},
				},
				ExtendedIngredients: []ports.ProviderIngredient{
					{Name: "beans", Original: "1 can of beans"},
					{Name: "beef", Original: ""},
					{Name: "", Original: ""},
				},
			}, nil
		},
	}
	svc := newTestRecipeService(provider)

	recipe, err := svc.Random(context.Background())
	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	if recipe.Instructions != "Chop the onion. Simmer for an hour." {
		t.Fatalf("unexpected instructions: %q", recipe.Instructions)
	}
	if len(recipe.Ingredients) != 2 {
		t.Fatalf("expected blank ingredients dropped, got %v", recipe.Ingredients)
	}
	if recipe.Ingredients[0] != "1 can of beans" || recipe.Ingredients[1] != "beef" {
		t.Fatalf("unexpected ingredients: %v", recipe.Ingredients)
	}
	for _, ing := range recipe.Ingredients {
		if ing == "" {
			t.Fatalf("blank ingredient slipped through: %v", recipe.Ingredients)
		}
	}
}

func TestRecipeService_Random_FallsBackToRawInstructions(t *testing.T) {
	provider := &stubProvider{
		randomFn: func(_ context.Context) (*ports.ProviderRecipe, error) {
			return &ports.ProviderRecipe{
				ID:           8,
				Title:        "Toast",
				Instructions: "Toast the bread.",
			}, nil
		},
	}
	svc := newTestRecipeService(provider)

	recipe, err := svc.Random(context.Background())
	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	if recipe.Instructions != "Toast the bread." {
		t.Fatalf("unexpected instructions: %q", recipe.Instructions)
	}
}

func TestRecipeService_Detail_InvalidID(t *testing.T) {
	svc := newTestRecipeService(&stubProvider{})

	for _, id := range []string{"", "abc", "12a", "-5", "1.5"} {
		if _, err := svc.Detail(context.Background(), id); err != domain.ErrInvalidRecipeID {
			t.Fatalf("expected ErrInvalidRecipeID for %q, got %v", id, err)
		}
	}
}

func TestRecipeService_Detail_StripsMarkup(t *testing.T) {
	provider := &stubProvider{
		detailFn: func(_ context.Context, id string) (*ports.ProviderRecipeInformation, error) {
			return &ports.ProviderRecipeInformation{
				ID:             123,
				Title:          "Pasta",
				Summary:        `A <b>great</b> dish with <a href="x">history</a>.`,
				ReadyInMinutes: 25,
			}, nil
		},
	}
	svc := newTestRecipeService(provider)

	detail, err := svc.Detail(context.Background(), "123")
	if err != nil {
		t.Fatalf("Detail failed: %v", err)
	}
	if detail.Summary != "A great dish with history." {
		t.Fatalf("unexpected summary: %q", detail.Summary)
	}
	if detail.ReadyInMinutes != 25 {
		t.Fatalf("unexpected readyInMinutes: %d", detail.ReadyInMinutes)
	}
}

func TestRecipeService_Detail_UsesCache(t *testing.T) {
	calls := 0
	provider := &stubProvider{
		detailFn: func(_ context.Context, id string) (*ports.ProviderRecipeInformation, error) {
			calls++
			return &ports.ProviderRecipeInformation{ID: 9, Title: "Stew"}, nil
		},
	}
	svc := newTestRecipeService(provider)

	if _, err := svc.Detail(context.Background(), "9"); err != nil {
		t.Fatalf("first Detail failed: %v", err)
	}
	if _, err := svc.Detail(context.Background(), "9"); err != nil {
		t.Fatalf("second Detail failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", calls)
	}
}
