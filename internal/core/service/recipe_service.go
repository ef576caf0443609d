package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
	"github.com/saifmalkurdi/Flavor-Table/internal/core/ports"
)

const (
	defaultSearchLimit = 10
	minSearchLimit     = 1
	maxSearchLimit     = 50
)

var (
	recipeIDPattern = regexp.MustCompile(`^[0-9]+$`)
	htmlTagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// DetailCache abstracts the recipe-detail cache (Redis). A miss is reported
// as (nil, nil); cache failures are advisory and never fail a request.
type DetailCache interface {
	GetDetail(ctx context.Context, id string) (*domain.RecipeDetail, error)
	SetDetail(ctx context.Context, id string, detail *domain.RecipeDetail) error
}

// RecipeService normalises heterogeneous provider payloads into the stable
// internal recipe views. All operations are read-only single upstream calls.
type RecipeService struct {
	provider ports.RecipeProvider
	cache    DetailCache
	log      zerolog.Logger
}

func NewRecipeService(provider ports.RecipeProvider, cache DetailCache, log zerolog.Logger) *RecipeService {
	return &RecipeService{provider: provider, cache: cache, log: log}
}

// SearchByIngredients sanitises the raw comma-separated ingredient list and
// queries the provider. The limit string is clamped to [1, 50] and falls back
// to 10 when absent or non-numeric.
func (s *RecipeService) SearchByIngredients(ctx context.Context, raw string, limit string) ([]domain.RecipeSummary, error) {
	ingredients := sanitizeIngredients(raw)
	if ingredients == "" {
		return nil, domain.ErrMissingIngredients
	}

	number := clampLimit(limit)

	results, err := s.provider.FindByIngredients(ctx, ingredients, number)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.RecipeSummary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, domain.RecipeSummary{
			ID:                r.ID,
			Title:             r.Title,
			Image:             r.Image,
			UsedIngredients:   ingredientNames(r.UsedIngredients),
			MissedIngredients: ingredientNames(r.MissedIngredients),
		})
	}
	return summaries, nil
}

// Random fetches exactly one random recipe and normalises its instructions
// and ingredient descriptions.
func (s *RecipeService) Random(ctx context.Context) (*domain.RandomRecipe, error) {
	recipe, err := s.provider.RandomRecipe(ctx)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNoRecipeFound
	}

	return &domain.RandomRecipe{
		ID:             recipe.ID,
		Title:          recipe.Title,
		Image:          recipe.Image,
		Instructions:   normalizeInstructions(recipe),
		Ingredients:    normalizeIngredients(recipe.ExtendedIngredients),
		ReadyInMinutes: recipe.ReadyInMinutes,
	}, nil
}

// Detail fetches the information view for a numeric recipe id and strips all
// markup from the summary. Results are cached briefly; the cache is advisory.
func (s *RecipeService) Detail(ctx context.Context, id string) (*domain.RecipeDetail, error) {
	if !recipeIDPattern.MatchString(id) {
		return nil, domain.ErrInvalidRecipeID
	}

	if cached, err := s.cache.GetDetail(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("recipe_id", id).Msg("detail cache lookup failed")
	} else if cached != nil {
		return cached, nil
	}

	info, err := s.provider.RecipeInformation(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.RecipeDetail{
		ID:             info.ID,
		Title:          info.Title,
		Image:          info.Image,
		Summary:        htmlTagPattern.ReplaceAllString(info.Summary, ""),
		ReadyInMinutes: info.ReadyInMinutes,
	}

	if err := s.cache.SetDetail(ctx, id, detail); err != nil {
		s.log.Warn().Err(err).Str("recipe_id", id).Msg("failed to cache recipe detail")
	}

	return detail, nil
}

// sanitizeIngredients splits on commas, trims, lower-cases, drops empties,
// and rejoins into the provider's expected csv form.
func sanitizeIngredients(raw string) string {
	parts := strings.Split(raw, ",")
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ",")
}

func clampLimit(limit string) int {
	n, err := strconv.Atoi(strings.TrimSpace(limit))
	if err != nil {
		return defaultSearchLimit
	}
	if n < minSearchLimit {
		return minSearchLimit
	}
	if n > maxSearchLimit {
		return maxSearchLimit
	}
	return n
}

// normalizeInstructions prefers the structured step list, joined with single
// spaces, and falls back to the raw instructions string.
func normalizeInstructions(recipe *ports.ProviderRecipe) string {
	if len(recipe.AnalyzedInstructions) > 0 {
		steps := recipe.AnalyzedInstructions[0].Steps
		if len(steps) > 0 {
			parts := make([]string, 0, len(steps))
			for _, s := range steps {
				parts = append(parts, s.Step)
			}
			return strings.Join(parts, " ")
		}
	}
	return recipe.Instructions
}

// normalizeIngredients prefers the human-readable original description over
// the bare name, dropping blank entries.
func normalizeIngredients(ingredients []ports.ProviderIngredient) []string {
	out := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		s := ing.Original
		if s == "" {
			s = ing.Name
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func ingredientNames(ingredients []ports.ProviderIngredient) []string {
	names := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		names = append(names, ing.Name)
	}
	return names
}
