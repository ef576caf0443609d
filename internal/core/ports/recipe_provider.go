package ports

import "context"

// Provider DTOs mirror the upstream payloads closely enough to normalise
// from; only the fields the service reads are declared.

// ProviderSearchResult is one raw hit from the ingredient-search endpoint.
type ProviderSearchResult struct {
	ID                int64                `json:"id"`
	Title             string               `json:"title"`
	Image             string               `json:"image"`
	UsedIngredients   []ProviderIngredient `json:"usedIngredients"`
	MissedIngredients []ProviderIngredient `json:"missedIngredients"`
}

type ProviderIngredient struct {
	Name     string `json:"name"`
	Original string `json:"original"`
}

// ProviderInstructionStep is one step of a structured instruction block.
type ProviderInstructionStep struct {
	Step string `json:"step"`
}

type ProviderInstructionBlock struct {
	Steps []ProviderInstructionStep `json:"steps"`
}

// ProviderRecipe is the raw random-recipe payload.
type ProviderRecipe struct {
	ID                   int64                      `json:"id"`
	Title                string                     `json:"title"`
	Image                string                     `json:"image"`
	Instructions         string                     `json:"instructions"`
	AnalyzedInstructions []ProviderInstructionBlock `json:"analyzedInstructions"`
	ExtendedIngredients  []ProviderIngredient       `json:"extendedIngredients"`
	ReadyInMinutes       *int                       `json:"readyInMinutes"`
}

// ProviderRecipeInformation is the raw detail payload; Summary is HTML.
type ProviderRecipeInformation struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	Summary        string `json:"summary"`
	ReadyInMinutes int    `json:"readyInMinutes"`
}

// RecipeProvider is the outbound interface to the external recipe source.
// Every call is a single upstream request with no retry; failures surface as
// *domain.UpstreamError.
type RecipeProvider interface {
	FindByIngredients(ctx context.Context, ingredients string, number int) ([]ProviderSearchResult, error)
	RandomRecipe(ctx context.Context) (*ProviderRecipe, error)
	RecipeInformation(ctx context.Context, id string) (*ProviderRecipeInformation, error)
}
