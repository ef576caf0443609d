package domain

// Provider-sourced recipe views. These are ephemeral request/response shapes
// normalised from the upstream provider; they are never persisted as-is.

// RecipeSummary is one ingredient-search hit.
type RecipeSummary struct {
	ID                int64    `json:"id"`
	Title             string   `json:"title"`
	Image             string   `json:"image"`
	UsedIngredients   []string `json:"usedIngredients"`
	MissedIngredients []string `json:"missedIngredients"`
}

// RandomRecipe is a single random pick with normalised instructions and
// ingredient descriptions.
type RandomRecipe struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Image          string   `json:"image"`
	Instructions   string   `json:"instructions"`
	Ingredients    []string `json:"ingredients"`
	ReadyInMinutes *int     `json:"readyInMinutes"`
}

// RecipeDetail is the information view for one recipe; Summary holds plain
// text with all markup stripped.
type RecipeDetail struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	Summary        string `json:"summary"`
	ReadyInMinutes int    `json:"readyInMinutes"`
}
