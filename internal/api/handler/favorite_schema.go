package handler

// favoriteRequest is the draft shape for creating or updating a favorite.
// Ingredients defaults to an empty list downstream when absent.
type favoriteRequest struct {
	Title        string   `json:"title" validate:"required"`
	Image        string   `json:"image"`
	Instructions string   `json:"instructions"`
	Ingredients  []string `json:"ingredients"`
	ReadyIn      *int     `json:"readyIn" validate:"omitempty,gte=0"`
}

type deleteFavoriteResponse struct {
	ID int64 `json:"id"`
}
