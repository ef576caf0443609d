package domain

// Favorite is a durably persisted recipe. Titles are unique across the whole
// collection; the constraint is enforced by the database, not by lookups.
type Favorite struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Image        string   `json:"image,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
	Ingredients  []string `json:"ingredients"`
	ReadyIn      *int     `json:"readyIn"`
}
