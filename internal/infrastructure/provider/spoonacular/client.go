// Package spoonacular implements the outbound client for the Spoonacular
// recipe API. Every method issues a single HTTP call with no retry; provider
// failures surface as *domain.UpstreamError carrying the provider status.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/saifmalkurdi/Flavor-Table/internal/api/metrics"
	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
	"github.com/saifmalkurdi/Flavor-Table/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.spoonacular.com"
	defaultTimeout = 15 * time.Second
)

// Config captures the provider settings, injected once at construction so no
// global state is consulted at request time.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// FindByIngredients queries the ingredient-search endpoint with an already
// sanitised csv ingredient list.
func (c *Client) FindByIngredients(ctx context.Context, ingredients string, number int) ([]ports.ProviderSearchResult, error) {
	params := url.Values{}
	params.Set("ingredients", ingredients)
	params.Set("number", strconv.Itoa(number))

	var results []ports.ProviderSearchResult
	if err := c.getJSON(ctx, "/recipes/findByIngredients", params, "search", &results); err != nil {
		return nil, err
	}
	return results, nil
}

// RandomRecipe asks the provider for exactly one random recipe. Returns
// (nil, nil) when the provider answers with an empty set.
func (c *Client) RandomRecipe(ctx context.Context) (*ports.ProviderRecipe, error) {
	if c.apiKey == "" {
		return nil, domain.ErrProviderKeyMissing
	}

	params := url.Values{}
	params.Set("number", "1")

	var payload struct {
		Recipes []ports.ProviderRecipe `json:"recipes"`
	}
	if err := c.getJSON(ctx, "/recipes/random", params, "random", &payload); err != nil {
		return nil, err
	}
	if len(payload.Recipes) == 0 {
		return nil, nil
	}
	return &payload.Recipes[0], nil
}

// RecipeInformation fetches the detail view for a recipe id.
func (c *Client) RecipeInformation(ctx context.Context, id string) (*ports.ProviderRecipeInformation, error) {
	params := url.Values{}
	params.Set("includeNutrition", "false")

	var info ports.ProviderRecipeInformation
	if err := c.getJSON(ctx, "/recipes/"+id+"/information", params, "detail", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// getJSON performs one GET against the provider and decodes the response
// body into out. The API key travels as a query parameter.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, endpoint string, out any) error {
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build provider request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ProviderRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return &domain.UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "upstream_error").Inc()
		c.log.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Msg("provider request failed")
		return &domain.UpstreamError{StatusCode: resp.StatusCode, Message: providerMessage(resp)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "decode_error").Inc()
		return &domain.UpstreamError{StatusCode: resp.StatusCode, Message: "malformed provider response"}
	}

	metrics.ProviderRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	return nil
}

// providerMessage extracts the provider's error message when the failure body
// is the usual {"message": "..."} shape, falling back to the status text.
func providerMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return http.StatusText(resp.StatusCode)
}
