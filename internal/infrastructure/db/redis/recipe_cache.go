package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saifmalkurdi/Flavor-Table/internal/api/metrics"
	"github.com/saifmalkurdi/Flavor-Table/internal/core/domain"
)

const detailTTL = 10 * time.Minute

// RecipeCache caches provider detail responses in Redis.
// Key format: recipe:detail:<id>
type RecipeCache struct {
	client *redis.Client
}

// NewRecipeCache creates a RecipeCache wrapping the given Redis client.
func NewRecipeCache(client *redis.Client) *RecipeCache {
	return &RecipeCache{client: client}
}

// GetDetail returns the cached detail for a recipe id, or nil on a miss.
func (c *RecipeCache) GetDetail(ctx context.Context, id string) (*domain.RecipeDetail, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecipeCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var detail domain.RecipeDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}

	metrics.RecipeCacheTotal.WithLabelValues("hit").Inc()
	return &detail, nil
}

// SetDetail stores a detail response (expires after detailTTL).
func (c *RecipeCache) SetDetail(ctx context.Context, id string, detail *domain.RecipeDetail) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(id), raw, detailTTL).Err()
}

func (c *RecipeCache) key(id string) string {
	return "recipe:detail:" + id
}
