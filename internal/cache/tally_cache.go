package cache

import (
	"context"
	"tableread/internal/model"

	"github.com/redis/go-redis/v9"
)

// tallyKey is a single ZSET; personas are members, completions the score.
const tallyKey = "personas:tally"

// TallyCache counts completed sessions per persona
type TallyCache interface {
	Increment(ctx context.Context, persona string) error
	Distribution(ctx context.Context) ([]model.PersonaCount, error)
}

type tallyCache struct {
	client *redis.Client
}

// NewTallyCache creates a new persona tally cache
func NewTallyCache(client *redis.Client) TallyCache {
	return &tallyCache{
		client: client,
	}
}

func (c *tallyCache) Increment(ctx context.Context, persona string) error {
	return c.client.ZIncrBy(ctx, tallyKey, 1, persona).Err()
}

func (c *tallyCache) Distribution(ctx context.Context) ([]model.PersonaCount, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, tallyKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	counts := make([]model.PersonaCount, len(results))
	for i, z := range results {
		counts[i] = model.PersonaCount{
			Persona: z.Member.(string),
			Count:   int64(z.Score),
		}
	}
	return counts, nil
}
