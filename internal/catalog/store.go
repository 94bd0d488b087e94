package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:services"

// Store serves the service catalog, with redis-backed overrides so a
// deployment can edit titles without a rebuild. A nil redis client or a
// missing key falls back to the built-in defaults.
type Store struct {
	redis *redis.Client
}

// NewStore creates a catalog store. redisClient may be nil.
func NewStore(redisClient *redis.Client) *Store {
	return &Store{redis: redisClient}
}

// List returns the current catalog.
func (s *Store) List(ctx context.Context) ([]Service, error) {
	if s.redis == nil {
		return Defaults(), nil
	}
	data, err := s.redis.Get(ctx, catalogKey).Bytes()
	if err == redis.Nil {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: get services: %w", err)
	}

	var services []Service
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal services: %w", err)
	}
	return services, nil
}

// Set saves a catalog override.
func (s *Store) Set(ctx context.Context, services []Service) error {
	if s.redis == nil {
		return fmt.Errorf("catalog: overrides require redis")
	}
	data, err := json.Marshal(services)
	if err != nil {
		return fmt.Errorf("catalog: marshal services: %w", err)
	}
	if err := s.redis.Set(ctx, catalogKey, data, 0).Err(); err != nil {
		return fmt.Errorf("catalog: set services: %w", err)
	}
	return nil
}
