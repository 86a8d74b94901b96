package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"weddinginvitation/internal/domain"
)

const slugKeyPrefix = "invitation:slug:"

// redisClient is the subset of *redis.Client used by the invitation cache.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type invitationCache struct {
	client redisClient
	ttl    time.Duration
}

// NewRedisClient parses redisURL (a redis:// URL or a bare host:port) and pings the server.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewInvitationCache returns a slug lookup cache stored in Redis with the given TTL.
func NewInvitationCache(client redisClient, ttl time.Duration) domain.InvitationCache {
	return &invitationCache{client: client, ttl: ttl}
}

func (c *invitationCache) Get(ctx context.Context, slug string) (*domain.Invitation, error) {
	data, err := c.client.Get(ctx, slugKeyPrefix+slug).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	inv := &domain.Invitation{}
	if err := json.Unmarshal(data, inv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached invitation: %w", err)
	}
	return inv, nil
}

func (c *invitationCache) Set(ctx context.Context, inv *domain.Invitation) error {
	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("failed to marshal invitation: %w", err)
	}
	return c.client.Set(ctx, slugKeyPrefix+inv.Slug, data, c.ttl).Err()
}
