package games

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	internal "github.com/PhantomGM/mythic-bot/internal"
	"github.com/PhantomGM/mythic-bot/internal/domain/game"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	gameKeyPrefix   = "game:"
	ownerGamesKey   = "owner:%s:games"
	ownerCurrentKey = "owner:%s:current"

	// Saves stick around for 90 days of inactivity
	defaultTTL = 90 * 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	TTL          time.Duration
}

type redisRepository struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// NewRedisRepository creates a new Redis-backed snapshot repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client:       cfg.Client,
		timeProvider: timeProvider,
		ttl:          ttl,
	}
}

func (r *redisRepository) Save(ctx context.Context, state *game.State) error {
	if state == nil {
		return internal.NewMissingParamError("state")
	}
	if state.ID == "" {
		return internal.NewMissingParamError("state.ID")
	}
	if state.OwnerID == "" {
		return internal.NewMissingParamError("state.OwnerID")
	}

	state.SavedAt = r.timeProvider.Now()
	if state.CreatedAt.IsZero() {
		state.CreatedAt = state.SavedAt
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, gameKeyPrefix+state.ID, data, r.ttl)
	pipe.Set(ctx, fmt.Sprintf(ownerCurrentKey, state.OwnerID), state.ID, r.ttl)
	pipe.SAdd(ctx, fmt.Sprintf(ownerGamesKey, state.OwnerID), state.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}

	return nil
}

func (r *redisRepository) Get(ctx context.Context, id string) (*game.State, error) {
	if id == "" {
		return nil, internal.NewMissingParamError("id")
	}

	data, err := r.client.Get(ctx, gameKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, internal.NewNotFoundError(fmt.Sprintf("game %s", id))
		}
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}

	var state game.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}
	state.Normalize()

	return &state, nil
}

func (r *redisRepository) GetCurrent(ctx context.Context, ownerID string) (*game.State, error) {
	if ownerID == "" {
		return nil, internal.NewMissingParamError("ownerID")
	}

	id, err := r.client.Get(ctx, fmt.Sprintf(ownerCurrentKey, ownerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, internal.NewNotFoundError(fmt.Sprintf("no saved game for %s", ownerID))
		}
		return nil, fmt.Errorf("failed to look up current save: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *redisRepository) ListByOwner(ctx context.Context, ownerID string) ([]*game.State, error) {
	if ownerID == "" {
		return nil, internal.NewMissingParamError("ownerID")
	}

	ids, err := r.client.SMembers(ctx, fmt.Sprintf(ownerGamesKey, ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	states := make([]*game.State, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			state, err := r.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get game %s: %w", id, err)
			}
			states[i] = state
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return states, nil
}

func (r *redisRepository) Delete(ctx context.Context, id string) error {
	state, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	currentKey := fmt.Sprintf(ownerCurrentKey, state.OwnerID)
	current, err := r.client.Get(ctx, currentKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to look up current save: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, gameKeyPrefix+id)
	pipe.SRem(ctx, fmt.Sprintf(ownerGamesKey, state.OwnerID), id)
	if current == id {
		pipe.Del(ctx, currentKey)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game state: %w", err)
	}

	return nil
}
