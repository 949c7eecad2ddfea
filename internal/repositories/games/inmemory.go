package games

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	internal "github.com/PhantomGM/mythic-bot/internal"
	"github.com/PhantomGM/mythic-bot/internal/domain/game"
)

// InMemoryRepository keeps snapshots in a map. Used when no Redis is
// configured and in tests.
type InMemoryRepository struct {
	mu           sync.RWMutex
	games        map[string]*game.State
	currentOwner map[string]string
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		games:        make(map[string]*game.State),
		currentOwner: make(map[string]string),
		timeProvider: &RealTimeProvider{},
	}
}

// copyState round-trips through JSON so callers can never mutate the stored
// snapshot, mirroring what the Redis implementation does
func copyState(state *game.State) (*game.State, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %w", err)
	}
	var out game.State
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %w", err)
	}
	out.Normalize()
	return &out, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, state *game.State) error {
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

	stored, err := copyState(state)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[state.ID] = stored
	r.currentOwner[state.OwnerID] = state.ID

	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*game.State, error) {
	if id == "" {
		return nil, internal.NewMissingParamError("id")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.games[id]
	if !ok {
		return nil, internal.NewNotFoundError(fmt.Sprintf("game %s", id))
	}

	return copyState(state)
}

func (r *InMemoryRepository) GetCurrent(ctx context.Context, ownerID string) (*game.State, error) {
	if ownerID == "" {
		return nil, internal.NewMissingParamError("ownerID")
	}

	r.mu.RLock()
	id, ok := r.currentOwner[ownerID]
	r.mu.RUnlock()
	if !ok {
		return nil, internal.NewNotFoundError(fmt.Sprintf("no saved game for %s", ownerID))
	}

	return r.Get(ctx, id)
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*game.State, error) {
	if ownerID == "" {
		return nil, internal.NewMissingParamError("ownerID")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	states := []*game.State{}
	for _, state := range r.games {
		if state.OwnerID != ownerID {
			continue
		}
		out, err := copyState(state)
		if err != nil {
			return nil, err
		}
		states = append(states, out)
	}

	return states, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.games[id]
	if !ok {
		return internal.NewNotFoundError(fmt.Sprintf("game %s", id))
	}

	delete(r.games, id)
	if r.currentOwner[state.OwnerID] == id {
		delete(r.currentOwner, state.OwnerID)
	}

	return nil
}
