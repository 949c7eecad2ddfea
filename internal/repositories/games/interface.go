package games

import (
	"context"
	"time"

	"github.com/PhantomGM/mythic-bot/internal/domain/game"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mockgames -source=interface.go

// Repository stores whole-game snapshots. Each save is keyed by its own ID and
// indexed under the Discord user that owns it; the owner's most recent save is
// tracked separately so a bare load finds it.
type Repository interface {
	Save(ctx context.Context, state *game.State) error
	Get(ctx context.Context, id string) (*game.State, error)
	GetCurrent(ctx context.Context, ownerID string) (*game.State, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*game.State, error)
	Delete(ctx context.Context, id string) error
}

// TimeProvider supplies save timestamps, mockable in tests
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the clock used outside of tests
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
