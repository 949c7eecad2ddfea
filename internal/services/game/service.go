package game

//go:generate mockgen -destination=mock/mock_service.go -package=mockgame -source=service.go

import (
	"context"
	"sync"

	internal "github.com/PhantomGM/mythic-bot/internal"
	"github.com/PhantomGM/mythic-bot/internal/dice"
	"github.com/PhantomGM/mythic-bot/internal/domain/character"
	gamestate "github.com/PhantomGM/mythic-bot/internal/domain/game"
	"github.com/PhantomGM/mythic-bot/internal/domain/game/oracle"
	"github.com/PhantomGM/mythic-bot/internal/repositories/games"
	"github.com/PhantomGM/mythic-bot/internal/services/narrator"
	"github.com/PhantomGM/mythic-bot/internal/uuid"
)

// Service is the rules-engine orchestrator. Every operation works on the
// calling Discord user's session; sessions are created on first touch and
// persist through the repository on save.
type Service interface {
	// Session returns the user's live session, creating a fresh one if needed
	Session(ctx context.Context, ownerID string) (*gamestate.State, error)

	// TestScene asks the oracle a fate question. Empty odds means the base
	// flow: odds picked uniformly from the nine labels.
	TestScene(ctx context.Context, input *TestSceneInput) (*oracle.TestResult, error)

	// EndScene closes the scene, shifts the chaos factor and stops any combat
	EndScene(ctx context.Context, input *EndSceneInput) (int, error)

	// SetChaosFactor sets the chaos factor directly, clamped to [1,9]
	SetChaosFactor(ctx context.Context, ownerID string, value int) (int, error)

	// SuggestScene asks the narrator for a next-scene prompt
	SuggestScene(ctx context.Context, ownerID string) (string, error)

	// Narrate sends a player action to the narrator. The reply is either
	// prose or a demand for a proficiency check.
	Narrate(ctx context.Context, input *NarrateInput) (*NarrateResult, error)

	// ResolveCheck rolls the pending proficiency check and feeds the outcome
	// back to the narrator
	ResolveCheck(ctx context.Context, ownerID string) (*CheckResult, error)

	// RollDice rolls a free-form dice expression and journals it
	RollDice(ctx context.Context, ownerID, expression string) (*dice.RollResult, error)

	// Character creation, step by step
	StartCreation(ctx context.Context, ownerID string) error
	RollCreationStats(ctx context.Context, ownerID string) ([]int, error)
	AssignCreationStats(ctx context.Context, ownerID string, assignment map[character.Ability]int) error
	ChooseCreationArchetype(ctx context.Context, ownerID string, archetype character.Archetype, spellcasting character.SpellcastingAbility) error
	FinishCreation(ctx context.Context, ownerID, name string) (*character.Sheet, error)

	// UpdateSheet applies sheet edits and recomputes the derived stats
	UpdateSheet(ctx context.Context, input *UpdateSheetInput) (*character.Sheet, error)

	// SetHP edits current hit points, clamped to [0, maxHP], mirroring into
	// the player combatant when a fight is on
	SetHP(ctx context.Context, ownerID string, hp int) (int, error)

	// DescribeCharacter has the narrator write the PC description
	DescribeCharacter(ctx context.Context, ownerID string) (string, error)

	// Sheet item lists and story lists
	AddCatalogItem(ctx context.Context, input *AddCatalogItemInput) error
	AddListItem(ctx context.Context, input *AddListItemInput) error
	RemoveListItem(ctx context.Context, input *RemoveListItemInput) error

	// Encounter roster
	AddMonster(ctx context.Context, ownerID, monsterName string) error
	AdjustMonster(ctx context.Context, ownerID, monsterName string, delta int) error
	ClearEncounter(ctx context.Context, ownerID string) error

	// Combat
	StartCombat(ctx context.Context, ownerID string) (*gamestate.State, error)
	NextTurn(ctx context.Context, ownerID string) (*gamestate.State, error)
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)
	ApplyDamage(ctx context.Context, ownerID, targetID string, damage int) (*gamestate.State, error)

	// Settings
	UpdateSettings(ctx context.Context, ownerID string, settings gamestate.Settings) error

	// Persistence
	SaveGame(ctx context.Context, ownerID string) (*gamestate.State, error)
	LoadGame(ctx context.Context, ownerID string) (*gamestate.State, error)
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    games.Repository // Required
	Narrator      narrator.Service // Required
	Roller        dice.Roller      // Optional, defaults to the rand roller
	UUIDGenerator uuid.Generator   // Optional
}

type service struct {
	repository    games.Repository
	narrator      narrator.Service
	roller        dice.Roller
	uuidGenerator uuid.Generator

	// mu serializes every state-changing call; the rules engine itself is
	// single-threaded by design of the game
	mu        sync.Mutex
	sessions  map[string]*gamestate.State
	creations map[string]*character.CreationFlow
}

// NewService creates a new game service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Narrator == nil {
		panic("narrator service is required")
	}

	svc := &service{
		repository: cfg.Repository,
		narrator:   cfg.Narrator,
		sessions:   make(map[string]*gamestate.State),
		creations:  make(map[string]*character.CreationFlow),
	}

	if cfg.Roller != nil {
		svc.roller = cfg.Roller
	} else {
		svc.roller = dice.NewRandomRoller()
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// session returns the owner's live state, creating one on first touch.
// Callers must hold mu.
func (s *service) session(ownerID string) (*gamestate.State, error) {
	if ownerID == "" {
		return nil, internal.NewMissingParamError("ownerID")
	}

	state, ok := s.sessions[ownerID]
	if !ok {
		state = gamestate.NewState()
		state.OwnerID = ownerID
		s.sessions[ownerID] = state
	}
	return state, nil
}

func (s *service) Session(ctx context.Context, ownerID string) (*gamestate.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(ownerID)
}
