package game

import (
	"context"
	"log"

	gamestate "github.com/PhantomGM/mythic-bot/internal/domain/game"
)

func (s *service) SaveGame(ctx context.Context, ownerID string) (*gamestate.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return nil, err
	}

	if state.ID == "" {
		state.ID = s.uuidGenerator.New()
	}

	if err := s.repository.Save(ctx, state); err != nil {
		return nil, err
	}

	log.Printf("saved game %s for %s", state.ID, ownerID)
	return state, nil
}

// LoadGame replaces the live session with the owner's latest save. A failed
// load leaves the in-memory session exactly as it was.
func (s *service) LoadGame(ctx context.Context, ownerID string) (*gamestate.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.session(ownerID); err != nil {
		return nil, err
	}

	loaded, err := s.repository.GetCurrent(ctx, ownerID)
	if err != nil {
		log.Printf("failed to load game for %s: %v", ownerID, err)
		return nil, err
	}

	loaded.AppendJournal("-- Game Loaded Successfully --")
	s.sessions[ownerID] = loaded
	delete(s.creations, ownerID)

	return loaded, nil
}
