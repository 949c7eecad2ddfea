package services

import (
	"github.com/anthropics/anthropic-sdk-go"

	"github.com/PhantomGM/mythic-bot/internal/repositories/games"
	gameService "github.com/PhantomGM/mythic-bot/internal/services/game"
	"github.com/PhantomGM/mythic-bot/internal/services/narrator"
)

// Provider holds all service instances
type Provider struct {
	NarratorService narrator.Service
	GameService     gameService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	AnthropicClient *anthropic.Client
	Model           string
	MaxTokens       int64
	GameRepository  games.Repository
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	gameRepo := cfg.GameRepository
	if gameRepo == nil {
		gameRepo = games.NewInMemoryRepository()
	}

	narratorService := narrator.NewService(&narrator.ServiceConfig{
		Client:    cfg.AnthropicClient,
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
	})

	gameSvc := gameService.NewService(&gameService.ServiceConfig{
		Repository: gameRepo,
		Narrator:   narratorService,
	})

	return &Provider{
		NarratorService: narratorService,
		GameService:     gameSvc,
	}
}
