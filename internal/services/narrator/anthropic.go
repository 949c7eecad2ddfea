package narrator

import (
	"context"
	"log"

	internal "github.com/PhantomGM/mythic-bot/internal"
	"github.com/anthropics/anthropic-sdk-go"
)

const defaultMaxTokens = 1024

// ServiceConfig holds configuration for the Anthropic-backed narrator
type ServiceConfig struct {
	Client    *anthropic.Client // Required
	Model     string            // Required
	MaxTokens int64             // Optional
}

type service struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewService creates the Anthropic-backed narrator
func NewService(cfg *ServiceConfig) Service {
	if cfg.Client == nil {
		panic("anthropic client is required")
	}
	if cfg.Model == "" {
		panic("model is required")
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	return &service{
		client:    cfg.Client,
		model:     anthropic.Model(cfg.Model),
		maxTokens: maxTokens,
	}
}

// generate runs one system+prompt exchange. Model failures collapse to the
// fixed fallback reply so the game never stalls on the API.
func (s *service) generate(ctx context.Context, system, prompt string) string {
	message, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		log.Printf("narration request failed: %v", err)
		return FallbackReply
	}

	var reply string
	for _, block := range message.Content {
		if block.Type == "text" {
			reply += block.Text
		}
	}
	if reply == "" {
		log.Printf("narration reply had no text content")
		return FallbackReply
	}

	return reply
}

func (s *service) Narrate(ctx context.Context, input *NarrateInput) (string, error) {
	if input == nil {
		return "", internal.NewMissingParamError("input")
	}
	if input.Sheet == nil {
		return "", internal.NewMissingParamError("input.Sheet")
	}
	if input.Action == "" {
		return "", internal.NewMissingParamError("input.Action")
	}

	system := gmSystemInstruction(input.Settings, input.Sheet, input.Threads, input.NPCs)
	return s.generate(ctx, system, narratePrompt(input.Journal, input.Action)), nil
}

func (s *service) Elaborate(ctx context.Context, input *ElaborateInput) (string, error) {
	if input == nil {
		return "", internal.NewMissingParamError("input")
	}
	if input.ItemName == "" {
		return "", internal.NewMissingParamError("input.ItemName")
	}

	system := elaborateSystemInstruction(input.Settings)
	return s.generate(ctx, system, elaboratePrompt(input.ItemType, input.ItemName, input.Description)), nil
}

func (s *service) SuggestScene(ctx context.Context, input *SuggestSceneInput) (string, error) {
	if input == nil {
		return "", internal.NewMissingParamError("input")
	}
	if input.Sheet == nil {
		return "", internal.NewMissingParamError("input.Sheet")
	}

	system := suggestSceneSystemInstruction(input.Settings, input.Sheet, input.Threads)
	return s.generate(ctx, system, suggestScenePrompt(input.Journal)), nil
}

func (s *service) InterpretEvent(ctx context.Context, input *InterpretEventInput) (string, error) {
	if input == nil {
		return "", internal.NewMissingParamError("input")
	}
	if input.Sheet == nil {
		return "", internal.NewMissingParamError("input.Sheet")
	}

	system := interpretEventSystemInstruction(input.Settings, input.Sheet)
	return s.generate(ctx, system, interpretEventPrompt(input.Journal, input.Focus, input.Meaning)), nil
}

func (s *service) DescribeCharacter(ctx context.Context, input *DescribeCharacterInput) (string, error) {
	if input == nil {
		return "", internal.NewMissingParamError("input")
	}
	if input.Name == "" {
		return "Please enter a name first.", nil
	}

	system := describeCharacterSystemInstruction(input.Settings)
	return s.generate(ctx, system, "Character Name: "+input.Name), nil
}
