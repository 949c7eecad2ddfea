package narrator

//go:generate mockgen -destination=mock/mock_service.go -package=mocknarrator -source=service.go

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/PhantomGM/mythic-bot/internal/domain/character"
	"github.com/PhantomGM/mythic-bot/internal/domain/game"
	"github.com/PhantomGM/mythic-bot/internal/domain/shared"
)

// FallbackReply is returned whenever the model call fails, so the session
// keeps moving instead of surfacing an API error to the player
const FallbackReply = "Sorry, I encountered an error while processing your request."

// Service is the narration collaborator. Everything rules-shaped happens
// elsewhere; this service only turns game state into free text.
type Service interface {
	// Narrate continues the story from the journal and the player's action
	Narrate(ctx context.Context, input *NarrateInput) (string, error)

	// Elaborate enriches a list item description (thread, NPC, inventory...)
	Elaborate(ctx context.Context, input *ElaborateInput) (string, error)

	// SuggestScene proposes a next scene title or goal
	SuggestScene(ctx context.Context, input *SuggestSceneInput) (string, error)

	// InterpretEvent grounds a random event in the current story
	InterpretEvent(ctx context.Context, input *InterpretEventInput) (string, error)

	// DescribeCharacter writes a short PC description from a name
	DescribeCharacter(ctx context.Context, input *DescribeCharacterInput) (string, error)
}

type NarrateInput struct {
	Settings game.Settings
	Sheet    *character.Sheet
	Threads  []shared.ListItem
	NPCs     []shared.ListItem
	Journal  string
	Action   string
}

type ElaborateInput struct {
	Settings    game.Settings
	ItemType    string
	ItemName    string
	Description string
}

type SuggestSceneInput struct {
	Settings game.Settings
	Sheet    *character.Sheet
	Threads  []shared.ListItem
	Journal  string
}

type InterpretEventInput struct {
	Settings game.Settings
	Sheet    *character.Sheet
	Journal  string
	Focus    string
	Meaning  string
}

type DescribeCharacterInput struct {
	Settings game.Settings
	Name     string
}

// checkEnvelope is the JSON shape the narrator uses to demand a proficiency
// check instead of replying with prose. The DC arrives as a number or a
// quoted number depending on the model's mood.
type checkEnvelope struct {
	RequiresCheck *struct {
		Action      string      `json:"action"`
		Proficiency string      `json:"proficiency"`
		DC          json.Number `json:"dc"`
	} `json:"requires_check"`
}

// ParseCheck reports whether a narrator reply is a proficiency check demand.
// Anything that fails to parse as the check envelope is plain narration.
func ParseCheck(reply string) (*game.PendingCheck, bool) {
	var envelope checkEnvelope
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &envelope); err != nil {
		return nil, false
	}
	if envelope.RequiresCheck == nil {
		return nil, false
	}

	dc, err := envelope.RequiresCheck.DC.Int64()
	if err != nil {
		return nil, false
	}

	return &game.PendingCheck{
		Action:      envelope.RequiresCheck.Action,
		Proficiency: envelope.RequiresCheck.Proficiency,
		DC:          int(dc),
	}, true
}
