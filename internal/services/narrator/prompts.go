package narrator

import (
	"fmt"
	"strings"

	"github.com/PhantomGM/mythic-bot/internal/domain/character"
	"github.com/PhantomGM/mythic-bot/internal/domain/game"
	"github.com/PhantomGM/mythic-bot/internal/domain/shared"
)

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func itemLines(items []shared.ListItem, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- %s: %s", item.Name, item.Description))
	}
	return strings.Join(lines, "\n")
}

func settingsBlock(settings game.Settings) string {
	return fmt.Sprintf(`Game Settings:
- Genres: %s
- GM Tone: %s`, joinOr(settings.Genres, "Not specified"), settings.GMTone)
}

// gmSystemInstruction is the full game-master persona, including the JSON
// contract for demanding proficiency checks
func gmSystemInstruction(settings game.Settings, sheet *character.Sheet, threads, npcs []shared.ListItem) string {
	return fmt.Sprintf(`You are a solo RPG game master emulator. Your goal is to facilitate a compelling story.
Game Settings:
- Genres: %s
- GM Tone: %s
- Gameplay Focus: %s
- Lines (Content to Exclude): %s
- Veils (Content to Fade to Black): %s

Player Character (%s):
%s
- Archetype: %s
- Level: %d

Active Story Threads:
%s

Key NPCs:
%s

Respond from the perspective of the game world. Be descriptive and engaging.
When a proficiency check is needed, respond ONLY with a JSON object like this: {"requires_check": {"action": "a brief description of the action", "proficiency": "The most relevant character proficiency e.g., Strength, Dexterity", "dc": "a number from 10-20 representing the difficulty"}}. Do not add any other text.
For all other responses, just provide the narrative text. Do not break character. Do not output JSON unless it's a proficiency check.`,
		joinOr(settings.Genres, "Not specified"),
		settings.GMTone,
		joinOr(settings.GameplayFocus, "Not specified"),
		orDefault(settings.Lines, "None"),
		orDefault(settings.Veils, "None"),
		sheet.Name,
		sheet.Description,
		sheet.Archetype,
		sheet.Level,
		itemLines(threads, "No active threads."),
		itemLines(npcs, "No key NPCs."),
	)
}

func narratePrompt(journal, action string) string {
	return fmt.Sprintf("Here is the story so far:\n%s\n\nPlayer action: %q\n\nWhat happens next?", journal, action)
}

func elaborateSystemInstruction(settings game.Settings) string {
	return fmt.Sprintf(`You are a creative assistant for a solo RPG. Elaborate on the user-provided description for the item below, making it more vivid and integrated into the game world. Keep it to 1-3 sentences. If no description is provided, create one from scratch.
%s
Just provide the final description, no extra text or conversational filler.`, settingsBlock(settings))
}

func elaboratePrompt(itemType, itemName, description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Item Type: %s\nItem Name: %q\n", itemType, itemName)
	if description != "" {
		fmt.Fprintf(&b, "User-provided description: %q\n", description)
	}
	b.WriteString("\nElaborated Description:")
	return b.String()
}

func suggestSceneSystemInstruction(settings game.Settings, sheet *character.Sheet, threads []shared.ListItem) string {
	names := make([]string, 0, len(threads))
	for _, t := range threads {
		names = append(names, t.Name)
	}
	return fmt.Sprintf(`You are a creative assistant for a solo RPG. Suggest a compelling next scene based on the story so far.
%s
Player Character: %s - %s
Active Threads: %s
Just provide the scene title/goal, no extra text.`,
		settingsBlock(settings), sheet.Name, sheet.Description, joinOr(names, "None"))
}

func suggestScenePrompt(journal string) string {
	return fmt.Sprintf("Story so far:\n%s\n\nSuggest a concise, compelling next scene title or goal.", journal)
}

func interpretEventSystemInstruction(settings game.Settings, sheet *character.Sheet) string {
	return fmt.Sprintf(`You are a solo RPG game master emulator. Interpret the following random event in the context of the current story.
%s
Player Character: %s - %s
Respond with 2-3 sentences describing how this event manifests in the game world.`,
		settingsBlock(settings), sheet.Name, sheet.Description)
}

func interpretEventPrompt(journal, focus, meaning string) string {
	return fmt.Sprintf("Story so far:\n%s\n\nRandom Event Occurred:\n- Focus: %s\n- Meaning: %s\n\nInterpretation:", journal, focus, meaning)
}

func describeCharacterSystemInstruction(settings game.Settings) string {
	return fmt.Sprintf(`You are a creative assistant for a solo RPG. Write a brief, compelling character description (2-3 sentences) based on the name and game settings.
%s
Focus on appearance, demeanor, or a key detail. Just provide the description, no extra text.`, settingsBlock(settings))
}
