package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/PhantomGM/mythic-bot/internal/domain/character"
)

func (h *Handler) handleCharacter(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}
	ctx := context.Background()
	ownerID := interactionUserID(i)

	switch sub.Name {
	case "create":
		if err := h.GameService.StartCreation(ctx, ownerID); err != nil {
			return editError(s, i, err)
		}
		rolled, err := h.GameService.RollCreationStats(ctx, ownerID)
		if err != nil {
			return editError(s, i, err)
		}

		values := make([]string, 0, len(rolled))
		for _, v := range rolled {
			values = append(values, fmt.Sprintf("**%d**", v))
		}
		return editContent(s, i, fmt.Sprintf(
			"🎲 Your ability scores, 4d6 drop lowest: %s\nAssign them with `/gm character assign`.",
			strings.Join(values, ", ")))

	case "assign":
		assignment := make(map[character.Ability]int, len(character.Abilities))
		for _, ability := range character.Abilities {
			value, ok := optInt(sub, string(ability))
			if !ok {
				return editContent(s, i, fmt.Sprintf("❌ Missing a value for %s.", ability))
			}
			assignment[ability] = value
		}
		if err := h.GameService.AssignCreationStats(ctx, ownerID, assignment); err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, "✅ Scores assigned. Pick your archetype with `/gm character archetype`.")

	case "archetype":
		archetype := character.Archetype(optString(sub, "name"))
		spellcasting := character.SpellcastingAbility(optString(sub, "spellcasting"))
		if spellcasting == "" {
			spellcasting = character.SpellcastingNone
		}
		if err := h.GameService.ChooseCreationArchetype(ctx, ownerID, archetype, spellcasting); err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, fmt.Sprintf("✅ You are a %s. Finish with `/gm character finish`.", archetype))

	case "finish":
		sheet, err := h.GameService.FinishCreation(ctx, ownerID, optString(sub, "name"))
		if err != nil {
			return editError(s, i, err)
		}
		return editEmbed(s, i, buildSheetEmbed(sheet))

	case "show":
		state, err := h.GameService.Session(ctx, ownerID)
		if err != nil {
			return editError(s, i, err)
		}
		return editEmbed(s, i, buildSheetEmbed(state.Sheet))

	case "hp":
		value, _ := optInt(sub, "value")
		hp, err := h.GameService.SetHP(ctx, ownerID, value)
		if err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, fmt.Sprintf("❤️ Hit points are now **%d**.", hp))

	case "describe":
		description, err := h.GameService.DescribeCharacter(ctx, ownerID)
		if err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, description)
	}
	return nil
}

func (h *Handler) handleGame(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}
	ctx := context.Background()
	ownerID := interactionUserID(i)

	switch sub.Name {
	case "save":
		state, err := h.GameService.SaveGame(ctx, ownerID)
		if err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, fmt.Sprintf("💾 Game saved at <t:%d:t>.", state.SavedAt.Unix()))

	case "load":
		_, err := h.GameService.LoadGame(ctx, ownerID)
		if err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, "📂 Game loaded.")

	case "journal":
		state, err := h.GameService.Session(ctx, ownerID)
		if err != nil {
			return editError(s, i, err)
		}
		if state.Journal == "" {
			return editContent(s, i, "📖 The adventure log is empty. Start with `/gm do`.")
		}
		return editContent(s, i, "📖 "+tail(strings.TrimRight(state.Journal, "\n"), maxContentLength-10))
	}
	return nil
}

// handleSettings applies only the options the user provided, keeping the rest
// of the current settings
func (h *Handler) handleSettings(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}
	ctx := context.Background()
	ownerID := interactionUserID(i)

	state, err := h.GameService.Session(ctx, ownerID)
	if err != nil {
		return editError(s, i, err)
	}

	settings := state.Settings
	for _, opt := range sub.Options {
		switch opt.Name {
		case "tone":
			settings.GMTone = opt.StringValue()
		case "genres":
			settings.Genres = splitList(opt.StringValue())
		case "focus":
			settings.GameplayFocus = splitList(opt.StringValue())
		case "lines":
			settings.Lines = opt.StringValue()
		case "veils":
			settings.Veils = opt.StringValue()
		}
	}

	if err := h.GameService.UpdateSettings(ctx, ownerID, settings); err != nil {
		return editError(s, i, err)
	}

	return editContent(s, i, fmt.Sprintf("⚙️ Settings updated. Genres: %s. Tone: %s.",
		strings.Join(settings.Genres, ", "), settings.GMTone))
}

// splitList splits a comma-separated option value, dropping empty entries
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
