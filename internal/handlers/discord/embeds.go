package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/PhantomGM/mythic-bot/internal/domain/character"
	"github.com/PhantomGM/mythic-bot/internal/domain/game/combat"
	"github.com/PhantomGM/mythic-bot/internal/domain/shared"
)

// buildSheetEmbed renders a character sheet
func buildSheetEmbed(sheet *character.Sheet) *discordgo.MessageEmbed {
	title := sheet.Name
	if title == "" {
		title = "Unnamed Adventurer"
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎭 %s", title),
		Description: truncate(sheet.Description, maxFieldLength),
		Color:       0x7289da,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Class",
				Value:  fmt.Sprintf("%s (Level %d)", sheet.Archetype, sheet.Level),
				Inline: true,
			},
			{
				Name:   "❤️ HP",
				Value:  fmt.Sprintf("%d/%d", sheet.HP, sheet.MaxHP),
				Inline: true,
			},
			{
				Name:   "🛡️ AC",
				Value:  fmt.Sprintf("%d", sheet.AC),
				Inline: true,
			},
			{
				Name: "Attributes",
				Value: fmt.Sprintf("STR %d (%+d) | DEX %d (%+d) | CON %d (%+d)\nINT %d (%+d) | WIS %d (%+d) | CHA %d (%+d)",
					sheet.Attributes.Strength, character.Modifier(sheet.Attributes.Strength),
					sheet.Attributes.Dexterity, character.Modifier(sheet.Attributes.Dexterity),
					sheet.Attributes.Constitution, character.Modifier(sheet.Attributes.Constitution),
					sheet.Attributes.Intelligence, character.Modifier(sheet.Attributes.Intelligence),
					sheet.Attributes.Wisdom, character.Modifier(sheet.Attributes.Wisdom),
					sheet.Attributes.Charisma, character.Modifier(sheet.Attributes.Charisma)),
				Inline: false,
			},
			{
				Name: "Derived",
				Value: fmt.Sprintf("Initiative %+d | Speed %d ft | Proficiency +%d | Gold %dG",
					sheet.Initiative, sheet.Speed, sheet.Proficiency, sheet.Gold),
				Inline: false,
			},
		},
	}

	if value := itemFieldValue(sheet.Weapons); value != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "⚔️ Weapons", Value: value, Inline: false,
		})
	}
	if value := itemFieldValue(sheet.Armor); value != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "🛡️ Armor", Value: value, Inline: false,
		})
	}
	if value := itemFieldValue(sheet.Spells); value != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "✨ Spells", Value: value, Inline: false,
		})
	}

	if len(sheet.Proficiencies) > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Proficient in %s", strings.Join(sheet.Proficiencies, ", ")),
		}
	}

	return embed
}

func itemFieldValue(items []shared.ListItem) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for idx, item := range items {
		if idx > 0 {
			b.WriteString("\n")
		}
		if item.Description != "" {
			fmt.Fprintf(&b, "**%s** (%s)", item.Name, item.Description)
		} else {
			fmt.Fprintf(&b, "**%s**", item.Name)
		}
	}
	return truncate(b.String(), maxFieldLength)
}

// buildCombatEmbed renders the initiative order with a marker on the current
// turn
func buildCombatEmbed(state *combat.State) *discordgo.MessageEmbed {
	if state == nil || state.Status == combat.StatusNotStarted {
		return &discordgo.MessageEmbed{
			Title:       "⚔️ Combat",
			Description: "No combat in progress. Build an encounter with `/gm encounter add`.",
			Color:       0x95a5a6,
		}
	}

	if state.Status == combat.StatusEnded {
		return &discordgo.MessageEmbed{
			Title:       "⚔️ Combat",
			Description: "Combat has ended.",
			Color:       0x95a5a6,
		}
	}

	var b strings.Builder
	for idx, c := range state.Combatants {
		marker := "　"
		if idx == state.Turn {
			marker = "▶️"
		}
		status := fmt.Sprintf("HP %d/%d, AC %d", c.CurrentHP, c.MaxHP, c.AC)
		if !c.IsAlive() {
			status = "💀 down"
		}
		fmt.Fprintf(&b, "%s %d. **%s** (init %d) %s\n", marker, idx+1, c.Name, c.Initiative, status)
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚔️ Combat: Round %d", state.Round),
		Description: truncate(b.String(), 4000),
		Color:       0xe74c3c,
	}
}
