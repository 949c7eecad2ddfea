package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Discord caps message content at 2000 characters and embed field values
// at 1024.
const (
	maxContentLength = 2000
	maxFieldLength   = 1024
)

// interactionUserID returns the acting user's ID for both guild and DM
// interactions
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// deferResponse acknowledges the interaction so slow calls (the narrator can
// take seconds) don't hit Discord's 3 second deadline
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}
	return nil
}

// editContent fills in a deferred response with plain text
func editContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	content = truncate(content, maxContentLength)
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}

// editEmbed fills in a deferred response with an embed
func editEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	return err
}

// editError reports a failed operation in the deferred response
func editError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	return editContent(s, i, fmt.Sprintf("❌ %v", err))
}

// truncate cuts text to at most limit characters, marking the cut
func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	const marker = "…"
	return text[:limit-len(marker)] + marker
}

// tail returns the last at-most-limit characters of text
func tail(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[len(text)-limit:]
}
