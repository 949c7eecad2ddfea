package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/PhantomGM/mythic-bot/internal/domain/game/oracle"
	gamesvc "github.com/PhantomGM/mythic-bot/internal/services/game"
)

func optString(sub *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func optInt(sub *discordgo.ApplicationCommandInteractionDataOption, name string) (int, bool) {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return int(opt.IntValue()), true
		}
	}
	return 0, false
}

func optBool(sub *discordgo.ApplicationCommandInteractionDataOption, name string) bool {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return opt.BoolValue()
		}
	}
	return false
}

func (h *Handler) handleOracle(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}
	ctx := context.Background()
	ownerID := interactionUserID(i)

	switch sub.Name {
	case "test":
		result, err := h.GameService.TestScene(ctx, &gamesvc.TestSceneInput{
			OwnerID:  ownerID,
			Expected: optString(sub, "expected"),
			Odds:     oracle.Odds(optString(sub, "odds")),
		})
		if err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, formatTestResult(result))

	case "chaos":
		value, _ := optInt(sub, "value")
		chaos, err := h.GameService.SetChaosFactor(ctx, ownerID, value)
		if err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, fmt.Sprintf("🌀 Chaos Factor is now **%d**.", chaos))
	}
	return nil
}

func (h *Handler) handleScene(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}
	ctx := context.Background()
	ownerID := interactionUserID(i)

	switch sub.Name {
	case "suggest":
		suggestion, err := h.GameService.SuggestScene(ctx, ownerID)
		if err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, fmt.Sprintf("🎬 **Suggested scene:** %s", suggestion))

	case "end":
		chaos, err := h.GameService.EndScene(ctx, &gamesvc.EndSceneInput{
			OwnerID:      ownerID,
			WasInControl: optBool(sub, "control"),
		})
		if err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, fmt.Sprintf("🎬 Scene ended. Chaos Factor is now **%d**.", chaos))
	}
	return nil
}

func (h *Handler) handleDo(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}

	result, err := h.GameService.Narrate(context.Background(), &gamesvc.NarrateInput{
		OwnerID: interactionUserID(i),
		Action:  optString(sub, "action"),
	})
	if err != nil {
		return editError(s, i, err)
	}

	if result.Check != nil {
		return editContent(s, i, fmt.Sprintf("🎲 %s Use `/gm check` to roll.", result.Reply))
	}
	return editContent(s, i, result.Reply)
}

func (h *Handler) handleCheck(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}

	result, err := h.GameService.ResolveCheck(context.Background(), interactionUserID(i))
	if err != nil {
		return editError(s, i, err)
	}

	outcome := "Failure."
	if result.Success {
		outcome = "Success!"
	}
	header := fmt.Sprintf("🎲 **%s Check**: %d vs DC %d → %s",
		result.Check.Proficiency, result.Total, result.Check.DC, outcome)
	return editContent(s, i, header+"\n\n"+result.Reply)
}

func (h *Handler) handleRoll(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}

	result, err := h.GameService.RollDice(context.Background(), interactionUserID(i), optString(sub, "dice"))
	if err != nil {
		return editError(s, i, err)
	}
	return editContent(s, i, fmt.Sprintf("🎲 %s → %s", result.Expression, result))
}

// formatTestResult renders an oracle answer: the outcome, any scene
// adjustment, and the random event with its interpretation
func formatTestResult(result *oracle.TestResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔮 **%s** (rolled %d at %s, Chaos %d)",
		result.Outcome, result.Roll, result.Odds, result.ChaosFactor)

	if result.SceneAdjustment != "" {
		fmt.Fprintf(&b, "\n⚡ Altered Scene: **%s**", result.SceneAdjustment)
	}

	if result.Event != nil {
		fmt.Fprintf(&b, "\n\n❗ **RANDOM EVENT!** Focus: %s, Meaning: %s",
			result.Event.Focus, result.Event.Meaning)
		if result.Event.Interpretation != "" {
			fmt.Fprintf(&b, "\n%s", result.Event.Interpretation)
		}
	}

	return b.String()
}
