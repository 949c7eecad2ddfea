package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	gamestate "github.com/PhantomGM/mythic-bot/internal/domain/game"
	"github.com/PhantomGM/mythic-bot/internal/domain/game/combat"
	gamesvc "github.com/PhantomGM/mythic-bot/internal/services/game"
)

func (h *Handler) handleEncounter(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}
	ctx := context.Background()
	ownerID := interactionUserID(i)

	switch sub.Name {
	case "add":
		monster := optString(sub, "monster")
		if err := h.GameService.AddMonster(ctx, ownerID, monster); err != nil {
			return editError(s, i, err)
		}
		return h.showRoster(s, i, ctx, ownerID)

	case "remove":
		monster := optString(sub, "monster")
		if err := h.GameService.AdjustMonster(ctx, ownerID, monster, -1); err != nil {
			return editError(s, i, err)
		}
		return h.showRoster(s, i, ctx, ownerID)

	case "clear":
		if err := h.GameService.ClearEncounter(ctx, ownerID); err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, "🗑️ Encounter cleared.")

	case "start":
		state, err := h.GameService.StartCombat(ctx, ownerID)
		if err != nil {
			return editError(s, i, err)
		}
		return editEmbed(s, i, buildCombatEmbed(state.Combat))
	}
	return nil
}

func (h *Handler) showRoster(s *discordgo.Session, i *discordgo.InteractionCreate, ctx context.Context, ownerID string) error {
	state, err := h.GameService.Session(ctx, ownerID)
	if err != nil {
		return editError(s, i, err)
	}

	if len(state.Encounter) == 0 {
		return editContent(s, i, "⚔️ The encounter is empty.")
	}

	var b strings.Builder
	b.WriteString("⚔️ **Encounter roster**\n")
	for _, em := range state.Encounter {
		fmt.Fprintf(&b, "%dx %s (AC %d, HP %d, %s)\n",
			em.Quantity, em.Monster.Name, em.Monster.AC, em.Monster.HP, em.Monster.Attack)
	}
	fmt.Fprintf(&b, "Total XP: %d. Start with `/gm encounter start`.", combat.RosterXP(state.Encounter))
	return editContent(s, i, b.String())
}

func (h *Handler) handleCombat(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}
	ctx := context.Background()
	ownerID := interactionUserID(i)

	switch sub.Name {
	case "next":
		state, err := h.GameService.NextTurn(ctx, ownerID)
		if err != nil {
			return editError(s, i, err)
		}
		return editEmbed(s, i, buildCombatEmbed(state.Combat))

	case "show":
		state, err := h.GameService.Session(ctx, ownerID)
		if err != nil {
			return editError(s, i, err)
		}
		return editEmbed(s, i, buildCombatEmbed(state.Combat))

	case "attack":
		state, err := h.GameService.Session(ctx, ownerID)
		if err != nil {
			return editError(s, i, err)
		}
		targetID, err := resolveTarget(state, optString(sub, "target"))
		if err != nil {
			return editError(s, i, err)
		}

		output, err := h.GameService.Attack(ctx, &gamesvc.AttackInput{
			OwnerID:    ownerID,
			WeaponName: optString(sub, "weapon"),
			TargetID:   targetID,
		})
		if err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, formatAttack(output.Result))

	case "damage":
		state, err := h.GameService.Session(ctx, ownerID)
		if err != nil {
			return editError(s, i, err)
		}
		targetID, err := resolveTarget(state, optString(sub, "target"))
		if err != nil {
			return editError(s, i, err)
		}

		amount, _ := optInt(sub, "amount")
		updated, err := h.GameService.ApplyDamage(ctx, ownerID, targetID, amount)
		if err != nil {
			return editError(s, i, err)
		}
		return editEmbed(s, i, buildCombatEmbed(updated.Combat))
	}
	return nil
}

// resolveTarget turns a user-typed target into a combatant ID. Accepts a
// 1-based position from the initiative order or a case-insensitive name.
func resolveTarget(state *gamestate.State, target string) (string, error) {
	target = strings.TrimSpace(target)
	combatants := state.Combat.Combatants

	if position, err := strconv.Atoi(target); err == nil {
		if position < 1 || position > len(combatants) {
			return "", fmt.Errorf("no combatant at position %d", position)
		}
		return combatants[position-1].ID, nil
	}

	for _, c := range combatants {
		if strings.EqualFold(c.Name, target) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("no combatant named %q", target)
}

// formatAttack renders one attack resolution
func formatAttack(result *combat.AttackResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⚔️ **%s** vs **%s**\n", result.WeaponName, result.TargetName)
	fmt.Fprintf(&b, "Attack Roll: **%d** (d20:%d%+d) vs AC %d\n",
		result.Total, result.D20, result.AttackBonus, result.TargetAC)

	if !result.Hit {
		b.WriteString("**MISS!**")
		return b.String()
	}

	if result.Critical {
		b.WriteString("**CRITICAL HIT!**\n")
	} else {
		b.WriteString("**HIT!**\n")
	}
	if result.DamageExpression != "" {
		fmt.Fprintf(&b, "Damage (%s): **%d** %v", result.DamageExpression, result.Damage, result.DamageRolls)
	}
	if result.TargetDefeated {
		fmt.Fprintf(&b, "\n💀 %s has been defeated!", result.TargetName)
	}
	return b.String()
}
