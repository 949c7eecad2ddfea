package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	gamesvc "github.com/PhantomGM/mythic-bot/internal/services/game"
)

func (h *Handler) handleItem(s *discordgo.Session, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}
	ctx := context.Background()
	ownerID := interactionUserID(i)

	switch sub.Name {
	case "buy":
		list := gamesvc.List(optString(sub, "list"))
		name := optString(sub, "name")
		err := h.GameService.AddCatalogItem(ctx, &gamesvc.AddCatalogItemInput{
			OwnerID: ownerID,
			List:    list,
			Name:    name,
		})
		if err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, fmt.Sprintf("✅ Added **%s** to %s.", name, list))

	case "add":
		list := gamesvc.List(optString(sub, "list"))
		name := optString(sub, "name")
		err := h.GameService.AddListItem(ctx, &gamesvc.AddListItemInput{
			OwnerID:     ownerID,
			List:        list,
			Name:        name,
			Description: optString(sub, "description"),
			Elaborate:   optBool(sub, "elaborate"),
		})
		if err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, fmt.Sprintf("✅ Added **%s** to %s.", name, list))

	case "remove":
		list := gamesvc.List(optString(sub, "list"))
		position, _ := optInt(sub, "position")
		err := h.GameService.RemoveListItem(ctx, &gamesvc.RemoveListItemInput{
			OwnerID: ownerID,
			List:    list,
			Index:   position - 1,
		})
		if err != nil {
			return editError(s, i, err)
		}
		return editContent(s, i, fmt.Sprintf("🗑️ Removed item %d from %s.", position, list))
	}
	return nil
}
