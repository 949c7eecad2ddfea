package game

import (
	"context"
	"fmt"
	"log"

	internal "github.com/PhantomGM/mythic-bot/internal"
	"github.com/PhantomGM/mythic-bot/internal/domain/character"
	gamestate "github.com/PhantomGM/mythic-bot/internal/domain/game"
	"github.com/PhantomGM/mythic-bot/internal/domain/shared"
	"github.com/PhantomGM/mythic-bot/internal/services/narrator"
)

// List names the item collections a session keeps
type List string

const (
	ListWeapons   List = "weapons"
	ListArmor     List = "armor"
	ListSpells    List = "spells"
	ListInventory List = "inventory"
	ListThreads   List = "threads"
	ListNPCs      List = "npcs"
	ListParty     List = "party"
)

// listRef resolves a list name to the slice that backs it
func listRef(state *gamestate.State, list List) (*[]shared.ListItem, error) {
	switch list {
	case ListWeapons:
		return &state.Sheet.Weapons, nil
	case ListArmor:
		return &state.Sheet.Armor, nil
	case ListSpells:
		return &state.Sheet.Spells, nil
	case ListInventory:
		return &state.Sheet.Inventory, nil
	case ListThreads:
		return &state.Threads, nil
	case ListNPCs:
		return &state.NPCs, nil
	case ListParty:
		return &state.Party, nil
	default:
		return nil, internal.NewInvalidParamError(fmt.Sprintf("unknown list %q", list))
	}
}

// AddCatalogItemInput adds a stock One Page 5e item to the sheet
type AddCatalogItemInput struct {
	OwnerID string
	List    List // weapons, armor or spells
	Name    string
}

func (s *service) AddCatalogItem(ctx context.Context, input *AddCatalogItemInput) error {
	if input == nil {
		return internal.NewMissingParamError("input")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(input.OwnerID)
	if err != nil {
		return err
	}

	var item shared.ListItem
	switch input.List {
	case ListWeapons:
		weapon, ok := character.FindWeapon(input.Name)
		if !ok {
			return internal.NewNotFoundError(fmt.Sprintf("weapon %q", input.Name))
		}
		item = weapon.Item()
	case ListArmor:
		armor, ok := character.FindArmor(input.Name)
		if !ok {
			return internal.NewNotFoundError(fmt.Sprintf("armor %q", input.Name))
		}
		item = armor.Item()
	case ListSpells:
		spell, ok := character.FindSpell(input.Name)
		if !ok {
			return internal.NewNotFoundError(fmt.Sprintf("spell %q", input.Name))
		}
		item = spell.Item(state.Sheet.SpellcastingAbility)
	default:
		return internal.NewInvalidParamError(fmt.Sprintf("no catalog backs list %q", input.List))
	}

	target, err := listRef(state, input.List)
	if err != nil {
		return err
	}
	if shared.ContainsName(*target, item.Name) {
		return nil
	}
	*target = append(*target, item)

	// New armor changes AC and the penalty, so the derived stats move.
	if input.List == ListArmor {
		state.Sheet = character.Recalculate(state.Sheet)
	}

	return nil
}

// AddListItemInput adds a free-form named item to any list, optionally having
// the narrator elaborate the description first
type AddListItemInput struct {
	OwnerID     string
	List        List
	Name        string
	Description string
	Elaborate   bool
}

func (s *service) AddListItem(ctx context.Context, input *AddListItemInput) error {
	if input == nil {
		return internal.NewMissingParamError("input")
	}
	if input.Name == "" {
		return internal.NewMissingParamError("input.Name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(input.OwnerID)
	if err != nil {
		return err
	}

	target, err := listRef(state, input.List)
	if err != nil {
		return err
	}

	description := input.Description
	if input.Elaborate {
		elaborated, err := s.narrator.Elaborate(ctx, &narrator.ElaborateInput{
			Settings:    state.Settings,
			ItemType:    string(input.List),
			ItemName:    input.Name,
			Description: input.Description,
		})
		if err != nil {
			log.Printf("failed to elaborate %s %q: %v", input.List, input.Name, err)
		} else {
			description = elaborated
		}
	}

	*target = append(*target, shared.ListItem{Name: input.Name, Description: description})
	return nil
}

// RemoveListItemInput removes one item from a list by position
type RemoveListItemInput struct {
	OwnerID string
	List    List
	Index   int
}

func (s *service) RemoveListItem(ctx context.Context, input *RemoveListItemInput) error {
	if input == nil {
		return internal.NewMissingParamError("input")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(input.OwnerID)
	if err != nil {
		return err
	}

	target, err := listRef(state, input.List)
	if err != nil {
		return err
	}
	if input.Index < 0 || input.Index >= len(*target) {
		return internal.NewInvalidParamError(fmt.Sprintf("index %d out of range", input.Index))
	}

	*target = shared.RemoveAt(*target, input.Index)

	if input.List == ListArmor {
		state.Sheet = character.Recalculate(state.Sheet)
	}

	return nil
}

func (s *service) UpdateSettings(ctx context.Context, ownerID string, settings gamestate.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.session(ownerID)
	if err != nil {
		return err
	}

	if settings.GMTone == "" {
		settings.GMTone = gamestate.GMTones[0]
	}
	state.Settings = settings
	return nil
}
