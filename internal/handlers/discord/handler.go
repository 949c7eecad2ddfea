package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	gamestate "github.com/PhantomGM/mythic-bot/internal/domain/game"
	"github.com/PhantomGM/mythic-bot/internal/domain/game/combat"
	"github.com/PhantomGM/mythic-bot/internal/domain/game/oracle"
	gamesvc "github.com/PhantomGM/mythic-bot/internal/services/game"
)

// Handler handles all Discord interactions
type Handler struct {
	GameService gamesvc.Service
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	GameService gamesvc.Service
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.GameService == nil {
		panic("game service is required")
	}
	return &Handler{
		GameService: cfg.GameService,
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	oddsChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(oracle.AllOdds))
	for _, odds := range oracle.AllOdds {
		oddsChoices = append(oddsChoices, &discordgo.ApplicationCommandOptionChoice{
			Name: string(odds), Value: string(odds),
		})
	}

	monsterChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(combat.MonsterCatalog))
	for _, m := range combat.MonsterCatalog {
		monsterChoices = append(monsterChoices, &discordgo.ApplicationCommandOptionChoice{
			Name: fmt.Sprintf("%s (CR %s)", m.Name, m.CR), Value: m.Name,
		})
	}

	toneChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(gamestate.GMTones))
	for _, tone := range gamestate.GMTones {
		toneChoices = append(toneChoices, &discordgo.ApplicationCommandOptionChoice{
			Name: tone, Value: tone,
		})
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "gm",
			Description: "Solo adventure game master commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "do",
					Description: "Act or speak; the GM narrates what happens",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "action",
							Description: "What your character does or says",
							Required:    true,
						},
					},
				},
				{
					Name:        "check",
					Description: "Roll the pending proficiency check",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "roll",
					Description: "Roll dice",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "dice",
							Description: "Dice expression, e.g. 2d6+1",
							Required:    true,
						},
					},
				},
				{
					Name:        "oracle",
					Description: "Ask the oracle",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "test",
							Description: "Test whether the expected scene plays out",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "expected",
									Description: "The scene or outcome you expect",
									Required:    false,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "odds",
									Description: "Likelihood (random when omitted)",
									Required:    false,
									Choices:     oddsChoices,
								},
							},
						},
						{
							Name:        "chaos",
							Description: "Set the chaos factor directly",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "value",
									Description: "Chaos factor (1-9)",
									Required:    true,
								},
							},
						},
					},
				},
				{
					Name:        "scene",
					Description: "Scene management",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "suggest",
							Description: "Ask the GM to suggest the next scene",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        "end",
							Description: "End the current scene and shift the chaos factor",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionBoolean,
									Name:        "control",
									Description: "Were you in control of the scene?",
									Required:    true,
								},
							},
						},
					},
				},
				{
					Name:        "character",
					Description: "Character sheet commands",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "create",
							Description: "Start character creation and roll ability scores",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        "assign",
							Description: "Assign the rolled scores to your six abilities",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options:     assignOptions(),
						},
						{
							Name:        "archetype",
							Description: "Choose your archetype",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "name",
									Description: "Archetype",
									Required:    true,
									Choices: []*discordgo.ApplicationCommandOptionChoice{
										{Name: "Dwarf Fighter", Value: "Dwarf Fighter"},
										{Name: "Elf Ranger", Value: "Elf Ranger"},
										{Name: "Human Wizard", Value: "Human Wizard"},
									},
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "spellcasting",
									Description: "Spellcasting ability (Human Wizard only)",
									Required:    false,
									Choices: []*discordgo.ApplicationCommandOptionChoice{
										{Name: "Intelligence", Value: "intelligence"},
										{Name: "Wisdom", Value: "wisdom"},
									},
								},
							},
						},
						{
							Name:        "finish",
							Description: "Name your character and finish creation",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "name",
									Description: "Character name",
									Required:    true,
								},
							},
						},
						{
							Name:        "show",
							Description: "Show your character sheet",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        "hp",
							Description: "Set your current hit points",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "value",
									Description: "New hit point total",
									Required:    true,
								},
							},
						},
						{
							Name:        "describe",
							Description: "Have the GM write your character description",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
					},
				},
				{
					Name:        "item",
					Description: "Sheet and story lists",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "buy",
							Description: "Add a catalog weapon, armor piece or spell",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "list",
									Description: "Which list",
									Required:    true,
									Choices: []*discordgo.ApplicationCommandOptionChoice{
										{Name: "Weapons", Value: "weapons"},
										{Name: "Armor", Value: "armor"},
										{Name: "Spells", Value: "spells"},
									},
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "name",
									Description: "Catalog item name",
									Required:    true,
								},
							},
						},
						{
							Name:        "add",
							Description: "Add an item to a list",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "list",
									Description: "Which list",
									Required:    true,
									Choices:     listChoices(),
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "name",
									Description: "Item name",
									Required:    true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "description",
									Description: "Item description",
									Required:    false,
								},
								{
									Type:        discordgo.ApplicationCommandOptionBoolean,
									Name:        "elaborate",
									Description: "Have the GM write the description",
									Required:    false,
								},
							},
						},
						{
							Name:        "remove",
							Description: "Remove an item from a list by position",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "list",
									Description: "Which list",
									Required:    true,
									Choices:     listChoices(),
								},
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "position",
									Description: "Item position, starting at 1",
									Required:    true,
								},
							},
						},
					},
				},
				{
					Name:        "encounter",
					Description: "Encounter roster",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "add",
							Description: "Add a monster to the encounter",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "monster",
									Description: "Monster",
									Required:    true,
									Choices:     monsterChoices,
								},
							},
						},
						{
							Name:        "remove",
							Description: "Remove one monster from the encounter",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "monster",
									Description: "Monster",
									Required:    true,
									Choices:     monsterChoices,
								},
							},
						},
						{
							Name:        "clear",
							Description: "Clear the encounter roster",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        "start",
							Description: "Roll initiative and start combat",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
					},
				},
				{
					Name:        "combat",
					Description: "Combat actions",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "attack",
							Description: "Attack a combatant with one of your weapons",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "weapon",
									Description: "Weapon name from your sheet",
									Required:    true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "target",
									Description: "Target name or number from the initiative order",
									Required:    true,
								},
							},
						},
						{
							Name:        "damage",
							Description: "Apply damage to a combatant",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "target",
									Description: "Target name or number from the initiative order",
									Required:    true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "amount",
									Description: "Damage amount",
									Required:    true,
								},
							},
						},
						{
							Name:        "next",
							Description: "Advance to the next turn",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        "show",
							Description: "Show the current initiative order",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
					},
				},
				{
					Name:        "settings",
					Description: "Update the game settings",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "tone",
							Description: "GM tone",
							Required:    false,
							Choices:     toneChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "genres",
							Description: "Comma-separated genres, e.g. Fantasy, Mystery",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "focus",
							Description: "Comma-separated gameplay focus, e.g. Role-Playing, Combat",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "lines",
							Description: "Content that must not appear at all",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "veils",
							Description: "Content that fades to black",
							Required:    false,
						},
					},
				},
				{
					Name:        "game",
					Description: "Save and load",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "save",
							Description: "Save your game",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        "load",
							Description: "Load your latest save",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        "journal",
							Description: "Show the latest adventure log entries",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
					},
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}

// assignOptions builds the six required integer options for stat assignment
func assignOptions() []*discordgo.ApplicationCommandOption {
	abilities := []string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma"}
	options := make([]*discordgo.ApplicationCommandOption, 0, len(abilities))
	for _, ability := range abilities {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        ability,
			Description: fmt.Sprintf("Rolled value for %s", ability),
			Required:    true,
		})
	}
	return options
}

func listChoices() []*discordgo.ApplicationCommandOptionChoice {
	return []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Inventory", Value: "inventory"},
		{Name: "Threads", Value: "threads"},
		{Name: "NPCs", Value: "npcs"},
		{Name: "Party", Value: "party"},
	}
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	h.handleCommand(s, i)
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != "gm" {
		return
	}
	if len(data.Options) == 0 {
		return
	}

	top := data.Options[0]

	// Direct subcommands first
	if top.Type == discordgo.ApplicationCommandOptionSubCommand {
		var err error
		switch top.Name {
		case "do":
			err = h.handleDo(s, i, top)
		case "check":
			err = h.handleCheck(s, i)
		case "roll":
			err = h.handleRoll(s, i, top)
		case "settings":
			err = h.handleSettings(s, i, top)
		}
		if err != nil {
			log.Printf("Error handling /gm %s: %v", top.Name, err)
		}
		return
	}

	if len(top.Options) == 0 {
		return
	}
	sub := top.Options[0]

	var err error
	switch top.Name {
	case "oracle":
		err = h.handleOracle(s, i, sub)
	case "scene":
		err = h.handleScene(s, i, sub)
	case "character":
		err = h.handleCharacter(s, i, sub)
	case "item":
		err = h.handleItem(s, i, sub)
	case "encounter":
		err = h.handleEncounter(s, i, sub)
	case "combat":
		err = h.handleCombat(s, i, sub)
	case "game":
		err = h.handleGame(s, i, sub)
	}
	if err != nil {
		log.Printf("Error handling /gm %s %s: %v", top.Name, sub.Name, err)
	}
}
