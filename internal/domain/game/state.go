package game

import (
	"time"

	"github.com/PhantomGM/mythic-bot/internal/domain/character"
	"github.com/PhantomGM/mythic-bot/internal/domain/game/combat"
	"github.com/PhantomGM/mythic-bot/internal/domain/shared"
)

// DefaultChaosFactor starts every session in the middle of the scale
const DefaultChaosFactor = 5

// PendingCheck is a proficiency check the narrator asked for. The session
// stalls on it until the player resolves the roll against the DC.
type PendingCheck struct {
	Action      string `json:"action"`
	Proficiency string `json:"proficiency"`
	DC          int    `json:"dc"`
}

// State is the whole-game snapshot: everything that survives a save/load
// round trip. Fields that the snapshot may lack default independently on
// load, see Normalize.
type State struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`

	Sheet   *character.Sheet  `json:"character_sheet"`
	Threads []shared.ListItem `json:"threads"`
	NPCs    []shared.ListItem `json:"characters"`
	Party   []shared.ListItem `json:"party"`

	Journal       string `json:"journal"`
	ChaosFactor   int    `json:"chaos_factor"`
	ExpectedScene string `json:"expected_scene"`

	Settings  Settings `json:"game_settings"`
	ActiveTab string   `json:"active_tab"`

	PendingCheck *PendingCheck `json:"pending_check,omitempty"`

	Encounter []combat.EncounterMonster `json:"encounter"`
	Combat    *combat.State             `json:"combat"`

	CreatedAt time.Time `json:"created_at"`
	SavedAt   time.Time `json:"saved_at"`
}

// NewState returns a fresh session
func NewState() *State {
	return &State{
		Sheet:       character.NewSheet(),
		Threads:     []shared.ListItem{},
		NPCs:        []shared.ListItem{},
		Party:       []shared.ListItem{},
		ChaosFactor: DefaultChaosFactor,
		Settings:    DefaultSettings(),
		ActiveTab:   "Play",
		Encounter:   []combat.EncounterMonster{},
		Combat:      combat.NewState(),
		CreatedAt:   time.Now(),
	}
}

// Normalize fills in whatever a loaded snapshot is missing, field by field,
// so partial saves from older versions still load.
func (s *State) Normalize() {
	if s.Sheet == nil {
		s.Sheet = character.NewSheet()
	}
	if s.Threads == nil {
		s.Threads = []shared.ListItem{}
	}
	if s.NPCs == nil {
		s.NPCs = []shared.ListItem{}
	}
	if s.Party == nil {
		s.Party = []shared.ListItem{}
	}
	if s.ChaosFactor == 0 {
		s.ChaosFactor = DefaultChaosFactor
	}
	if s.Settings.GMTone == "" {
		s.Settings = DefaultSettings()
	}
	if s.ActiveTab == "" {
		s.ActiveTab = "Play"
	}
	if s.Encounter == nil {
		s.Encounter = []combat.EncounterMonster{}
	}
	if s.Combat == nil {
		s.Combat = combat.NewState()
	}
	if s.Combat.Status == "" {
		s.Combat.Status = combat.StatusNotStarted
	}
	if s.Combat.Status == combat.StatusInCombat && s.Combat.Round == 0 {
		s.Combat.Round = 1
	}
}

// AppendJournal appends one entry to the adventure journal
func (s *State) AppendJournal(entry string) {
	s.Journal += entry + "\n\n"
}

// AppendGM appends a narrator reply to the journal with the GM prefix
func (s *State) AppendGM(entry string) {
	s.AppendJournal("GM: " + entry)
}
