package combat

import (
	"fmt"
	"regexp"
	"sort"

	internal "github.com/PhantomGM/mythic-bot/internal"
	"github.com/PhantomGM/mythic-bot/internal/dice"
	"github.com/PhantomGM/mythic-bot/internal/domain/character"
	"github.com/PhantomGM/mythic-bot/internal/domain/shared"
	"github.com/PhantomGM/mythic-bot/internal/uuid"
)

// Status represents where the combat state machine is
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInCombat   Status = "in_combat"
	StatusEnded      Status = "ended"
)

// Combatant is an ephemeral per-combat instance spawned from a monster
// template or the player sheet. It lives only for the duration of one combat.
type Combatant struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CurrentHP  int    `json:"current_hp"`
	MaxHP      int    `json:"max_hp"`
	AC         int    `json:"ac"`
	Initiative int    `json:"initiative"`
	Attack     string `json:"attack,omitempty"`
	IsPlayer   bool   `json:"is_player"`
}

// IsAlive returns true if the combatant has more than 0 HP
func (c *Combatant) IsAlive() bool {
	return c.CurrentHP > 0
}

// AttackResult is the full resolution of one player attack
type AttackResult struct {
	WeaponName  string `json:"weapon_name"`
	TargetName  string `json:"target_name"`
	D20         int    `json:"d20"`
	AttackBonus int    `json:"attack_bonus"`
	Total       int    `json:"total"`
	TargetAC    int    `json:"target_ac"`
	Hit         bool   `json:"hit"`
	Critical    bool   `json:"critical"`

	DamageExpression string `json:"damage_expression,omitempty"`
	DamageRolls      []int  `json:"damage_rolls,omitempty"`
	Damage           int    `json:"damage"`
	TargetDefeated   bool   `json:"target_defeated"`
}

// State is the combat state machine. Combatants are ordered by initiative and
// the turn pointer indexes into that order.
type State struct {
	Status     Status       `json:"status"`
	Round      int          `json:"round"`
	Turn       int          `json:"turn"`
	Combatants []*Combatant `json:"combatants"`
	Log        []string     `json:"log"`
}

// NewState returns a combat state machine that has not started
func NewState() *State {
	return &State{Status: StatusNotStarted}
}

// damagePattern extracts the dice expression a weapon description embeds
// after the "Dmg:" marker
var damagePattern = regexp.MustCompile(`Dmg:\s*([^\s|]+)`)

// Start spawns combatants from the encounter roster plus exactly one player
// combatant from the sheet, rolls initiative and sorts descending. Ties keep
// insertion order. Rolls, in order: one d20 per monster in roster order, then
// the player's d20.
func (s *State) Start(roster []EncounterMonster, sheet *character.Sheet, gen uuid.Generator, roller dice.Roller) error {
	if s.Status == StatusInCombat {
		return internal.NewInvalidStateError("combat is already underway")
	}
	if len(roster) == 0 {
		return internal.NewInvalidStateError("the encounter roster is empty")
	}

	combatants := []*Combatant{}
	for _, em := range roster {
		for i := 1; i <= em.Quantity; i++ {
			name := em.Monster.Name
			if em.Quantity > 1 {
				name = fmt.Sprintf("%s %d", name, i)
			}

			initiative, err := roller.RollDie(20)
			if err != nil {
				return fmt.Errorf("failed to roll initiative for %s: %w", name, err)
			}

			combatants = append(combatants, &Combatant{
				ID:         gen.New(),
				Name:       name,
				CurrentHP:  em.Monster.HP,
				MaxHP:      em.Monster.HP,
				AC:         em.Monster.AC,
				Initiative: initiative,
				Attack:     em.Monster.Attack,
			})
		}
	}

	playerName := sheet.Name
	if playerName == "" {
		playerName = "Player"
	}

	d20, err := roller.RollDie(20)
	if err != nil {
		return fmt.Errorf("failed to roll player initiative: %w", err)
	}

	combatants = append(combatants, &Combatant{
		ID:         gen.New(),
		Name:       playerName,
		CurrentHP:  sheet.HP,
		MaxHP:      sheet.MaxHP,
		AC:         sheet.AC,
		Initiative: d20 + sheet.Initiative,
		IsPlayer:   true,
	})

	sort.SliceStable(combatants, func(i, j int) bool {
		return combatants[i].Initiative > combatants[j].Initiative
	})

	s.Status = StatusInCombat
	s.Round = 1
	s.Turn = 0
	s.Combatants = combatants
	s.Log = []string{}

	s.appendLog("-- COMBAT STARTED! INITIATIVE ORDER --")
	for i, c := range combatants {
		s.appendLog(fmt.Sprintf("%d. %s (%d)", i+1, c.Name, c.Initiative))
	}

	return nil
}

// NextTurn advances the turn pointer, starting a new round when it wraps.
// Combat ends instead when at most one combatant is still standing.
func (s *State) NextTurn() error {
	if s.Status != StatusInCombat {
		return internal.NewInvalidStateError("no combat in progress")
	}

	living := 0
	for _, c := range s.Combatants {
		if c.IsAlive() {
			living++
		}
	}
	if living <= 1 {
		s.end("-- Combat has ended. --")
		return nil
	}

	s.Turn++
	if s.Turn >= len(s.Combatants) {
		s.Turn = 0
		s.Round++
		s.appendLog(fmt.Sprintf("-- Round %d begins --", s.Round))
	}

	return nil
}

// CurrentCombatant returns the combatant whose turn it is
func (s *State) CurrentCombatant() *Combatant {
	if s.Status != StatusInCombat || s.Turn >= len(s.Combatants) {
		return nil
	}
	return s.Combatants[s.Turn]
}

// Combatant finds a combatant by ID
func (s *State) Combatant(id string) *Combatant {
	for _, c := range s.Combatants {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Player returns the player combatant, or nil outside combat
func (s *State) Player() *Combatant {
	for _, c := range s.Combatants {
		if c.IsPlayer {
			return c
		}
	}
	return nil
}

// PlayerAttack resolves one player attack against a living target. A natural
// 20 always hits and doubles the rolled damage. The damage expression comes
// out of the weapon description's "Dmg:" marker; a weapon without one still
// hits but deals nothing.
func (s *State) PlayerAttack(sheet *character.Sheet, weapon shared.ListItem, targetID string, roller dice.Roller) (*AttackResult, error) {
	if s.Status != StatusInCombat {
		return nil, internal.NewInvalidStateError("no combat in progress")
	}
	if weapon.AttackStat == "" {
		return nil, internal.NewInvalidParamError(fmt.Sprintf("%s has no attack stat", weapon.Name))
	}

	target := s.Combatant(targetID)
	if target == nil {
		return nil, internal.NewNotFoundError(fmt.Sprintf("combatant %s", targetID))
	}
	if !target.IsAlive() {
		return nil, internal.NewInvalidStateError(fmt.Sprintf("%s is already down", target.Name))
	}

	score := sheet.Attributes.Strength
	if weapon.AttackStat == shared.AttackStatDexterity {
		score = sheet.Attributes.Dexterity
	}
	modifier := character.Modifier(score)
	attackBonus := modifier + sheet.Proficiency

	d20, err := roller.RollDie(20)
	if err != nil {
		return nil, fmt.Errorf("failed to roll attack: %w", err)
	}

	result := &AttackResult{
		WeaponName:  weapon.Name,
		TargetName:  target.Name,
		D20:         d20,
		AttackBonus: attackBonus,
		Total:       d20 + attackBonus,
		TargetAC:    target.AC,
	}

	s.appendLog(fmt.Sprintf("-- %s attacks %s with %s! --", sheet.Name, target.Name, weapon.Name))
	s.appendLog(fmt.Sprintf("Attack Roll: %d (d20:%d + %d[mod] + %d[prof]) vs AC %d",
		result.Total, d20, modifier, sheet.Proficiency, target.AC))

	if result.Total < target.AC && d20 != 20 {
		s.appendLog("MISS!")
		return result, nil
	}

	result.Hit = true
	s.appendLog("HIT!")

	match := damagePattern.FindStringSubmatch(weapon.Description)
	if match == nil {
		return result, nil
	}

	roll, err := dice.ParseAndRoll(roller, match[1])
	if err != nil {
		return nil, fmt.Errorf("failed to roll damage: %w", err)
	}

	damage := roll.Total
	if d20 == 20 {
		result.Critical = true
		damage += roll.Total
		s.appendLog("CRITICAL HIT!")
	}

	result.DamageExpression = match[1]
	result.DamageRolls = roll.Rolls
	result.Damage = damage

	s.appendLog(fmt.Sprintf("Damage Roll (%s): %d %v", match[1], damage, roll.Rolls))
	s.ApplyDamage(targetID, damage)
	result.TargetDefeated = !target.IsAlive()

	return result, nil
}

// ApplyDamage deals damage to a combatant, flooring HP at zero. When the last
// monster drops the combat ends on its own.
func (s *State) ApplyDamage(targetID string, damage int) *Combatant {
	target := s.Combatant(targetID)
	if target == nil {
		return nil
	}

	defeated := false
	hp := target.CurrentHP - damage
	if hp <= 0 {
		hp = 0
		defeated = target.CurrentHP > 0
	}
	target.CurrentHP = hp

	s.appendLog(fmt.Sprintf("%s takes %d damage.", target.Name, damage))
	if defeated {
		s.appendLog(fmt.Sprintf("%s has been defeated!", target.Name))
	}

	monstersLeft := 0
	for _, c := range s.Combatants {
		if !c.IsPlayer && c.IsAlive() {
			monstersLeft++
		}
	}
	if monstersLeft == 0 && s.Status == StatusInCombat {
		s.end("-- All monsters defeated! Combat ends. --")
	}

	return target
}

// SyncPlayerHP mirrors a sheet hit point change into the player combatant.
// Dropping to zero logs the defeat but leaves the combat state machine alone.
func (s *State) SyncPlayerHP(hp int) *Combatant {
	player := s.Player()
	if player == nil {
		return nil
	}

	wasAlive := player.IsAlive()
	player.CurrentHP = hp
	if hp == 0 && wasAlive {
		s.appendLog(fmt.Sprintf("%s has been defeated!", player.Name))
	}
	return player
}

// End stops combat and discards the combatants
func (s *State) End() {
	if s.Status == StatusInCombat {
		s.appendLog("-- Combat has ended. --")
	}
	s.Status = StatusEnded
	s.Combatants = nil
	s.Round = 0
	s.Turn = 0
}

func (s *State) end(message string) {
	s.appendLog(message)
	s.Status = StatusEnded
}

func (s *State) appendLog(entry string) {
	s.Log = append(s.Log, entry)
}
