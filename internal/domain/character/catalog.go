package character

import (
	"fmt"

	"github.com/PhantomGM/mythic-bot/internal/domain/shared"
)

// WeaponData is a One Page 5e weapon catalog entry
type WeaponData struct {
	Name       string
	Damage     string
	Cost       string
	AttackStat shared.AttackStat
}

// ArmorData is a One Page 5e armor catalog entry. ACAbility is empty for
// heavy armor, whose fixed AC ignores dexterity entirely.
type ArmorData struct {
	Name      string
	BaseAC    int
	ACAbility Ability
	Penalty   int
	Cost      string
}

// SpellData is a One Page 5e spell catalog entry
type SpellData struct {
	Name   string
	Range  string
	Use    string
	Attack bool
}

var WeaponCatalog = []WeaponData{
	{Name: "Wand", Damage: "1D4", Cost: "3G", AttackStat: shared.AttackStatDexterity},
	{Name: "Sling", Damage: "1D4", Cost: "2G", AttackStat: shared.AttackStatDexterity},
	{Name: "Dagger", Damage: "1D4", Cost: "2G", AttackStat: shared.AttackStatDexterity},
	{Name: "Staff", Damage: "1D6", Cost: "10G", AttackStat: shared.AttackStatStrength},
	{Name: "Mace", Damage: "1D6", Cost: "5G", AttackStat: shared.AttackStatStrength},
	{Name: "Axe", Damage: "1D8", Cost: "10G", AttackStat: shared.AttackStatStrength},
	{Name: "Hammer", Damage: "1D8", Cost: "25G", AttackStat: shared.AttackStatStrength},
	{Name: "Bow", Damage: "1D8", Cost: "50G", AttackStat: shared.AttackStatDexterity},
	{Name: "Crossbow", Damage: "1D10", Cost: "75G", AttackStat: shared.AttackStatDexterity},
	{Name: "Sword", Damage: "2D6", Cost: "50G", AttackStat: shared.AttackStatStrength},
}

var ArmorCatalog = []ArmorData{
	{Name: "Moon Cloak", BaseAC: 11, ACAbility: AbilityWisdom, Penalty: 0, Cost: "10G"},
	{Name: "Burlap Tunic", BaseAC: 11, ACAbility: AbilityDexterity, Penalty: 0, Cost: "25G"},
	{Name: "Leather Armor", BaseAC: 12, ACAbility: AbilityDexterity, Penalty: 0, Cost: "50G"},
	{Name: "Chainmail Armor", BaseAC: 14, Penalty: -1, Cost: "75G"},
	{Name: "Platemail Armor", BaseAC: 15, Penalty: -2, Cost: "50G"},
}

var SpellCatalog = []SpellData{
	{Name: "Acid Orb", Range: "60 Feet", Use: "1D4 DMG per Lvl", Attack: true},
	{Name: "Necrotic Chill", Range: "Touch", Use: "1D6 DMG per Lvl", Attack: true},
	{Name: "Flame Bolt", Range: "120 Feet", Use: "1D8 DMG per Lvl", Attack: true},
	{Name: "Light as Air", Range: "Touch", Use: "Float 5ft in air per Lvl", Attack: false},
	{Name: "Create Light", Range: "Touch", Use: "Illuminate 10ft per Lvl", Attack: false},
	{Name: "Ease Pain", Range: "Touch", Use: "Heal 1D4 HP per Lvl", Attack: false},
}

// FindWeapon looks up a catalog weapon by name
func FindWeapon(name string) (WeaponData, bool) {
	for _, w := range WeaponCatalog {
		if w.Name == name {
			return w, true
		}
	}
	return WeaponData{}, false
}

// FindArmor looks up a catalog armor piece by name
func FindArmor(name string) (ArmorData, bool) {
	for _, a := range ArmorCatalog {
		if a.Name == name {
			return a, true
		}
	}
	return ArmorData{}, false
}

// FindSpell looks up a catalog spell by name
func FindSpell(name string) (SpellData, bool) {
	for _, s := range SpellCatalog {
		if s.Name == name {
			return s, true
		}
	}
	return SpellData{}, false
}

// Item builds the sheet list item for a catalog weapon. The damage expression
// is embedded in the description with the fixed "Dmg:" marker the combat
// resolver extracts it by.
func (w WeaponData) Item() shared.ListItem {
	modAbbr := "STR"
	if w.AttackStat == shared.AttackStatDexterity {
		modAbbr = "DEX"
	}
	return shared.ListItem{
		Name:        w.Name,
		Description: fmt.Sprintf("Atk: d20+%s+Prof | Dmg: %s", modAbbr, w.Damage),
		AttackStat:  w.AttackStat,
	}
}

// ACString renders the armor's AC formula the way the sheet displays it
func (a ArmorData) ACString() string {
	switch a.ACAbility {
	case AbilityDexterity:
		return fmt.Sprintf("%d + Dex", a.BaseAC)
	case AbilityWisdom:
		return fmt.Sprintf("%d + Wis", a.BaseAC)
	default:
		return fmt.Sprintf("%d", a.BaseAC)
	}
}

// Item builds the sheet list item for a catalog armor piece
func (a ArmorData) Item() shared.ListItem {
	return shared.ListItem{
		Name:        a.Name,
		Description: fmt.Sprintf("AC: %s, Penalty: %d", a.ACString(), a.Penalty),
	}
}

// Item builds the sheet list item for a catalog spell, using the character's
// spellcasting ability for the attack string
func (s SpellData) Item(spellcasting SpellcastingAbility) shared.ListItem {
	description := fmt.Sprintf("Use: %s", s.Use)
	if s.Attack {
		abbr := "INT"
		if spellcasting == SpellcastingWisdom {
			abbr = "WIS"
		}
		description = fmt.Sprintf("Atk: d20+%s+Prof | Use: %s", abbr, s.Use)
	}
	return shared.ListItem{
		Name:        s.Name,
		Description: description,
		Attack:      s.Attack,
	}
}
