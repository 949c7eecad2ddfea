package shared

// AttackStat names the ability a weapon attacks with
type AttackStat string

const (
	AttackStatStrength  AttackStat = "strength"
	AttackStatDexterity AttackStat = "dexterity"
)

// ListItem is the shared record for every named list the game keeps:
// weapons, armor, spells, inventory, story threads, NPCs and party members.
// The typed extension fields only carry meaning for some lists; they stay
// zero-valued everywhere else.
type ListItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// AttackStat is set on weapons only
	AttackStat AttackStat `json:"attack_stat,omitempty"`

	// Attack marks spells that make attack rolls
	Attack bool `json:"attack,omitempty"`
}

// ContainsName reports whether any item in the list has the given name
func ContainsName(items []ListItem, name string) bool {
	for _, item := range items {
		if item.Name == name {
			return true
		}
	}
	return false
}

// RemoveAt returns the list with the item at index removed.
// Out-of-range indexes leave the list unchanged.
func RemoveAt(items []ListItem, index int) []ListItem {
	if index < 0 || index >= len(items) {
		return items
	}
	out := make([]ListItem, 0, len(items)-1)
	out = append(out, items[:index]...)
	out = append(out, items[index+1:]...)
	return out
}
