package combat

// EncounterMonster pairs a monster template with how many of it the next
// combat will spawn
type EncounterMonster struct {
	Monster  Monster `json:"monster"`
	Quantity int     `json:"quantity"`
}

// AddToRoster adds one more of the given monster to the encounter roster,
// bumping the quantity when the monster is already listed
func AddToRoster(roster []EncounterMonster, monster Monster) []EncounterMonster {
	for i, em := range roster {
		if em.Monster.Name == monster.Name {
			out := append([]EncounterMonster{}, roster...)
			out[i].Quantity++
			return out
		}
	}
	return append(append([]EncounterMonster{}, roster...), EncounterMonster{Monster: monster, Quantity: 1})
}

// AdjustQuantity changes a roster entry's quantity by delta. Quantities never
// go below zero, and entries that reach zero are dropped from the roster.
func AdjustQuantity(roster []EncounterMonster, name string, delta int) []EncounterMonster {
	out := make([]EncounterMonster, 0, len(roster))
	for _, em := range roster {
		if em.Monster.Name == name {
			em.Quantity += delta
			if em.Quantity <= 0 {
				continue
			}
		}
		out = append(out, em)
	}
	return out
}

// RemoveFromRoster drops a monster from the roster entirely
func RemoveFromRoster(roster []EncounterMonster, name string) []EncounterMonster {
	out := make([]EncounterMonster, 0, len(roster))
	for _, em := range roster {
		if em.Monster.Name != name {
			out = append(out, em)
		}
	}
	return out
}

// RosterXP totals the experience the roster is worth
func RosterXP(roster []EncounterMonster) int {
	total := 0
	for _, em := range roster {
		total += em.Monster.XP * em.Quantity
	}
	return total
}
