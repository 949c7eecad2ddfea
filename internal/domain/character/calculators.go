package character

// proficiencyByLevel is the One Page 5e proficiency bonus table for levels 1-20
var proficiencyByLevel = map[int]int{
	1: 2, 2: 2, 3: 2, 4: 2,
	5: 3, 6: 3, 7: 3, 8: 3,
	9: 4, 10: 4, 11: 4, 12: 4,
	13: 5, 14: 5, 15: 5, 16: 5,
	17: 6, 18: 6, 19: 6, 20: 6,
}

// ProficiencyBonus returns the proficiency bonus for a level.
// Levels outside [1, 20] are clamped into range.
func ProficiencyBonus(level int) int {
	if level < 1 {
		level = 1
	}
	if level > 20 {
		level = 20
	}
	return proficiencyByLevel[level]
}

// Recalculate derives proficiency, initiative, AC and hit points from
// {level, attributes, equipped armor}. It is pure and idempotent: callers
// invoke it after any mutation of the three watched fields and commit the
// returned sheet as the new state.
func Recalculate(sheet *Sheet) *Sheet {
	out := sheet.Clone()

	dexMod := Modifier(out.Attributes.Dexterity)
	wisMod := Modifier(out.Attributes.Wisdom)
	conMod := Modifier(out.Attributes.Constitution)

	equipped := equippedArmor(out)

	// Armor penalties do not stack; only the single worst one applies,
	// and it reduces initiative as well as AC.
	penalty := 0
	for _, armor := range equipped {
		if armor.Penalty < penalty {
			penalty = armor.Penalty
		}
	}
	effectiveDexMod := dexMod + penalty

	out.Proficiency = ProficiencyBonus(out.Level)
	out.Initiative = effectiveDexMod
	out.AC = armorClass(equipped, effectiveDexMod, wisMod)

	if out.Level == 1 && out.Archetype != ArchetypeNone {
		if def, ok := GetArchetypeDefinition(out.Archetype); ok {
			out.MaxHP = def.HitDie + conMod
			if out.HP > out.MaxHP {
				out.HP = out.MaxHP
			}
		}
	} else if out.Archetype == ArchetypeNone {
		out.MaxHP = 10 + conMod
		if out.HP > out.MaxHP {
			out.HP = out.MaxHP
		}
	}
	// Levels past 1 do not recompute max HP.

	return out
}

// equippedArmor resolves the sheet's armor items against the catalog,
// skipping items the catalog does not know
func equippedArmor(sheet *Sheet) []ArmorData {
	var equipped []ArmorData
	for _, item := range sheet.Armor {
		if data, ok := FindArmor(item.Name); ok {
			equipped = append(equipped, data)
		}
	}
	return equipped
}

// armorClass picks the single equipped piece yielding the highest AC.
// Fixed-AC heavy armor ignores dexterity. With no armor equipped the
// character is at 10 + effective dexterity modifier.
func armorClass(equipped []ArmorData, effectiveDexMod, wisMod int) int {
	best := 0
	for _, armor := range equipped {
		var ac int
		switch armor.ACAbility {
		case AbilityDexterity:
			ac = armor.BaseAC + effectiveDexMod
		case AbilityWisdom:
			ac = armor.BaseAC + wisMod
		default:
			ac = armor.BaseAC
		}
		if ac > best {
			best = ac
		}
	}

	if best > 0 {
		return best
	}
	return 10 + effectiveDexMod
}
