package combat

// Monster is a static monster template. Attack is a display string; monsters
// never roll their own attacks, the player narrates those through the oracle.
type Monster struct {
	Name   string `json:"name"`
	Attack string `json:"attack"`
	AC     int    `json:"ac"`
	HP     int    `json:"hp"`
	CR     string `json:"cr"`
	XP     int    `json:"xp"`
}

// MonsterCatalog is the stock bestiary offered by the encounter builder
var MonsterCatalog = []Monster{
	{Name: "Goblin", Attack: "Dagger +2/1D4", AC: 15, HP: 7, CR: "1/4", XP: 50},
	{Name: "Skeleton", Attack: "Sword +4/1D6", AC: 13, HP: 13, CR: "1/4", XP: 50},
	{Name: "Zombie", Attack: "Necro Bite +3/1D6+1", AC: 8, HP: 22, CR: "1/4", XP: 50},
	{Name: "Vampire Bat", Attack: "Drain +4/2D4", AC: 12, HP: 22, CR: "1/8", XP: 25},
	{Name: "Dire Wolf", Attack: "Bite +5/2D6", AC: 14, HP: 37, CR: "1", XP: 200},
	{Name: "Little Dragon", Attack: "Fire Blast +4/3D6", AC: 17, HP: 38, CR: "2", XP: 450},
}

// FindMonster looks up a catalog monster by name
func FindMonster(name string) (Monster, bool) {
	for _, m := range MonsterCatalog {
		if m.Name == name {
			return m, true
		}
	}
	return Monster{}, false
}
