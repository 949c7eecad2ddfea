package game

// Settings steer the narrator: what kind of story this is and what content
// stays out of it. Lines are hard exclusions, veils fade to black.
type Settings struct {
	Genres        []string `json:"genres"`
	GMTone        string   `json:"gm_tone"`
	GameplayFocus []string `json:"gameplay_focus"`
	Lines         string   `json:"lines"`
	Veils         string   `json:"veils"`
}

var Genres = []string{
	"Fantasy", "Sci-Fi", "Horror", "Modern", "Cyberpunk", "Post-Apocalyptic",
	"Superhero", "Western", "Noir", "Mystery", "Adventure", "Historical",
}

var GameplayFocuses = []string{"Role-Playing", "Exploration", "Combat", "Intrigue"}

var GMTones = []string{
	"Default (Balanced)",
	"Gritty and Dangerous",
	"Heroic and Epic",
	"Mysterious and Eerie",
	"Humorous and Lighthearted",
	"Action-Packed and Fast-Paced",
}

// DefaultSettings returns the fresh-session settings
func DefaultSettings() Settings {
	return Settings{
		Genres:        []string{"Fantasy"},
		GMTone:        GMTones[0],
		GameplayFocus: []string{"Role-Playing"},
	}
}
