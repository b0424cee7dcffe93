package settings

// Theme constants
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Settings is the singleton preferences record. ActiveSeason mirrors the
// name of the season whose Active flag is set; the season manager is the
// only writer of that field.
type Settings struct {
	ActiveSeason  string `json:"activeSeason"`
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
}

// Default returns the settings seeded on first run. The active season
// pointer is filled in by the caller once the default season exists.
func Default() Settings {
	return Settings{
		Theme:         ThemeLight,
		Language:      "fr",
		Notifications: true,
	}
}
