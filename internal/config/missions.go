package config

type MissionsConfig struct {
	Missions []MissionDef `yaml:"missions"`
}

// MissionDef describes one board entry. A title and an enemy preset are
// drawn from the pools each time a board is built.
type MissionDef struct {
	ID      string   `yaml:"id"`
	Titles  []string `yaml:"titles"`
	Enemies []string `yaml:"enemies"`
	Note    string   `yaml:"note"`
}
