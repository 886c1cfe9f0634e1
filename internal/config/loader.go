package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

func LoadAll(dir string) (*ActorsConfig, *MissionsConfig, error) {
	var ac ActorsConfig
	var mc MissionsConfig
	if err := loadYAML(filepath.Join(dir, "actors.yaml"), &ac); err != nil {
		return nil, nil, fmt.Errorf("load actors: %w", err)
	}
	if err := loadYAML(filepath.Join(dir, "missions.yaml"), &mc); err != nil {
		return nil, nil, fmt.Errorf("load missions: %w", err)
	}
	applyDefaults(&mc)
	return &ac, &mc, nil
}

// applyDefaults names missions that were given no id after their first
// title. Actor defaults are filled while decoding.
func applyDefaults(mc *MissionsConfig) {
	for i := range mc.Missions {
		m := &mc.Missions[i]
		if m.ID == "" && len(m.Titles) > 0 {
			m.ID = m.Titles[0]
		}
	}
}
