package config

import "gopkg.in/yaml.v3"

type ActorsConfig struct {
	Actors []ActorDef `yaml:"actors"`
}

type ActorDef struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	MaxHP        int     `yaml:"max_hp"`
	MinDamage    int     `yaml:"min_damage"`
	MaxDamage    int     `yaml:"max_damage"`
	RetreatRatio float64 `yaml:"retreat_ratio"`
	Note         string  `yaml:"note"`
}

// UnmarshalYAML fills stats missing from the entry with those of the base
// actor. Keys that are present keep their value, zero included, so bad
// stats reach validation.
func (d *ActorDef) UnmarshalYAML(node *yaml.Node) error {
	type plain ActorDef
	p := plain{MaxHP: 10, MinDamage: 1}
	if err := node.Decode(&p); err != nil {
		return err
	}
	if !hasKey(node, "max_damage") {
		p.MaxDamage = max(p.MinDamage, 2)
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	*d = ActorDef(p)
	return nil
}

func hasKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}
