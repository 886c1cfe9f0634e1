package combat

import (
	"errors"
	"fmt"
	"sort"

	"adhop/internal/config"
)

// PlayerPreset is the preset id the player's avatar is built from.
const PlayerPreset = "player"

var ErrUnknownPreset = errors.New("unknown actor preset")

// PresetBook indexes actor definitions by id.
type PresetBook struct {
	byID map[string]config.ActorDef
}

func NewPresetBook(cfg *config.ActorsConfig) (*PresetBook, error) {
	pb := &PresetBook{byID: map[string]config.ActorDef{}}
	if cfg == nil {
		return pb, nil
	}
	for _, def := range cfg.Actors {
		if _, dup := pb.byID[def.ID]; dup {
			return nil, fmt.Errorf("actor %q defined twice", def.ID)
		}
		if _, err := NewActorFromDef(def); err != nil {
			return nil, err
		}
		pb.byID[def.ID] = def
	}
	return pb, nil
}

// Instantiate builds a fresh actor from the preset with the given id. The
// player preset falls back to NewPlayer when the book does not define it.
func (pb *PresetBook) Instantiate(id string) (*Actor, error) {
	if pb != nil {
		if def, ok := pb.byID[id]; ok {
			return NewActorFromDef(def)
		}
	}
	if id == PlayerPreset {
		return NewPlayer(""), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, id)
}

// Player builds the avatar and names it; an empty name keeps the preset's.
func (pb *PresetBook) Player(name string) (*Actor, error) {
	a, err := pb.Instantiate(PlayerPreset)
	if err != nil {
		return nil, err
	}
	if name != "" {
		a.Name = name
	}
	return a, nil
}

func (pb *PresetBook) IDs() []string {
	if pb == nil {
		return nil
	}
	out := make([]string, 0, len(pb.byID))
	for id := range pb.byID {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
