package combat

import (
	"errors"
	"fmt"

	"adhop/internal/config"
)

var (
	ErrEmptyBoard    = errors.New("mission board is empty")
	ErrNoSuchMission = errors.New("no such mission")
)

// MissionBoard is the list of adventures on offer and the one chosen.
type MissionBoard struct {
	Missions    []*Mission
	ActiveIndex int
}

// NewMissionBoard builds one mission per definition, drawing its title and
// enemy from the definition's pools.
func NewMissionBoard(cfg *config.MissionsConfig, book *PresetBook, rng Source) (*MissionBoard, error) {
	b := &MissionBoard{}
	if cfg != nil {
		for _, def := range cfg.Missions {
			title := pick(def.Titles, rng)
			if title == "" {
				title = def.ID
			}
			enemyID := pick(def.Enemies, rng)
			enemy, err := book.Instantiate(enemyID)
			if err != nil {
				return nil, fmt.Errorf("mission %q: %w", def.ID, err)
			}
			b.Missions = append(b.Missions, NewMissionWith(title, *enemy))
		}
	}
	if len(b.Missions) == 0 {
		return nil, ErrEmptyBoard
	}
	return b, nil
}

func (b *MissionBoard) Active() *Mission { return b.Missions[b.ActiveIndex] }

func (b *MissionBoard) Select(i int) error {
	if i < 0 || i >= len(b.Missions) {
		return fmt.Errorf("%w: index %d of %d", ErrNoSuchMission, i, len(b.Missions))
	}
	b.ActiveIndex = i
	return nil
}

// Refresh swaps the active mission for a fresh copy and returns it.
func (b *MissionBoard) Refresh() *Mission {
	next := b.Active().Reset()
	b.Missions[b.ActiveIndex] = next
	return next
}

func (b *MissionBoard) Titles() []string {
	out := make([]string, len(b.Missions))
	for i, m := range b.Missions {
		out[i] = m.Title
	}
	return out
}

func pick(pool []string, rng Source) string {
	switch len(pool) {
	case 0:
		return ""
	case 1:
		return pool[0]
	}
	return pool[rng.Intn(len(pool))]
}
