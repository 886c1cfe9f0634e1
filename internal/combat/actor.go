package combat

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"adhop/internal/config"
)

const (
	DefaultActorName  = "actor_name"
	DefaultPlayerName = "Avatar"
)

var ErrInvalidActor = errors.New("invalid actor")

// Actor holds the combat stats of a player or an enemy. HP may drop below
// zero while an encounter is being resolved; it is clamped before the
// resolver returns.
type Actor struct {
	Name         string  `json:"name"`
	MaxHP        int     `json:"max_hp"`
	HP           int     `json:"hp"`
	MinDamage    int     `json:"min_damage"`
	MaxDamage    int     `json:"max_damage"`
	RetreatRatio float64 `json:"retreat_ratio"`
}

// ActorState is the read-only view of an actor used for reporting.
type ActorState struct {
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"max_hp"`
}

// NewActor returns an actor with the base stats: 10 HP, 1-2 damage and no
// retreat threshold.
func NewActor(name string) *Actor {
	if name == "" {
		name = DefaultActorName
	}
	a := &Actor{Name: name, MaxHP: 10, MinDamage: 1, MaxDamage: 2}
	a.Heal(0)
	return a
}

// NewPlayer returns the player's avatar: base stats with 1-3 damage and a
// retreat at 10% of max HP.
func NewPlayer(name string) *Actor {
	if name == "" {
		name = DefaultPlayerName
	}
	a := NewActor(name)
	a.MaxDamage = 3
	a.RetreatRatio = 0.1
	return a
}

func NewActorFromDef(def config.ActorDef) (*Actor, error) {
	a := &Actor{
		Name:         def.Name,
		MaxHP:        def.MaxHP,
		MinDamage:    def.MinDamage,
		MaxDamage:    def.MaxDamage,
		RetreatRatio: def.RetreatRatio,
	}
	if a.Name == "" {
		a.Name = def.ID
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("actor %q: %w", def.ID, err)
	}
	a.Heal(0)
	return a, nil
}

func (a *Actor) Validate() error {
	switch {
	case a.MaxHP <= 0:
		return fmt.Errorf("%w: max_hp %d must be positive", ErrInvalidActor, a.MaxHP)
	case a.MinDamage <= 0:
		return fmt.Errorf("%w: min_damage %d must be positive", ErrInvalidActor, a.MinDamage)
	case a.MinDamage > a.MaxDamage:
		return fmt.Errorf("%w: min_damage %d exceeds max_damage %d", ErrInvalidActor, a.MinDamage, a.MaxDamage)
	case a.RetreatRatio < 0 || a.RetreatRatio >= 1:
		return fmt.Errorf("%w: retreat_ratio %.2f outside [0,1)", ErrInvalidActor, a.RetreatRatio)
	}
	return nil
}

// Heal restores the actor to full HP when amount is 0. Any other amount,
// negative ones included, is applied only if the result stays within
// MaxHP; otherwise HP is left unchanged.
func (a *Actor) Heal(amount int) {
	if amount == 0 {
		a.HP = a.MaxHP
		return
	}
	if a.HP+amount <= a.MaxHP {
		a.HP += amount
	}
}

// Withdraws reports whether the actor is at or below its retreat threshold
// and will not act this turn.
func (a *Actor) Withdraws() bool {
	return float64(a.HP) <= float64(a.MaxHP)*a.RetreatRatio
}

func (a *Actor) Down() bool { return a.HP <= 0 }

func (a *Actor) State() ActorState {
	hp := a.HP
	if hp < 0 {
		hp = 0
	}
	return ActorState{Name: a.Name, HP: hp, MaxHP: a.MaxHP}
}

// rollDamage draws uniformly from [MinDamage, MaxDamage].
func (a *Actor) rollDamage(rng Source) int {
	return a.MinDamage + rng.Intn(a.MaxDamage-a.MinDamage+1)
}

// NormalizeName keeps the word characters of raw exactly as typed and drops
// everything else. An empty result falls back to DefaultPlayerName.
func NormalizeName(raw string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return -1
	}, raw)
	if name == "" {
		return DefaultPlayerName
	}
	return name
}
