package combat

import "github.com/google/uuid"

// Mission is one encounter against an enemy it owns. A mission is resolved
// once; Reset produces the next one.
type Mission struct {
	ID     string
	Title  string
	Enemy  *Actor
	Result Result

	// Turns counts the attacks made by the last Resolve, First names the
	// actor that moved first.
	Turns int
	First string

	Emit func(Event)

	template Actor
}

// NewMission creates a mission against a base-stat enemy called enemyName.
func NewMission(title, enemyName string) *Mission {
	return NewMissionWith(title, *NewActor(enemyName))
}

// NewMissionWith creates a mission against a copy of enemy at full HP.
func NewMissionWith(title string, enemy Actor) *Mission {
	enemy.Heal(0)
	owned := enemy
	return &Mission{
		ID:       uuid.NewString(),
		Title:    title,
		Enemy:    &owned,
		template: enemy,
	}
}

// Reset returns a fresh, unresolved mission with the same title and enemy
// stats. The receiver is left untouched.
func (m *Mission) Reset() *Mission {
	next := NewMissionWith(m.Title, m.template)
	next.Emit = m.Emit
	return next
}

// Resolve fights player against the mission's enemy until one side is at
// or below its retreat threshold at the start of its turn, then classifies
// the encounter. The first mover is drawn once per call.
func (m *Mission) Resolve(player *Actor, rng Source) Result {
	order := [2]*Actor{player, m.Enemy}
	if rng.Intn(2) == 1 {
		order[0], order[1] = order[1], order[0]
	}
	m.First = order[0].Name
	m.Turns = 0
	m.emit("Engage", map[string]any{
		"mission": m.ID, "first": m.First,
		"player_hp": player.HP, "enemy_hp": m.Enemy.HP,
	})

	for i := 0; ; i ^= 1 {
		atk, def := order[i], order[1-i]
		if atk.Withdraws() {
			kind := "Withdraw"
			if atk.Down() {
				kind = "Fall"
			}
			m.emit(kind, map[string]any{"actor": atk.Name, "hp": atk.HP})
			break
		}
		dmg := atk.rollDamage(rng)
		def.HP -= dmg
		m.Turns++
		m.emit("Attack", map[string]any{
			"attacker": atk.Name, "target": def.Name, "dmg": dmg, "hp": def.HP,
		})
	}

	switch {
	case m.Enemy.HP <= 0:
		m.Enemy.HP = 0
		m.Result = Win
	case player.HP > 0:
		m.Result = Retreat
	default:
		player.HP = 0
		m.Result = Lose
	}
	m.emit("Resolve", map[string]any{
		"result": m.Result.String(), "player_hp": player.HP, "enemy_hp": m.Enemy.HP,
	})
	return m.Result
}

// Outcome reports the last resolution for display.
func (m *Mission) Outcome(player *Actor) Outcome {
	return Outcome{
		MissionID: m.ID,
		Title:     m.Title,
		Result:    m.Result,
		First:     m.First,
		Turns:     m.Turns,
		Player:    player.State(),
		Enemy:     m.Enemy.State(),
	}
}

func (m *Mission) emit(kind string, payload map[string]any) {
	if m.Emit == nil {
		return
	}
	m.Emit(Event{Turn: m.Turns, Type: kind, Payload: payload})
}

type Outcome struct {
	MissionID string     `json:"mission_id"`
	Title     string     `json:"title"`
	Result    Result     `json:"result"`
	First     string     `json:"first"`
	Turns     int        `json:"turns"`
	Player    ActorState `json:"player"`
	Enemy     ActorState `json:"enemy"`
}
