package combat

// Campaign is one player working through the mission board, with the
// running statistics it owns.
type Campaign struct {
	Player *Actor
	Board  *MissionBoard
	Stats  Statistics
	Emit   func(Event)
}

func NewCampaign(player *Actor, board *MissionBoard) *Campaign {
	return &Campaign{Player: player, Board: board}
}

// Embark runs the mission at index: the player is healed to full, the
// mission is replaced by a fresh copy and resolved, and the result is
// counted.
func (c *Campaign) Embark(index int, rng Source) (Outcome, error) {
	if err := c.Board.Select(index); err != nil {
		return Outcome{}, err
	}
	c.Player.Heal(0)
	m := c.Board.Refresh()
	m.Emit = c.Emit
	c.Stats.Update(m.Resolve(c.Player, rng))
	return m.Outcome(c.Player), nil
}
