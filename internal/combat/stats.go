package combat

// Statistics counts encounter results. It is a plain value owned by
// whoever runs the encounters.
type Statistics struct {
	Wins     int `json:"wins"`
	Losses   int `json:"losses"`
	Retreats int `json:"retreats"`
}

// Update records one result. Unresolved encounters are not counted.
func (s *Statistics) Update(r Result) {
	switch r {
	case Win:
		s.Wins++
	case Lose:
		s.Losses++
	case Retreat:
		s.Retreats++
	}
}

func (s *Statistics) Add(o Statistics) {
	s.Wins += o.Wins
	s.Losses += o.Losses
	s.Retreats += o.Retreats
}

func (s Statistics) Total() int { return s.Wins + s.Losses + s.Retreats }

func (s Statistics) Ratio(r Result) float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	var n int
	switch r {
	case Win:
		n = s.Wins
	case Lose:
		n = s.Losses
	case Retreat:
		n = s.Retreats
	}
	return float64(n) / float64(total)
}
