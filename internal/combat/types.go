package combat

import "fmt"

type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Source is the randomness the resolver draws from. *rand.Rand satisfies it.
type Source interface {
	// Intn returns an int in [0, n). n > 0.
	Intn(n int) int
}

// Result is the categorical outcome of one encounter.
type Result int

const (
	Unresolved Result = iota
	Win
	Lose
	Retreat
)

var resultNames = [...]string{
	Unresolved: "UNRESOLVED",
	Win:        "WIN",
	Lose:       "LOSE",
	Retreat:    "RETREAT",
}

func (r Result) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return fmt.Sprintf("Result(%d)", int(r))
	}
	return resultNames[r]
}

func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
