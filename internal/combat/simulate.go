package combat

import (
	"encoding/json"
	"math/rand"
	"sync"
)

type SimResult struct {
	Outcome Outcome    `json:"outcome"`
	Stats   Statistics `json:"stats"`
	Events  []Event    `json:"events,omitempty"`
}

// RunSingle embarks on one mission of the campaign. With record set the
// encounter's events are returned alongside the outcome; any Emit hook
// already on the campaign still receives them.
func RunSingle(c *Campaign, index int, rng Source, record bool) (SimResult, error) {
	var events []Event
	prev := c.Emit
	c.Emit = func(ev Event) {
		if record {
			events = append(events, ev)
		}
		if prev != nil {
			prev(ev)
		}
	}
	defer func() { c.Emit = prev }()

	out, err := c.Embark(index, rng)
	if err != nil {
		return SimResult{}, err
	}
	return SimResult{Outcome: out, Stats: c.Stats, Events: events}, nil
}

type BatchConfig struct {
	Runs    int
	Seed    int64
	Workers int
}

type Summary struct {
	Runs        int        `json:"runs"`
	Seed        int64      `json:"seed"`
	Mission     string     `json:"mission"`
	Stats       Statistics `json:"stats"`
	WinRate     float64    `json:"win_rate"`
	LossRate    float64    `json:"loss_rate"`
	RetreatRate float64    `json:"retreat_rate"`
	AvgTurns    float64    `json:"avg_turns"`
}

// RunBatch resolves cfg.Runs fresh copies of mission against fresh copies
// of player. Trial i draws from its own generator seeded with cfg.Seed+i,
// so the summary depends only on the seed and not on the worker count.
func RunBatch(cfg BatchConfig, player Actor, mission *Mission) Summary {
	sum := Summary{Runs: cfg.Runs, Seed: cfg.Seed, Mission: mission.Title}
	if cfg.Runs <= 0 {
		return sum
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	var (
		mu    sync.Mutex
		st    Statistics
		turns int
	)
	wg := sync.WaitGroup{}
	jobs := make(chan int, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var local Statistics
			localTurns := 0
			for i := range jobs {
				rng := trialRNG(cfg.Seed, i)
				p := player
				p.Heal(0)
				m := mission.Reset()
				m.Emit = nil
				local.Update(m.Resolve(&p, rng))
				localTurns += m.Turns
			}
			mu.Lock()
			st.Add(local)
			turns += localTurns
			mu.Unlock()
		}()
	}
	for i := 0; i < cfg.Runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	sum.Stats = st
	sum.WinRate = st.Ratio(Win)
	sum.LossRate = st.Ratio(Lose)
	sum.RetreatRate = st.Ratio(Retreat)
	sum.AvgTurns = float64(turns) / float64(cfg.Runs)
	return sum
}

// trialRNG seeds trial i with seed+i. Every seed is used as is, so distinct
// trials never share a sequence.
func trialRNG(seed int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(seed + int64(i)))
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
