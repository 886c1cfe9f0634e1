package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatisticsUpdate(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   Statistics
	}{
		{name: "win", result: Win, want: Statistics{Wins: 1}},
		{name: "lose", result: Lose, want: Statistics{Losses: 1}},
		{name: "retreat", result: Retreat, want: Statistics{Retreats: 1}},
		{name: "unresolved is ignored", result: Unresolved, want: Statistics{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Statistics
			s.Update(tt.result)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestStatisticsRatios(t *testing.T) {
	var empty Statistics
	assert.Zero(t, empty.Ratio(Win))

	s := Statistics{Wins: 6, Losses: 1, Retreats: 3}
	assert.Equal(t, 10, s.Total())
	assert.InDelta(t, 0.6, s.Ratio(Win), 1e-9)
	assert.InDelta(t, 0.1, s.Ratio(Lose), 1e-9)
	assert.InDelta(t, 0.3, s.Ratio(Retreat), 1e-9)
	assert.Zero(t, s.Ratio(Unresolved))

	s.Add(Statistics{Wins: 1, Losses: 2, Retreats: 3})
	assert.Equal(t, Statistics{Wins: 7, Losses: 3, Retreats: 6}, s)
}
