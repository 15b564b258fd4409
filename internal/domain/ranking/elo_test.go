package ranking_test

import (
	"testing"

	"github.com/okian/bacrama/internal/domain/ranking"
	"github.com/stretchr/testify/assert"
)

type counters struct {
	duels, days uint
}

func (c counters) Rating() int            { return ranking.StartingElo }
func (c counters) TotalDuels() uint       { return c.duels }
func (c counters) TotalDays() uint        { return c.days }
func (c counters) ApplyRatingDelta(_ int) {}

func TestExpected(t *testing.T) {
	tests := []struct {
		name     string
		self     int
		other    int
		expected float64
	}{{
		"should be a coin flip",
		1200,
		1200,
		0.5,
	}, {
		"should favour the stronger side",
		1400,
		1200,
		0.6400649998028851,
	}, {
		"should be ten to one at the scale gap",
		2000,
		1200,
		10.0 / 11.0,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.InDelta(t, test.expected, ranking.Expected(test.self, test.other), 1e-12)
		})
	}
}

func TestExpectedIsSymmetric(t *testing.T) {
	pairs := [][2]int{{1200, 1200}, {1400, 1200}, {0, 3000}, {-500, 700}, {1999, 2001}, {100000, -100000}}
	for _, p := range pairs {
		sum := ranking.Expected(p[0], p[1]) + ranking.Expected(p[1], p[0])
		assert.InDelta(t, 1.0, sum, 1e-12, "pair %v", p)
	}
}

func TestIsPlacing(t *testing.T) {
	tests := []struct {
		name     string
		c        counters
		expected bool
	}{
		{"should place without history", counters{0, 0}, true},
		{"should place with few duels", counters{9, 5}, true},
		{"should place with a single day", counters{40, 1}, true},
		{"should be established at the thresholds", counters{10, 2}, false},
		{"should be established with a long history", counters{50, 30}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ranking.IsPlacing(test.c))
		})
	}
}

func TestKFactors(t *testing.T) {
	tests := []struct {
		selfPlacing, otherPlacing bool
		kSelf, kOther             float64
	}{
		{true, true, 200, 200},
		{true, false, 200, 50},
		{false, true, 50, 200},
		{false, false, 100, 100},
	}

	for _, test := range tests {
		kSelf, kOther := ranking.KFactors(test.selfPlacing, test.otherPlacing)
		assert.Equal(t, test.kSelf, kSelf)
		assert.Equal(t, test.kOther, kOther)
	}
}

func TestDeltaTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		name     string
		k        float64
		observed float64
		expected float64
		delta    int
	}{
		{"should drop a small loss", 1, 0.1, 1.0, 0},
		{"should keep the whole part of a loss", 1, 0, 1.1, -1},
		{"should drop a small gain", 1, 0.9, 0, 0},
		{"should keep the whole part of a gain", 1, 1.7, 0, 1},
		{"should be exact on whole values", 200, 0.25, 0.5, -50},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.delta, ranking.Delta(test.k, test.observed, test.expected))
		})
	}
}
