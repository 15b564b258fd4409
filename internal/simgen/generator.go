// Package simgen generates deterministic synthetic simulations: numbered CSV
// files of duels between players of hidden strength.
package simgen

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

const (
	strengthMean   = 1200.0
	strengthSpread = 250.0
	// activeShare is the share of players fencing on a given day.
	activeShare = 0.6
)

// Player is a generated competitor with a hidden strength.
type Player struct {
	Name     string
	Strength float64
}

// Duel is one generated line of a day file.
type Duel struct {
	Equal, Opposite             string
	EqualPoints, OppositePoints int
}

// Day is the content of one simulation file.
type Day struct {
	Number int
	Duels  []Duel
}

// Generator draws players and days from a seeded source.
type Generator struct {
	cfg     Config
	rng     *rand.Rand
	players []Player
}

// NewGenerator seeds a generator and draws the population.
func NewGenerator(cfg Config) *Generator {
	g := &Generator{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}
	g.players = make([]Player, cfg.Players)
	for i := range g.players {
		g.players[i] = Player{
			Name:     fmt.Sprintf("bacchiatore-%03d", i+1),
			Strength: strengthMean + g.rng.NormFloat64()*strengthSpread,
		}
	}
	return g
}

// Players returns the population ordered by hidden strength, strongest first.
func (g *Generator) Players() []Player {
	out := make([]Player, len(g.players))
	copy(out, g.players)
	sort.Slice(out, func(i, j int) bool { return out[i].Strength > out[j].Strength })
	return out
}

// Days draws every day of the season in order.
func (g *Generator) Days() []Day {
	days := make([]Day, g.cfg.Days)
	for i := range days {
		days[i] = g.day(i + 1)
	}
	return days
}

func (g *Generator) day(number int) Day {
	active := g.active()
	d := Day{Number: number, Duels: make([]Duel, g.cfg.DuelsPerDay)}
	for i := range d.Duels {
		a := active[g.rng.Intn(len(active))]
		b := active[g.rng.Intn(len(active)-1)]
		if b == a {
			b = active[len(active)-1]
		}
		d.Duels[i] = g.fence(g.players[a], g.players[b])
	}
	return d
}

// active picks the indices of today's players; at least two.
func (g *Generator) active() []int {
	perm := g.rng.Perm(len(g.players))
	n := int(math.Ceil(float64(len(perm)) * activeShare))
	if n < 2 {
		n = 2
	}
	return perm[:n]
}

// fence plays touches until one side reaches the target. Each touch goes to
// a with the Elo expectation of their hidden strengths.
func (g *Generator) fence(a, b Player) Duel {
	p := 1 / (1 + math.Pow(10, (b.Strength-a.Strength)/400))
	d := Duel{Equal: a.Name, Opposite: b.Name}
	for d.EqualPoints < g.cfg.Touches && d.OppositePoints < g.cfg.Touches {
		if g.rng.Float64() < p {
			d.EqualPoints++
		} else {
			d.OppositePoints++
		}
	}
	return d
}
