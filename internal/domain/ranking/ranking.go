// Package ranking computes elo updates for a closed batch of duels.
//
// Competitors and duels are registered on a Builder; competitors are referred
// to by opaque handles so the engine never depends on their identity. Evaluate
// runs once over pre-batch ratings, reports per-duel deltas as it goes and
// applies the accumulated delta of every competitor at the end, which makes
// the result independent of duel order.
package ranking

import (
	"fmt"

	"github.com/google/uuid"
)

// Handle is an opaque reference to a bacchiatore registered on a Builder.
// It is only valid for the builder that issued it.
type Handle struct {
	owner uuid.UUID
	index int
}

// Index returns the registration position of the handle.
func (h Handle) Index() int { return h.index }

// Summary describes a completed evaluation.
type Summary struct {
	Bacchiatori int
	Duels       int
	// Placing counts the bacchiatori still in their placement period at batch start.
	Placing int
	// Displacement is the sum of absolute rating deltas applied.
	Displacement int
}

type registeredBacchiatore[B Bacchiatore] struct {
	value    B
	eloDelta int
}

type registeredDuel[D Duel] struct {
	value    D
	equal    int
	opposite int
}

// Builder accumulates bacchiatori and duels for one evaluation.
// A Builder is not safe for concurrent use.
type Builder[B Bacchiatore, D Duel] struct {
	id          uuid.UUID
	bacchiatori []registeredBacchiatore[B]
	duels       []registeredDuel[D]
	evaluated   bool
}

// NewBuilder creates an empty builder with a fresh identity.
func NewBuilder[B Bacchiatore, D Duel](opts ...Option) *Builder[B, D] {
	o := builderOptions{
		bacchiatori: defaultBacchiatoriCapacity,
		duels:       defaultDuelsCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Builder[B, D]{
		id:          uuid.New(),
		bacchiatori: make([]registeredBacchiatore[B], 0, o.bacchiatori),
		duels:       make([]registeredDuel[D], 0, o.duels),
	}
}

// ID returns the identity stamped on every handle this builder issues.
func (b *Builder[B, D]) ID() uuid.UUID { return b.id }

// Len returns the number of registered bacchiatori and duels.
func (b *Builder[B, D]) Len() (bacchiatori, duels int) {
	return len(b.bacchiatori), len(b.duels)
}

// AddBacchiatore registers bac and returns its handle. No deduplication is
// performed; the caller registers each logical competitor at most once.
func (b *Builder[B, D]) AddBacchiatore(bac B) Handle {
	b.bacchiatori = append(b.bacchiatori, registeredBacchiatore[B]{value: bac})
	return Handle{owner: b.id, index: len(b.bacchiatori) - 1}
}

// AddDuel registers duel between the bacchiatori behind equal and opposite.
func (b *Builder[B, D]) AddDuel(equal, opposite Handle, duel D) error {
	if b.evaluated {
		return ErrAlreadyEvaluated
	}
	if err := b.check(equal); err != nil {
		return fmt.Errorf("equal: %w", err)
	}
	if err := b.check(opposite); err != nil {
		return fmt.Errorf("opposite: %w", err)
	}

	b.duels = append(b.duels, registeredDuel[D]{
		value:    duel,
		equal:    equal.index,
		opposite: opposite.index,
	})
	return nil
}

func (b *Builder[B, D]) check(h Handle) error {
	if h.owner != b.id {
		return ErrForeignHandle
	}
	if h.index < 0 || h.index >= len(b.bacchiatori) {
		return fmt.Errorf("%w: %d", ErrHandleOutOfRange, h.index)
	}
	return nil
}

// Evaluate runs the rating algorithm once and consumes the builder.
//
// Every duel is validated before any callback fires, so a degenerate duel
// leaves all caller data untouched.
func (b *Builder[B, D]) Evaluate() (Summary, error) {
	if b.evaluated {
		return Summary{}, ErrAlreadyEvaluated
	}
	b.evaluated = true
	defer b.release()

	for i, d := range b.duels {
		if d.value.Points(Equal)+d.value.Points(Opposite) == 0 {
			return Summary{}, fmt.Errorf("duel %d: %w", i, ErrDegenerateDuel)
		}
	}

	placing := make([]bool, len(b.bacchiatori))
	summary := Summary{Bacchiatori: len(b.bacchiatori), Duels: len(b.duels)}
	for i := range b.bacchiatori {
		placing[i] = IsPlacing(b.bacchiatori[i].value)
		if placing[i] {
			summary.Placing++
		}
	}

	for _, d := range b.duels {
		eq := &b.bacchiatori[d.equal]
		opp := &b.bacchiatori[d.opposite]

		eqElo := eq.value.Rating()
		oppElo := opp.value.Rating()
		eEq := Expected(eqElo, oppElo)
		eOpp := Expected(oppElo, eqElo)

		pEq := float64(d.value.Points(Equal))
		pOpp := float64(d.value.Points(Opposite))
		sum := pEq + pOpp

		kEq, kOpp := KFactors(placing[d.equal], placing[d.opposite])

		dEq := Delta(kEq, pEq/sum, eEq)
		dOpp := Delta(kOpp, pOpp/sum, eOpp)

		d.value.ReportDelta(Equal, dEq)
		d.value.ReportDelta(Opposite, dOpp)

		eq.eloDelta += dEq
		opp.eloDelta += dOpp
	}

	for i := range b.bacchiatori {
		r := &b.bacchiatori[i]
		r.value.ApplyRatingDelta(r.eloDelta)
		summary.Displacement += abs(r.eloDelta)
	}

	return summary, nil
}

// release drops references to caller data once the builder is consumed.
func (b *Builder[B, D]) release() {
	b.bacchiatori = nil
	b.duels = nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
