package repository

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/okian/bacrama/internal/domain/model"
	"github.com/okian/bacrama/internal/domain/types"
	"github.com/okian/bacrama/pkg/metrics"
)

// Treap-based, in-memory Store implementation.
//
// Ordering: elo DESC, then name ASC (deterministic).
// "less" means ranks earlier, so in-order traversal produces the leaderboard
// from best to worst.

// record pairs a live bacchiatore with the elo it is currently indexed under.
type record struct {
	b       *model.Bacchiatore
	indexed int
}

// treap node
type node struct {
	name  string
	elo   int
	prio  uint64
	left  *node
	right *node
	size  int
}

func nsize(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

func fix(n *node) {
	if n != nil {
		n.size = 1 + nsize(n.left) + nsize(n.right)
	}
}

// less returns true if (aElo, aName) appears before (bElo, bName).
func less(aElo int, aName string, bElo int, bName string) bool {
	if aElo != bElo {
		return aElo > bElo
	}
	return aName < bName
}

func rotateRight(y *node) *node {
	x := y.left
	y.left = x.right
	x.right = y
	fix(y)
	fix(x)
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	x.right = y.left
	y.left = x
	fix(x)
	fix(y)
	return y
}

// priority derives a stable heap priority from the name so the tree shape
// does not depend on registration order.
func priority(name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return h.Sum64()
}

func insert(n *node, name string, elo int, prio uint64) *node {
	if n == nil {
		return &node{name: name, elo: elo, prio: prio, size: 1}
	}
	if less(elo, name, n.elo, n.name) {
		n.left = insert(n.left, name, elo, prio)
		if n.left.prio > n.prio {
			n = rotateRight(n)
		}
	} else {
		n.right = insert(n.right, name, elo, prio)
		if n.right.prio > n.prio {
			n = rotateLeft(n)
		}
	}
	fix(n)
	return n
}

func deleteNode(n *node, name string, elo int) *node {
	if n == nil {
		return nil
	}
	switch {
	case elo == n.elo && name == n.name:
		// Rotate the higher priority child up until the node is a leaf.
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		if n.left.prio > n.right.prio {
			n = rotateRight(n)
			n.right = deleteNode(n.right, name, elo)
		} else {
			n = rotateLeft(n)
			n.left = deleteNode(n.left, name, elo)
		}
	case less(elo, name, n.elo, n.name):
		n.left = deleteNode(n.left, name, elo)
	default:
		n.right = deleteNode(n.right, name, elo)
	}
	fix(n)
	return n
}

// ranker assigns consecutive ranks while walking the tree in order.
// Equal ratings share a rank.
type ranker struct {
	rank    int
	lastElo int
}

func (r *ranker) next(elo int) int {
	if r.rank == 0 || elo != r.lastElo {
		r.rank++
		r.lastElo = elo
	}
	return r.rank
}

// walk visits nodes in rank order until visit returns false.
func walk(n *node, visit func(*node) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.left, visit) {
		return false
	}
	if !visit(n) {
		return false
	}
	return walk(n.right, visit)
}

// TreapStore keeps bacchiatori by name and ordered by rating.
type TreapStore struct {
	mu       sync.RWMutex
	root     *node
	byName   map[string]*record
	capacity int
}

var _ Store = (*TreapStore)(nil)

// NewTreapStore constructs an empty store.
func NewTreapStore(opts ...Option) *TreapStore {
	s := &TreapStore{capacity: 64}
	for _, opt := range opts {
		opt(s)
	}
	s.byName = make(map[string]*record, s.capacity)
	return s
}

// GetOrRegister implements Store.GetOrRegister in O(log n) expected time.
func (s *TreapStore) GetOrRegister(_ context.Context, name string) (*model.Bacchiatore, bool) {
	s.mu.Lock()
	if rec, ok := s.byName[name]; ok {
		s.mu.Unlock()
		return rec.b, false
	}
	b := model.NewBacchiatore(name)
	s.byName[name] = &record{b: b, indexed: b.Elo}
	s.root = insert(s.root, name, b.Elo, priority(name))
	count := len(s.byName)
	s.mu.Unlock()

	metrics.UpdateBacchiatoriRegistered(count)
	return b, true
}

// Get implements Store.Get.
func (s *TreapStore) Get(_ context.Context, name string) (*model.Bacchiatore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.byName[name]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return nil, ErrNotFound
	}
	return rec.b, nil
}

// Reindex implements Store.Reindex. Unknown names are ignored.
func (s *TreapStore) Reindex(_ context.Context, names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		rec, ok := s.byName[name]
		if !ok || rec.b.Elo == rec.indexed {
			continue
		}
		s.root = deleteNode(s.root, name, rec.indexed)
		rec.indexed = rec.b.Elo
		s.root = insert(s.root, name, rec.indexed, priority(name))
	}
}

// Rank implements Store.Rank. Dense ranks need every better rating, so this
// walks the tree up to name.
func (s *TreapStore) Rank(_ context.Context, name string) (types.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.byName[name]; !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return types.Entry{}, ErrNotFound
	}

	var (
		r     ranker
		entry types.Entry
	)
	walk(s.root, func(n *node) bool {
		rank := r.next(n.elo)
		if n.name == name {
			entry = types.NewEntry(rank, s.byName[n.name].b)
			return false
		}
		return true
	})
	return entry, nil
}

// TopN implements Store.TopN.
func (s *TreapStore) TopN(_ context.Context, n int) ([]types.Entry, error) {
	if n < 1 {
		metrics.RecordErrorByComponent("repository", "invalid_limit")
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(n), nil
}

// All implements Store.All.
func (s *TreapStore) All(_ context.Context) []types.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(len(s.byName))
}

// Count returns the total number of bacchiatori.
func (s *TreapStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byName)
}

// collect returns up to limit entries in rank order. Assumes the lock is held.
func (s *TreapStore) collect(limit int) []types.Entry {
	if limit > nsize(s.root) {
		limit = nsize(s.root)
	}
	out := make([]types.Entry, 0, limit)
	var r ranker
	walk(s.root, func(n *node) bool {
		if len(out) >= limit {
			return false
		}
		out = append(out, types.NewEntry(r.next(n.elo), s.byName[n.name].b))
		return true
	})
	return out
}
