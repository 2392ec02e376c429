// Package coinset implements concrete CoinSet collaborators: an in-memory
// commitment tree for tests and single-process use, and a Postgres-backed
// one for a real deployment.
package coinset

import (
	"errors"
	"sync"

	"github.com/veilcoin/core/pkg/curve"
)

// TreeDepth is the fixed depth of the commitment tree, matching the
// teacher's Merkle accumulator.
const TreeDepth = 32

// ErrTreeFull is returned when a commitment tree has no remaining leaf slots.
var ErrTreeFull = errors.New("coinset: tree is full")

// MemoryCoinSet is an in-memory, append-only accumulator of coin
// commitments. Contains and Digest are safe to call from the synchronous
// core; AddCommitment is the only mutator and takes no context because
// there is nothing here that can block.
type MemoryCoinSet struct {
	mu    sync.RWMutex
	depth int
	size  uint64
	root  curve.FieldElem
	nodes map[uint64]map[uint64]curve.FieldElem // level -> index -> hash
	coins map[string]struct{}                   // coin.Bytes() -> present
}

// NewMemoryCoinSet returns an empty commitment tree of the given depth. A
// depth of zero uses TreeDepth.
func NewMemoryCoinSet(depth int) *MemoryCoinSet {
	if depth == 0 {
		depth = TreeDepth
	}
	return &MemoryCoinSet{
		depth: depth,
		root:  emptyHash(depth),
		nodes: make(map[uint64]map[uint64]curve.FieldElem),
		coins: make(map[string]struct{}),
	}
}

// AddCommitment inserts coin as the next leaf and returns its position.
func (s *MemoryCoinSet) AddCommitment(coin curve.FieldElem) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maxLeaves := uint64(1) << uint(s.depth)
	if s.size >= maxLeaves {
		return 0, ErrTreeFull
	}

	position := s.size
	s.size++
	s.setNode(0, position, coin)
	s.coins[string(coin.Bytes())] = struct{}{}

	current := coin
	index := position
	for level := 0; level < s.depth; level++ {
		siblingIndex := index ^ 1
		sibling, ok := s.getNode(uint64(level), siblingIndex)
		if !ok {
			sibling = emptyHash(level)
		}

		var parent curve.FieldElem
		if index%2 == 0 {
			parent = hashPair(current, sibling)
		} else {
			parent = hashPair(sibling, current)
		}

		index /= 2
		current = parent
		s.setNode(uint64(level+1), index, current)
	}

	s.root = current
	return position, nil
}

// Contains reports whether coin has been added to this set.
func (s *MemoryCoinSet) Contains(coin curve.FieldElem) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.coins[string(coin.Bytes())]
	return ok, nil
}

// Digest returns the current Merkle root, identifying this snapshot.
func (s *MemoryCoinSet) Digest() curve.FieldElem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// Size returns the number of commitments added so far.
func (s *MemoryCoinSet) Size() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

func (s *MemoryCoinSet) getNode(level, index uint64) (curve.FieldElem, bool) {
	levelMap, ok := s.nodes[level]
	if !ok {
		return curve.FieldElem{}, false
	}
	h, ok := levelMap[index]
	return h, ok
}

func (s *MemoryCoinSet) setNode(level, index uint64, h curve.FieldElem) {
	if s.nodes[level] == nil {
		s.nodes[level] = make(map[uint64]curve.FieldElem)
	}
	s.nodes[level][index] = h
}

// hashPair combines two tree nodes into their parent, using the same
// field-element hash the proofs use for coins and nullifiers.
func hashPair(left, right curve.FieldElem) curve.FieldElem {
	return curve.FieldHash(left, right)
}

var emptyLeaf = curve.FieldElemFromUint64(0)

// emptyHash returns the filler hash for an unpopulated subtree at level. It
// is recomputed from the empty leaf on every call; nothing caches it.
func emptyHash(level int) curve.FieldElem {
	h := emptyLeaf
	for i := 0; i < level; i++ {
		h = hashPair(h, h)
	}
	return h
}
