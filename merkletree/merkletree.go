package merkletree

import (
	"errors"
)

var (
	// ErrNotPowerOfTwo indicates that Build was given a leaf count
	// that is not a power of two.
	ErrNotPowerOfTwo = errors.New("[merkletree] number of leaves is not a power of two")
	// ErrNegativeValue indicates a negative node value, which would
	// break the sum invariant.
	ErrNegativeValue = errors.New("[merkletree] negative node value")
	// ErrIncompleteTree indicates a top level with more than one
	// node, i.e. a tree whose upper levels are missing.
	ErrIncompleteTree = errors.New("[merkletree] incomplete tree has no root")
	// ErrEmptyTree indicates a root request on a tree with no levels.
	ErrEmptyTree = errors.New("[merkletree] empty tree has no root")
)

// A Tree is an immutable Merkle Sum Tree stored as its sequence of
// levels, root-first: level 0 holds the single root, level k holds
// 2^k nodes, and the last level holds the leaves.
type Tree struct {
	levels [][]Node
}

// Build constructs the complete tree over the given leaves. The leaf
// count must be a power of two; an empty leaf list yields the empty
// tree. Pairing is strictly left-to-right, so a leaf's position is
// part of what the root commits to.
func Build(leaves []Node) (*Tree, error) {
	if len(leaves) == 0 {
		return &Tree{}, nil
	}
	if !isPowerOfTwo(uint64(len(leaves))) {
		return nil, ErrNotPowerOfTwo
	}

	depth := log2(uint64(len(leaves)))
	levels := make([][]Node, depth+1)
	levels[depth] = append([]Node(nil), leaves...)
	for k := depth; k > 0; k-- {
		lower := levels[k]
		upper := make([]Node, len(lower)/2)
		for i := 0; i < len(upper); i++ {
			n, err := merge(lower[2*i], lower[2*i+1])
			if err != nil {
				return nil, err
			}
			upper[i] = n
		}
		levels[k-1] = upper
	}
	return &Tree{levels: levels}, nil
}

// Root returns the root node. It fails on an empty tree and on a
// parsed tree whose top level holds more than one node.
func (t *Tree) Root() (Node, error) {
	if len(t.levels) == 0 {
		return Node{}, ErrEmptyTree
	}
	if len(t.levels[0]) != 1 {
		return Node{}, ErrIncompleteTree
	}
	return t.levels[0][0], nil
}

// Leaves returns the leaf level. The slice is owned by the tree and
// must not be mutated.
func (t *Tree) Leaves() []Node {
	if len(t.levels) == 0 {
		return nil
	}
	return t.levels[len(t.levels)-1]
}

// NumLevels returns the number of levels, including the leaf level.
func (t *Tree) NumLevels() int {
	return len(t.levels)
}

// Verify rebuilds the tree from its own leaves and reports whether
// every stored level matches the rebuilt one. Comparing all levels,
// not just the root, catches a parsed tree whose intermediate nodes
// were tampered with even when its root is consistent.
func (t *Tree) Verify() bool {
	if len(t.levels) == 0 {
		return true
	}
	rebuilt, err := Build(t.Leaves())
	if err != nil {
		return false
	}
	if rebuilt.NumLevels() != t.NumLevels() {
		return false
	}
	for k, level := range t.levels {
		if len(level) != len(rebuilt.levels[k]) {
			return false
		}
		for i, n := range level {
			if !n.Equal(rebuilt.levels[k][i]) {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	c := &Tree{levels: make([][]Node, len(t.levels))}
	for k, level := range t.levels {
		c.levels[k] = make([]Node, len(level))
		for i, n := range level {
			c.levels[k][i] = Node{
				Hash:  append([]byte(nil), n.Hash...),
				Value: n.Value,
			}
		}
	}
	return c
}

func isPowerOfTwo(n uint64) bool {
	return n&(n-1) == 0
}

func log2(n uint64) int {
	d := 0
	for n > 1 {
		n >>= 1
		d++
	}
	return d
}
