package merkletree

import (
	"fmt"

	"github.com/pol-sys/pol-go/crypto"
	"github.com/pol-sys/pol-go/utils"
)

// A Node is one entry of a Merkle Sum Tree: a 32-byte hash and the
// sum of the leaf values below it. For a leaf the value is the
// (split) liability amount and the hash is an HMAC under the
// account's attestation key.
type Node struct {
	Hash  []byte
	Value int64
}

// merge combines two sibling nodes into their parent. The parent value
// is the sum of the children's values and the parent hash commits to
// both child hashes and both child values:
//
//	hash = SHA256(left.hash || LE64(left.value) || right.hash || LE64(right.value))
func merge(left, right Node) (Node, error) {
	if left.Value < 0 || right.Value < 0 {
		return Node{}, ErrNegativeValue
	}
	return Node{
		Hash: crypto.Digest(
			left.Hash, utils.LongToBytes(left.Value),
			right.Hash, utils.LongToBytes(right.Value)),
		Value: left.Value + right.Value,
	}, nil
}

// Equal reports whether two nodes have the same hash and value.
func (n Node) Equal(other Node) bool {
	if n.Value != other.Value || len(n.Hash) != len(other.Hash) {
		return false
	}
	for i := range n.Hash {
		if n.Hash[i] != other.Hash[i] {
			return false
		}
	}
	return true
}

// String returns an abbreviated form of the node for debugging.
func (n Node) String() string {
	h := crypto.EncodeHex(n.Hash)
	if len(h) > 8 {
		h = h[:8]
	}
	return fmt.Sprintf("Node{%s…, %d}", h, n.Value)
}
