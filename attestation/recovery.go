package attestation

import (
	"bytes"
	"sync"

	"github.com/pol-sys/pol-go/crypto"
	"github.com/pol-sys/pol-go/liability"
	"github.com/pol-sys/pol-go/merkletree"
	"github.com/pol-sys/pol-go/utils"
)

// parallelCutoff is the leaf-range size below which recovery scans
// sequentially instead of forking. Variable so tests can force the
// parallel path on small trees.
var parallelCutoff = 4096

// An Account identifies one account to recover from a proof.
type Account struct {
	ID     uint64
	Subkey [crypto.KeySizeByte]byte
}

// A Balance is the recovered total for one account, together with the
// attestation key that matched its leaves.
type Balance struct {
	AccountID      uint64
	Balance        int64
	AttestationKey []byte
}

// A LeafMatch is one leaf attributed to an account, with its absolute
// position in the leaf level.
type LeafMatch struct {
	Index uint64
	Node  merkletree.Node
}

// RecoverBalances attributes leaves to accounts: a leaf belongs to an
// account iff re-computing its HMAC under the account's attestation
// key reproduces the leaf hash. The scan forks over leaf sub-ranges,
// preserving every leaf's absolute index; results are returned in the
// order the accounts were given, independent of the partitioning.
func RecoverBalances(leaves []merkletree.Node, blockHeight uint64, accounts []Account) []Balance {
	keys := make([][]byte, len(accounts))
	for i, a := range accounts {
		keys[i] = crypto.DeriveAttestationKey(a.Subkey[:], blockHeight, a.ID)
	}

	sums := scanRange(leaves, 0, keys)

	out := make([]Balance, len(accounts))
	for i, a := range accounts {
		out[i] = Balance{
			AccountID:      a.ID,
			Balance:        sums[i],
			AttestationKey: keys[i],
		}
	}
	return out
}

// scanRange sums the matching leaf values per account for a leaf
// sub-range beginning at absolute index start, splitting in half and
// forking while the range stays large.
func scanRange(leaves []merkletree.Node, start uint64, keys [][]byte) []int64 {
	if len(leaves) <= parallelCutoff {
		sums := make([]int64, len(keys))
		for i, leaf := range leaves {
			index := utils.ULongToBytes(start + uint64(i))
			amount := utils.LongToBytes(leaf.Value)
			for k, key := range keys {
				if bytes.Equal(leaf.Hash, crypto.Hmac(key, amount, index)) {
					sums[k] += leaf.Value
				}
			}
		}
		return sums
	}

	mid := len(leaves) / 2
	var left []int64
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		left = scanRange(leaves[:mid], start, keys)
	}()
	right := scanRange(leaves[mid:], start+uint64(mid), keys)
	wg.Wait()

	for i := range left {
		left[i] += right[i]
	}
	return left
}

// FindLeaves returns every leaf belonging to the account, with
// absolute indices, in leaf order.
func FindLeaves(leaves []merkletree.Node, blockHeight uint64, account Account) []LeafMatch {
	key := crypto.DeriveAttestationKey(account.Subkey[:], blockHeight, account.ID)
	var matches []LeafMatch
	for i, leaf := range leaves {
		h := crypto.Hmac(key, utils.LongToBytes(leaf.Value), utils.ULongToBytes(uint64(i)))
		if bytes.Equal(leaf.Hash, h) {
			matches = append(matches, LeafMatch{Index: uint64(i), Node: leaf})
		}
	}
	return matches
}

// AccountFromLiability builds the recovery identity matching a
// liability's derived keys.
func AccountFromLiability(l liability.Liability) Account {
	return Account{ID: l.AccountID, Subkey: l.Subkey}
}
