package liability

import (
	"fmt"

	"github.com/pol-sys/pol-go/crypto"
	"github.com/pol-sys/pol-go/merkletree"
	"github.com/pol-sys/pol-go/utils"
)

// A Liability is one obligation of the custodian: an amount in
// satoshis owed to the account identified by AccountID. The subkey is
// the long-lived secret shared with the account's owner; it never
// appears in the published tree.
type Liability struct {
	AccountID uint64
	Subkey    [crypto.KeySizeByte]byte
	Amount    int64
}

// Dummy returns a padding liability: zero account, zero subkey, zero
// amount. Dummies keep the leaf count at a power of two without
// changing the tree sum, and cannot be attributed to any account.
func Dummy() Liability {
	return Liability{}
}

// IsDummy reports whether l is a padding liability.
func (l Liability) IsDummy() bool {
	return l == Liability{}
}

// Leaf maps the liability to its Merkle Sum Tree leaf at the given
// position. The leaf value is the amount; the leaf hash is an HMAC
// under the account's attestation key over the amount and the leaf's
// absolute index, so only a holder of the attestation key can
// recognize the leaf.
func (l Liability) Leaf(blockHeight, leafIndex uint64) merkletree.Node {
	attKey := crypto.DeriveAttestationKey(l.Subkey[:], blockHeight, l.AccountID)
	return merkletree.Node{
		Hash:  crypto.Hmac(attKey, utils.LongToBytes(l.Amount), utils.ULongToBytes(leafIndex)),
		Value: l.Amount,
	}
}

// String returns an abbreviated form of the liability for debugging.
// The subkey is truncated so logs never carry the full secret.
func (l Liability) String() string {
	return fmt.Sprintf("Liability{%d, %s…, %d}",
		l.AccountID, crypto.EncodeHex(l.Subkey[:4]), l.Amount)
}

// withAmount returns a copy of l owing a different amount.
func (l Liability) withAmount(amount int64) Liability {
	l.Amount = amount
	return l
}
