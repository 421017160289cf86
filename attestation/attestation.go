package attestation

import (
	"github.com/pol-sys/pol-go/crypto"
	"github.com/pol-sys/pol-go/crypto/sign"
	"github.com/pol-sys/pol-go/liability"
	"github.com/pol-sys/pol-go/merkletree"
	"github.com/pol-sys/pol-go/utils"
)

// DefaultThreshold is the default maximum leaf amount after
// splitting, in satoshis.
const DefaultThreshold = 5000000

// Build obfuscates the liabilities and constructs the Merkle Sum Tree
// for the attestation at blockHeight. A liability's leaf index is its
// final position after the shuffle, so the same inputs produce a
// different tree on every build.
func Build(blockHeight uint64, liabilities []liability.Liability, threshold int64, src liability.Source) (*merkletree.Tree, error) {
	pieces, err := liability.Obfuscate(liabilities, threshold, src)
	if err != nil {
		return nil, err
	}
	leaves := make([]merkletree.Node, len(pieces))
	for i, l := range pieces {
		leaves[i] = l.Leaf(blockHeight, uint64(i))
	}
	return merkletree.Build(leaves)
}

// RootDigest returns the byte string a custodian signs to bind the
// tree root to the attestation epoch.
func RootDigest(blockHeight uint64, root merkletree.Node) []byte {
	return crypto.Digest(root.Hash, utils.LongToBytes(root.Value),
		utils.ULongToBytes(blockHeight))
}

// SignRoot signs the root of the attestation at blockHeight.
func SignRoot(key sign.PrivateKey, blockHeight uint64, root merkletree.Node) []byte {
	return key.Sign(RootDigest(blockHeight, root))
}

// VerifyRootSig checks an attestation root signature against the
// custodian's published key.
func VerifyRootSig(pk sign.PublicKey, blockHeight uint64, root merkletree.Node, sig []byte) bool {
	return pk.Verify(RootDigest(blockHeight, root), sig)
}
