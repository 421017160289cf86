package attestation

import (
	"bytes"

	"github.com/pol-sys/pol-go/merkletree"
	"github.com/pol-sys/pol-go/storage/kv"
	"github.com/pol-sys/pol-go/utils"
)

// Storage identifiers for attestation entries.
const (
	proofIdentifier   byte = 'A'
	rootSigIdentifier byte = 'S'
)

func proofKey(blockHeight uint64) []byte {
	return append([]byte{proofIdentifier}, utils.ULongToBytes(blockHeight)...)
}

func rootSigKey(blockHeight uint64) []byte {
	return append([]byte{rootSigIdentifier}, utils.ULongToBytes(blockHeight)...)
}

// StoreProof persists the serialized proof of the attestation at
// blockHeight so it can be re-served later.
func StoreProof(db kv.DB, blockHeight uint64, tree *merkletree.Tree) error {
	var buf bytes.Buffer
	if err := WriteProof(&buf, blockHeight, tree); err != nil {
		return err
	}
	return db.Put(proofKey(blockHeight), buf.Bytes())
}

// LoadProof loads a previously stored attestation. It returns the
// db's not-found error if no attestation exists at blockHeight.
func LoadProof(db kv.DB, blockHeight uint64) (*merkletree.Tree, error) {
	raw, err := db.Get(proofKey(blockHeight))
	if err != nil {
		return nil, err
	}
	storedHeight, tree, err := ReadProof(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	if storedHeight != blockHeight {
		return nil, ErrStoredHeightMismatch
	}
	return tree, nil
}

// StoreRootSig persists the custodian's signature over the
// attestation root at blockHeight.
func StoreRootSig(db kv.DB, blockHeight uint64, sig []byte) error {
	return db.Put(rootSigKey(blockHeight), sig)
}

// LoadRootSig loads a previously stored root signature.
func LoadRootSig(db kv.DB, blockHeight uint64) ([]byte, error) {
	return db.Get(rootSigKey(blockHeight))
}
