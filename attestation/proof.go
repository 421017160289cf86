package attestation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pol-sys/pol-go/merkletree"
)

const blockHeightPrefix = "block_height:"

// ErrStoredHeightMismatch indicates that a stored proof carries a
// different block height than the key it was stored under.
var ErrStoredHeightMismatch = errors.New("[attestation] stored proof has a different block height")

// WriteProof writes the per-user proof file: a single
// "block_height:<N>" header line followed by the level-ordered tree
// serialization.
func WriteProof(w io.Writer, blockHeight uint64, tree *merkletree.Tree) error {
	if _, err := fmt.Fprintf(w, "%s%d\n", blockHeightPrefix, blockHeight); err != nil {
		return err
	}
	return tree.Serialize(w)
}

// ReadProof parses a proof file written by WriteProof.
func ReadProof(r io.Reader) (uint64, *merkletree.Tree, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil {
		return 0, nil, fmt.Errorf("[attestation] missing proof header: %v", err)
	}
	header = strings.TrimSuffix(header, "\n")
	if !strings.HasPrefix(header, blockHeightPrefix) {
		return 0, nil, fmt.Errorf("[attestation] malformed proof header %q", header)
	}
	blockHeight, err := strconv.ParseUint(strings.TrimPrefix(header, blockHeightPrefix), 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("[attestation] malformed block height in %q: %v", header, err)
	}
	tree, err := merkletree.Parse(br)
	if err != nil {
		return 0, nil, err
	}
	return blockHeight, tree, nil
}
