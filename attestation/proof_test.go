package attestation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pol-sys/pol-go/liability"
)

func TestProofRoundTrip(t *testing.T) {
	const blockHeight = 424242
	tree, err := Build(blockHeight, []liability.Liability{
		fakeLiability(1, 1000),
		fakeLiability(2, 2000),
	}, DefaultThreshold, liability.CryptoSource{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteProof(&buf, blockHeight, tree); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "block_height:424242\n") {
		t.Error("missing or malformed header")
	}

	gotHeight, parsed, err := ReadProof(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if gotHeight != blockHeight {
		t.Error("wrong block height:", gotHeight)
	}
	if !parsed.Verify() {
		t.Error("parsed proof does not verify")
	}
	wantRoot, err := tree.Root()
	if err != nil {
		t.Fatal(err)
	}
	gotRoot, err := parsed.Root()
	if err != nil {
		t.Fatal(err)
	}
	if !gotRoot.Equal(wantRoot) {
		t.Error("root changed in round trip")
	}
}

func TestReadProofRejectsBadHeader(t *testing.T) {
	for _, in := range []string{
		"",
		"block_height\n",
		"block_height:\n",
		"block_height:x\n",
		"height:5\n",
	} {
		if _, _, err := ReadProof(strings.NewReader(in)); err == nil {
			t.Errorf("bad header %q accepted", in)
		}
	}
}
