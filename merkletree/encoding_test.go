package merkletree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pol-sys/pol-go/crypto"
)

func TestSerializeParseRoundTrip(t *testing.T) {
	tree, err := Build(fourLeaves())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := tree.Serialize(&buf); err != nil {
		t.Fatal(err)
	}
	// 1 + 2 + 4 nodes, one line each, trailing newline included.
	if got := strings.Count(buf.String(), "\n"); got != 7 {
		t.Error("wrong number of lines:", got)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("missing trailing newline")
	}

	parsed, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.NumLevels() != tree.NumLevels() {
		t.Fatal("wrong number of levels after parse")
	}
	for k := range tree.levels {
		if len(parsed.levels[k]) != len(tree.levels[k]) {
			t.Fatal("wrong level width after parse")
		}
		for i := range tree.levels[k] {
			if !parsed.levels[k][i].Equal(tree.levels[k][i]) {
				t.Errorf("node %d of level %d changed in round trip", i, k)
			}
		}
	}
	if !parsed.Verify() {
		t.Error("parsed tree does not verify")
	}
}

func TestSerializeFormat(t *testing.T) {
	leaf := Node{Hash: crypto.Digest([]byte{0}), Value: 7}
	tree, err := Build([]Node{leaf})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := tree.Serialize(&buf); err != nil {
		t.Fatal(err)
	}
	want := "6e340b9cffb37a989ca544e6bb780a2c78901d3fb33738768511a30617afa01d,7\n"
	if buf.String() != want {
		t.Errorf("wrong serialization %q", buf.String())
	}
}

func TestParseEmpty(t *testing.T) {
	tree, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if tree.NumLevels() != 0 {
		t.Error("empty input must parse to the empty tree")
	}
}

func TestParseIncompleteLevel(t *testing.T) {
	tree, err := Build(fourLeaves())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := tree.Serialize(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.SplitAfter(buf.String(), "\n")
	// Drop the last leaf so the leaf level ends one node short.
	truncated := strings.Join(lines[:6], "")
	if _, err := Parse(strings.NewReader(truncated)); err == nil {
		t.Error("incomplete level accepted")
	}
}

func TestParseMalformedLines(t *testing.T) {
	hash := crypto.EncodeHex(crypto.Digest([]byte{0}))
	for _, line := range []string{
		"not-a-node\n",
		hash + ",notanumber\n",
		hash + ",-4\n",
		strings.ToUpper(hash) + ",4\n",
		"abcd,4\n",
	} {
		if _, err := Parse(strings.NewReader(line)); err == nil {
			t.Errorf("malformed line %q accepted", line)
		}
	}
}
