package merkletree

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pol-sys/pol-go/crypto"
)

// Serialize writes the tree in its line-oriented wire form: every
// node as "<hex_hash>,<value>\n", levels top-to-bottom, no header.
// A trailing newline follows every node, including the last.
func (t *Tree) Serialize(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, level := range t.levels {
		for _, n := range level {
			if _, err := fmt.Fprintf(bw, "%s,%d\n",
				crypto.EncodeHex(n.Hash), n.Value); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Parse reads a serialized tree: 2^k consecutive lines form level k,
// starting at k = 0 and doubling, until the stream is exhausted.
// Running out of lines in the middle of a level is an error; a
// malformed hash or value is an error.
func Parse(r io.Reader) (*Tree, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var levels [][]Node
	width := 1
	for {
		level, done, err := parseLevel(sc, width)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		levels = append(levels, level)
		width *= 2
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &Tree{levels: levels}, nil
}

// parseLevel reads one level of the given width. It reports done when
// the stream is exhausted exactly at a level boundary.
func parseLevel(sc *bufio.Scanner, width int) ([]Node, bool, error) {
	level := make([]Node, 0, width)
	for i := 0; i < width; i++ {
		if !sc.Scan() {
			if i == 0 {
				return nil, true, nil
			}
			return nil, false, fmt.Errorf(
				"[merkletree] incomplete tree: level of %d nodes ended after %d", width, i)
		}
		n, err := parseNode(sc.Text())
		if err != nil {
			return nil, false, err
		}
		level = append(level, n)
	}
	return level, false, nil
}

func parseNode(line string) (Node, error) {
	sep := strings.IndexByte(line, ',')
	if sep < 0 {
		return Node{}, fmt.Errorf("[merkletree] malformed node %q", line)
	}
	hash, err := crypto.DecodeHex(line[:sep])
	if err != nil {
		return Node{}, err
	}
	if len(hash) != crypto.HashSizeByte {
		return Node{}, fmt.Errorf("[merkletree] node hash must be %d bytes (got %d)",
			crypto.HashSizeByte, len(hash))
	}
	value, err := strconv.ParseUint(line[sep+1:], 10, 63)
	if err != nil {
		return Node{}, fmt.Errorf("[merkletree] malformed node value %q: %v",
			line[sep+1:], err)
	}
	return Node{Hash: hash, Value: int64(value)}, nil
}
