package publisher

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pol-sys/pol-go/crypto"
	"github.com/pol-sys/pol-go/liability"
)

// ReadLiabilities parses the custodian's liability export: one
// "account_id,subkey_hex,amount" line per account. Blank lines and
// lines starting with '#' are skipped.
func ReadLiabilities(r io.Reader) ([]liability.Liability, error) {
	sc := bufio.NewScanner(r)
	var out []liability.Liability
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l, err := parseLiability(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineno, err)
		}
		out = append(out, l)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadLiabilitiesFile reads a liability export from disk.
func ReadLiabilitiesFile(path string) ([]liability.Liability, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLiabilities(f)
}

func parseLiability(line string) (liability.Liability, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return liability.Liability{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return liability.Liability{}, fmt.Errorf("bad account id %q: %v", fields[0], err)
	}
	subkey, err := crypto.DecodeHex(fields[1])
	if err != nil {
		return liability.Liability{}, err
	}
	if len(subkey) != crypto.KeySizeByte {
		return liability.Liability{}, fmt.Errorf("subkey must be %d bytes (got %d)",
			crypto.KeySizeByte, len(subkey))
	}
	amount, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return liability.Liability{}, fmt.Errorf("bad amount %q: %v", fields[2], err)
	}
	if amount < 0 {
		return liability.Liability{}, fmt.Errorf("negative amount %d", amount)
	}
	l := liability.Liability{AccountID: id, Amount: amount}
	copy(l.Subkey[:], subkey)
	return l, nil
}
