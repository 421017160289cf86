package publisher

import (
	"strings"
	"testing"
)

const subkeyHex = "acbf0b072454f47cf5432a68900226cba0e0a960a24151f9065f9e589ddaf7ea"

func TestReadLiabilities(t *testing.T) {
	in := "# exported 2021-03-01\n" +
		"1," + subkeyHex + ",100\n" +
		"\n" +
		"1234," + subkeyHex + ",2\n"

	got, err := ReadLiabilities(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatal("wrong number of liabilities:", len(got))
	}
	if got[0].AccountID != 1 || got[0].Amount != 100 {
		t.Error("wrong first liability:", got[0])
	}
	if got[1].AccountID != 1234 || got[1].Amount != 2 {
		t.Error("wrong second liability:", got[1])
	}
}

func TestReadLiabilitiesRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"1," + subkeyHex + "\n",
		"x," + subkeyHex + ",100\n",
		"1,abcd,100\n",
		"1," + strings.ToUpper(subkeyHex) + ",100\n",
		"1," + subkeyHex + ",-5\n",
		"1," + subkeyHex + ",ten\n",
	} {
		if _, err := ReadLiabilities(strings.NewReader(in)); err == nil {
			t.Errorf("malformed input %q accepted", in)
		}
	}
}
