package attestation

import (
	"testing"

	"github.com/pol-sys/pol-go/liability"
)

// Recovery must return the same balances regardless of how the leaf
// range is partitioned across goroutines.
func TestRecoveryPartitionIndependence(t *testing.T) {
	const blockHeight = 11
	liabilities := []liability.Liability{
		fakeLiability(1, 7777777),
		fakeLiability(2, 123),
		fakeLiability(3, 999999),
		fakeLiability(4, 31),
	}
	tree, err := Build(blockHeight, liabilities, 1000000, liability.CryptoSource{})
	if err != nil {
		t.Fatal(err)
	}
	accounts := make([]Account, len(liabilities))
	for i, l := range liabilities {
		accounts[i] = AccountFromLiability(l)
	}

	sequential := RecoverBalances(tree.Leaves(), blockHeight, accounts)

	saved := parallelCutoff
	parallelCutoff = 1
	defer func() { parallelCutoff = saved }()
	parallel := RecoverBalances(tree.Leaves(), blockHeight, accounts)

	for i := range sequential {
		if sequential[i].Balance != parallel[i].Balance ||
			sequential[i].AccountID != parallel[i].AccountID {
			t.Errorf("partitioning changed the result for account %d",
				sequential[i].AccountID)
		}
		if parallel[i].Balance != liabilities[i].Amount {
			t.Errorf("account %d recovered %d, want %d",
				parallel[i].AccountID, parallel[i].Balance, liabilities[i].Amount)
		}
	}
}
