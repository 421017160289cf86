package publisher

import (
	"io/ioutil"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/pol-sys/pol-go/application"
	"github.com/pol-sys/pol-go/attestation"
	"github.com/pol-sys/pol-go/storage/kv/leveldbkv"
)

func TestPublish(t *testing.T) {
	dir, err := ioutil.TempDir("", "polpublisher")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	liabilities := "1," + subkeyHex + ",100\n" +
		"2," + subkeyHex + ",6000000\n"
	liabPath := path.Join(dir, "liabilities.csv")
	if err := ioutil.WriteFile(liabPath, []byte(liabilities), 0644); err != nil {
		t.Fatal(err)
	}

	skPath := path.Join(dir, "sign.priv")
	pkPath := path.Join(dir, "sign.pub")
	if err := application.SaveSigningKeyPair(skPath, pkPath); err != nil {
		t.Fatal(err)
	}

	conf := NewConfig(path.Join(dir, "config.toml"), "toml",
		liabPath, path.Join(dir, "attestations.db"), skPath, dir,
		attestation.DefaultThreshold,
		&application.LoggerConfig{Environment: "development"})

	const blockHeight = 630000
	proofPath, err := New(conf).Publish(blockHeight)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(proofPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	gotHeight, tree, err := attestation.ReadProof(f)
	if err != nil {
		t.Fatal(err)
	}
	if gotHeight != blockHeight {
		t.Error("wrong block height in proof:", gotHeight)
	}
	if !tree.Verify() {
		t.Error("published proof does not verify")
	}
	root, err := tree.Root()
	if err != nil {
		t.Fatal(err)
	}
	if root.Value != 6000100 {
		t.Error("wrong total:", root.Value)
	}

	// The attestation and its root signature are in the store.
	db, err := leveldbkv.OpenDB(conf.StorePath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	stored, err := attestation.LoadProof(db, blockHeight)
	if err != nil {
		t.Fatal(err)
	}
	storedRoot, err := stored.Root()
	if err != nil {
		t.Fatal(err)
	}
	if !storedRoot.Equal(root) {
		t.Error("stored attestation has a different root")
	}
	sig, err := attestation.LoadRootSig(db, blockHeight)
	if err != nil {
		t.Fatal(err)
	}
	pk, err := application.LoadSigningPubKey(pkPath, pkPath)
	if err != nil {
		t.Fatal(err)
	}
	if !attestation.VerifyRootSig(pk, blockHeight, root, sig) {
		t.Error("stored root signature does not verify")
	}

	// The detached signature file is written and not empty.
	raw, err := ioutil.ReadFile(path.Join(dir, "attestation_630000.sig"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		t.Error("empty detached signature file")
	}
}
