package verifier

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pol-sys/pol-go/application"
	"github.com/pol-sys/pol-go/attestation"
	"github.com/pol-sys/pol-go/crypto"
)

// An AccountEntry is one account in the user's accounts file. The
// account UID is the unpadded base32 form handed out by the
// custodian; the key is the 64-hex account key. An empty key means
// the caller prompts for it.
type AccountEntry struct {
	UID   string `toml:"uid"`
	Key   string `toml:"key,omitempty"`
	Email string `toml:"email"`
}

// An accountsFile is the TOML shape of the accounts file.
type accountsFile struct {
	Accounts []AccountEntry `toml:"accounts"`
}

// ReadAccountsFile reads the user's accounts file.
func ReadAccountsFile(path string) ([]AccountEntry, error) {
	var af accountsFile
	if _, err := toml.DecodeFile(path, &af); err != nil {
		return nil, fmt.Errorf("Failed to load accounts: %v", err)
	}
	if len(af.Accounts) == 0 {
		return nil, fmt.Errorf("Accounts file %s lists no accounts", path)
	}
	return af.Accounts, nil
}

// Resolve derives the recovery identity for the entry: the account id
// from the base32 UID and the account subkey from the account key,
// email and id.
func (e AccountEntry) Resolve() (attestation.Account, error) {
	id, err := crypto.DecodeAccountUID(e.UID)
	if err != nil {
		return attestation.Account{}, err
	}
	key, err := application.DecodeAccountKey(e.Key)
	if err != nil {
		return attestation.Account{}, err
	}
	subkey := crypto.DeriveAccountSubkey(key, e.Email, id)
	acct := attestation.Account{ID: id}
	copy(acct.Subkey[:], subkey)
	return acct, nil
}
