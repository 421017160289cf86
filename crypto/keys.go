package crypto

import (
	"github.com/pol-sys/pol-go/utils"
)

// DeriveAccountSubkey computes the long-lived per-account subkey
// shared between the custodian and a user:
//
//	subkey = SHA256(accountKey || email || LE64(accountID))
//
// The derivation is deterministic and byte-identical across
// implementations.
func DeriveAccountSubkey(accountKey []byte, email string, accountID uint64) []byte {
	return Digest(accountKey, []byte(email), utils.ULongToBytes(accountID))
}

// DeriveAttestationKey computes the per-(account, attestation) key that
// binds a leaf to an account for one published attestation:
//
//	attestationKey = SHA256(subkey || LE64(blockHeight) || LE64(accountID))
func DeriveAttestationKey(accountSubkey []byte, blockHeight, accountID uint64) []byte {
	return Digest(accountSubkey, utils.ULongToBytes(blockHeight), utils.ULongToBytes(accountID))
}
