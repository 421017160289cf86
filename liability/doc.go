// Package liability defines the custodian's per-account obligations
// and the obfuscation pipeline that turns them into Merkle Sum Tree
// leaves: every liability is split into smaller pieces, the list is
// padded to a power of two with zero-amount dummies, and the result
// is shuffled so leaf positions reveal nothing about accounts.
package liability
