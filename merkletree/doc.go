// Package merkletree implements the Merkle Sum Tree underlying a
// liability attestation. Every internal node carries both a hash and
// the sum of its subtree's leaf values, so the root commits to the
// custodian's total liabilities while individual leaves stay
// unattributable without the matching attestation key.
package merkletree
