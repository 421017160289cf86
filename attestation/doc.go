// Package attestation ties the pipeline together: it builds the
// Merkle Sum Tree for one attestation epoch from the custodian's
// liabilities, reads and writes the published proof format, recovers
// account balances from a proof, and persists attestations in a
// key-value store.
package attestation
