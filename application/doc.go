/*
Package application is a library for building the executables around
the proof-of-liabilities core.

application implements the custodian- and user-side application-layer
components of the attestation pipeline: configuration handling, the
logging system, and the drivers that connect files on disk to the
core packages.

Config

This module provides the generic configuration-file infrastructure
shared by the publisher and verifier executables. Currently only TOML
encoding is supported.

Logger

This module implements a generic logging system that can be used by
any of the executables. The core packages never log; all logging
happens at this layer.
*/
package application
