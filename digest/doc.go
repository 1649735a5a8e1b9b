// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest provides 32-byte content digests behind a single
// algorithm-tagged API.
//
// Two algorithms are supported: SHA-256 (the system digest, via
// crypto/sha256) and BLAKE3 (via zeebo/blake3, considerably faster on
// large inputs). Both produce 32-byte digests, so callers store and
// compare a single [32]byte regardless of algorithm.
//
//   - [Sum] — digest a byte slice
//   - [SumReader] — stream a reader through the hash with constant
//     memory, whatever the input size
//   - [New] — raw hash.Hash access for incremental writes
//   - [Format] / [Parse] — the canonical lowercase-hex string form
//
// This package has no dependencies on other safewire packages.
package digest
