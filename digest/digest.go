// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"github.com/zeebo/blake3"
)

// Algorithm names a supported digest algorithm.
type Algorithm string

const (
	SHA256 Algorithm = "sha256"
	BLAKE3 Algorithm = "blake3"
)

// New returns a fresh hash.Hash for the algorithm, for callers that
// need incremental writes. Both algorithms produce 32-byte sums.
func New(algorithm Algorithm) (hash.Hash, error) {
	switch algorithm {
	case SHA256:
		return sha256.New(), nil
	case BLAKE3:
		return blake3.New(), nil
	default:
		return nil, fmt.Errorf("digest: unknown algorithm %q", algorithm)
	}
}

// Sum computes the digest of data with the given algorithm.
func Sum(algorithm Algorithm, data []byte) ([32]byte, error) {
	hasher, err := New(algorithm)
	if err != nil {
		return [32]byte{}, err
	}
	hasher.Write(data)
	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// SumReader streams r through the hash function in chunks (via
// io.Copy) to keep memory usage constant regardless of input size.
func SumReader(algorithm Algorithm, r io.Reader) ([32]byte, error) {
	hasher, err := New(algorithm)
	if err != nil {
		return [32]byte{}, err
	}
	if _, err := io.Copy(hasher, r); err != nil {
		return [32]byte{}, fmt.Errorf("hashing stream: %w", err)
	}
	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// Format returns the canonical lowercase hex representation of a
// digest.
func Format(digest [32]byte) string {
	return hex.EncodeToString(digest[:])
}

// Parse parses a hex-encoded digest string into a 32-byte array.
// Returns an error if the string is not a valid 64-character hex
// encoding of 32 bytes.
func Parse(s string) ([32]byte, error) {
	var digest [32]byte
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return digest, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != 32 {
		return digest, fmt.Errorf("digest is %d bytes, want 32", len(decoded))
	}
	copy(digest[:], decoded)
	return digest, nil
}
