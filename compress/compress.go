// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

// Package compress shrinks payload bytes before they enter a textual
// encoding. URLs and cookies have hard size limits, and base64 adds a
// third on top — compressing first often pays for both.
//
// The compression tag is the caller's to carry: the safe64 header
// grammar is closed and never records compression, so callers frame
// the tag themselves and wrap the raw entry points:
//
//	packed, tag, err := compress.Auto(payload)
//	s := safe64.EncodeBytes(packed, false)
//	// ... transmit s and tag ...
//	payload, err = compress.Decompress(decoded, tag, originalSize)
package compress

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Tag identifies a compression algorithm. A tag fits in one byte for
// callers who frame it alongside their payload; the values are fixed —
// changing them breaks any stored framing.
type Tag uint8

const (
	// TagNone indicates uncompressed data. Used for
	// already-compressed content (images, archives) where compression
	// adds CPU cost without reducing size.
	TagNone Tag = 0

	// TagLZ4 indicates LZ4 block compression. Fast default for binary
	// data (~1.5-2x ratio, very fast decode).
	TagLZ4 Tag = 1

	// TagZstd indicates zstd at the default level. Better ratios for
	// text, JSON, and logs (~3-5x ratio) at more CPU cost.
	TagZstd Tag = 2
)

// String returns the human-readable name of a tag.
func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagLZ4:
		return "lz4"
	case TagZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseTag parses a tag from its string representation.
func ParseTag(name string) (Tag, error) {
	switch name {
	case "none":
		return TagNone, nil
	case "lz4":
		return TagLZ4, nil
	case "zstd":
		return TagZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression tag: %q", name)
	}
}

// ErrIncompressible is returned by Compress when the compressed output
// would not be smaller than the input. The caller should fall back to
// TagNone.
var ErrIncompressible = errors.New("compress: data is not smaller after compression")

// zstdEncoder and zstdDecoder are reused across calls to avoid
// repeated initialization overhead. zstd.Encoder and zstd.Decoder are
// safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("compress: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("compress: zstd decoder initialization failed: " + err.Error())
	}
}

// Compress compresses data with the algorithm the tag names. For
// TagNone the input is returned unchanged (no copy). Returns
// ErrIncompressible when the output would not be smaller than the
// input.
func Compress(data []byte, tag Tag) ([]byte, error) {
	switch tag {
	case TagNone:
		return data, nil
	case TagLZ4:
		return compressLZ4(data)
	case TagZstd:
		return compressZstd(data)
	default:
		return nil, fmt.Errorf("unsupported compression tag: %d", tag)
	}
}

// Decompress reverses Compress. The uncompressedSize must match the
// original data length exactly — this is verified and a mismatch
// returns an error.
func Decompress(data []byte, tag Tag, uncompressedSize int) ([]byte, error) {
	switch tag {
	case TagNone:
		if len(data) != uncompressedSize {
			return nil, fmt.Errorf("uncompressed payload: size %d does not match expected %d",
				len(data), uncompressedSize)
		}
		return data, nil
	case TagLZ4:
		return decompressLZ4(data, uncompressedSize)
	case TagZstd:
		return decompressZstd(data, uncompressedSize)
	default:
		return nil, fmt.Errorf("unsupported compression tag: %d", tag)
	}
}

// Auto probes data to pick an algorithm, compresses with it, and
// returns the result with the tag used. It tries zstd: a ratio of
// 1.5x or better selects zstd, between 1.1x and 1.5x selects LZ4
// (faster with acceptable ratio), below 1.1x the data is considered
// incompressible and returned unchanged under TagNone.
func Auto(data []byte) ([]byte, Tag, error) {
	if len(data) == 0 {
		return data, TagNone, nil
	}

	probe := zstdEncoder.EncodeAll(data, nil)
	ratio := float64(len(data)) / float64(len(probe))

	switch {
	case ratio >= 1.5:
		return probe, TagZstd, nil
	case ratio >= 1.1:
		compressed, err := compressLZ4(data)
		if errors.Is(err, ErrIncompressible) {
			return data, TagNone, nil
		}
		if err != nil {
			return nil, 0, err
		}
		return compressed, TagLZ4, nil
	default:
		return data, TagNone, nil
	}
}

// LZ4: block mode with bound-allocated destinations.

func compressLZ4(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	destination := make([]byte, bound)

	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}

	// CompressBlock returns 0 when it determines the data is
	// incompressible; also reject output that is not actually smaller.
	if written == 0 || written >= len(data) {
		return nil, ErrIncompressible
	}
	return destination[:written], nil
}

func decompressLZ4(compressed []byte, uncompressedSize int) ([]byte, error) {
	destination := make([]byte, uncompressedSize)
	read, err := lz4.UncompressBlock(compressed, destination)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if read != uncompressedSize {
		return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", read, uncompressedSize)
	}
	return destination, nil
}

func compressZstd(data []byte) ([]byte, error) {
	compressed := zstdEncoder.EncodeAll(data, nil)
	if len(compressed) >= len(data) {
		return nil, ErrIncompressible
	}
	return compressed, nil
}

func decompressZstd(compressed []byte, uncompressedSize int) ([]byte, error) {
	destination := make([]byte, 0, uncompressedSize)
	result, err := zstdDecoder.DecodeAll(compressed, destination)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	if len(result) != uncompressedSize {
		return nil, fmt.Errorf("zstd decompress: got %d bytes, expected %d", len(result), uncompressedSize)
	}
	return result, nil
}
