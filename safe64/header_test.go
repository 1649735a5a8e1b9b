// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

package safe64

import (
	"errors"
	"testing"
)

// The numeric tag values are protocol constants. If one of these pins
// fails, an enum was reordered and every previously encoded string is
// misread.
func TestWireTagStability(t *testing.T) {
	formats := map[Format]uint8{
		FormatNone: 0,
		FormatJSON: 1,
		FormatGob:  2,
		FormatCBOR: 3,
	}
	for format, want := range formats {
		if uint8(format) != want {
			t.Errorf("Format %s = %d, want %d", format, uint8(format), want)
		}
	}

	types := map[Type]uint8{
		TypeString: 0,
		TypeMap:    1,
		TypeRecord: 2,
	}
	for typ, want := range types {
		if uint8(typ) != want {
			t.Errorf("Type %s = %d, want %d", typ, uint8(typ), want)
		}
	}
}

func TestHeaderOmissionRules(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		typ    Type
		full   bool
		want   string
	}{
		// Both fields default: everything omitted.
		{"all defaults", FormatNone, TypeString, false, "SV03"},
		// Non-default format, default type: F only.
		{"format only", FormatJSON, TypeString, false, "SV03F1"},
		// Both non-default: F and T.
		{"format and type", FormatJSON, TypeMap, false, "SV03F1T1"},
		{"cbor record", FormatCBOR, TypeRecord, false, "SV03F3T2"},
		// Gob ignores type on decode, so T is dropped even when the
		// type is non-default.
		{"gob drops type", FormatGob, TypeMap, false, "SV03F2"},
		// FullHeader spells out the defaults.
		{"full header defaults", FormatNone, TypeString, true, "SV03F0T0"},
		{"full header gob", FormatGob, TypeString, true, "SV03F2T0"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := NewHeader(test.format, test.typ, test.full).Encode()
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if got != test.want {
				t.Errorf("header = %q, want %q", got, test.want)
			}
		})
	}
}

func TestHeaderVersionBounds(t *testing.T) {
	header := NewHeader(FormatJSON, TypeMap, false)
	header.Version = 256
	if _, err := header.Encode(); !errors.Is(err, ErrHeaderVersion) {
		t.Errorf("version 256: err = %v, want ErrHeaderVersion", err)
	}
	header.Version = -1
	if _, err := header.Encode(); !errors.Is(err, ErrHeaderVersion) {
		t.Errorf("version -1: err = %v, want ErrHeaderVersion", err)
	}

	header.Version = 255
	got, err := header.Encode()
	if err != nil {
		t.Fatalf("version 255: %v", err)
	}
	if got != "SVffF1T1" {
		t.Errorf("version 255 header = %q, want %q", got, "SVffF1T1")
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		found      bool
		version    int
		format     Format
		typ        Type
		bodyOffset int
	}{
		{"full header", "SV03F1T1payload", true, 3, FormatJSON, TypeMap, 8},
		{"format only", "SV03F2payload", true, 3, FormatGob, TypeString, 6},
		{"version only", "SV03payload", true, 3, FormatNone, TypeString, 4},
		// Hex digits are case-insensitive on parse.
		{"uppercase hex", "SVFFF1T2x", true, 255, FormatJSON, TypeRecord, 8},
		// Marker without a hex digit after it is body, not a field.
		{"F without digit", "SV03Fzzz", true, 3, FormatNone, TypeString, 4},
		{"T without digit", "SV03F1Tzz", true, 3, FormatJSON, TypeString, 6},
		// T can only follow a consumed F.
		{"T without F", "SV03T1abc", true, 3, FormatNone, TypeString, 4},
		// Degenerate: header with empty body.
		{"bare version", "SV03", true, 3, FormatNone, TypeString, 4},
		// Not headers at all.
		{"empty", "", false, 0, 0, 0, 0},
		{"too short", "SV0", false, 0, 0, 0, 0},
		{"wrong prefix", "XY03F1", false, 0, 0, 0, 0},
		{"lowercase prefix", "sv03F1", false, 0, 0, 0, 0},
		{"non-hex version", "SVzzF1", false, 0, 0, 0, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			header, offset, found := ParseHeader(test.input)
			if found != test.found {
				t.Fatalf("found = %v, want %v", found, test.found)
			}
			if !found {
				if offset != 0 {
					t.Errorf("offset = %d, want 0 for unrecognized header", offset)
				}
				return
			}
			if header.Version != test.version {
				t.Errorf("version = %d, want %d", header.Version, test.version)
			}
			if header.Format != test.format {
				t.Errorf("format = %s, want %s", header.Format, test.format)
			}
			if header.Type != test.typ {
				t.Errorf("type = %s, want %s", header.Type, test.typ)
			}
			if offset != test.bodyOffset {
				t.Errorf("body offset = %d, want %d", offset, test.bodyOffset)
			}
		})
	}
}

// A header round-trips through Encode and ParseHeader with the offset
// landing exactly past the emitted prefix.
func TestHeaderRoundtrip(t *testing.T) {
	for _, format := range []Format{FormatNone, FormatJSON, FormatGob, FormatCBOR} {
		for _, typ := range []Type{TypeString, TypeMap, TypeRecord} {
			for _, full := range []bool{false, true} {
				original := NewHeader(format, typ, full)
				encoded, err := original.Encode()
				if err != nil {
					t.Fatalf("Encode(%s, %s, %v): %v", format, typ, full, err)
				}
				parsed, offset, found := ParseHeader(encoded + "body")
				if !found {
					t.Fatalf("ParseHeader(%q): not recognized", encoded)
				}
				if offset != len(encoded) {
					t.Errorf("ParseHeader(%q): offset %d, want %d", encoded, offset, len(encoded))
				}
				if parsed.Version != Version {
					t.Errorf("ParseHeader(%q): version %d, want %d", encoded, parsed.Version, Version)
				}
				// Omitted fields must parse back as the defaults they
				// stand for.
				wantFormat := format
				if !original.HasFormat {
					wantFormat = FormatNone
				}
				wantType := typ
				if !original.HasType {
					wantType = TypeString
				}
				if parsed.Format != wantFormat {
					t.Errorf("ParseHeader(%q): format %s, want %s", encoded, parsed.Format, wantFormat)
				}
				if parsed.Type != wantType {
					t.Errorf("ParseHeader(%q): type %s, want %s", encoded, parsed.Type, wantType)
				}
			}
		}
	}
}

func TestStripHeader(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"SV03F1T1aGVsbG8", "aGVsbG8"},
		{"SV03aGVsbG8", "aGVsbG8"},
		{"aGVsbG8", "aGVsbG8"},
		{"", ""},
	}
	for _, test := range tests {
		got := StripHeader(test.input)
		if got != test.want {
			t.Errorf("StripHeader(%q) = %q, want %q", test.input, got, test.want)
		}
		// Idempotence: the first call removed the only header, so the
		// second is a no-op.
		if again := StripHeader(got); again != got {
			t.Errorf("StripHeader(%q) = %q, not idempotent", got, again)
		}
	}
}

func TestFormatTypeParseNames(t *testing.T) {
	for _, format := range []Format{FormatNone, FormatJSON, FormatGob, FormatCBOR} {
		parsed, err := ParseFormat(format.String())
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", format.String(), err)
		}
		if parsed != format {
			t.Errorf("ParseFormat(%q) = %s, want %s", format.String(), parsed, format)
		}
	}
	if _, err := ParseFormat("base91"); err == nil {
		t.Error("ParseFormat accepted an unknown name")
	}

	for _, typ := range []Type{TypeString, TypeMap, TypeRecord} {
		parsed, err := ParseType(typ.String())
		if err != nil {
			t.Fatalf("ParseType(%q): %v", typ.String(), err)
		}
		if parsed != typ {
			t.Errorf("ParseType(%q) = %s, want %s", typ.String(), parsed, typ)
		}
	}
	if _, err := ParseType("list"); err == nil {
		t.Error("ParseType accepted an unknown name")
	}
}
