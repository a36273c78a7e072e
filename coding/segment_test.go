// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

func TestDetermineMode(t *testing.T) {
	cases := []struct {
		data string
		want mode
	}{
		{"12345", modeNumeric},
		{"", modeNumeric}, // empty string matches the numeric pattern trivially
		{"HELLO WORLD", modeAlphanumeric},
		{"ABC123 $%*+-./:", modeAlphanumeric},
		{"Hello, world!", modeByte},
		{"abc", modeByte},
	}
	for _, c := range cases {
		if got := determineMode([]byte(c.data)); got.name != c.want.name {
			t.Errorf("determineMode(%q) = %s, want %s", c.data, got.name, c.want.name)
		}
	}
}

func TestEncodeNumeric(t *testing.T) {
	var b Bits
	encodeNumeric(&b, []byte("0123456789"))
	// "012" -> 10 bits (value 12), "345" -> value 345 (10 bits), "678" ->
	// value 678 (10 bits), final "9" -> 4 bits (value 9).
	if b.Len() != 10+10+10+4 {
		t.Fatalf("Len() = %d, want %d", b.Len(), 34)
	}
}

func TestEncodeAlphanumeric(t *testing.T) {
	var b Bits
	encodeAlphanumeric(&b, []byte("HELLO WORLD"))
	// 11 characters: five 11-bit pairs plus one trailing 6-bit char.
	if want := 5*11 + 6; b.Len() != want {
		t.Fatalf("Len() = %d, want %d", b.Len(), want)
	}
	// First pair "HE": H=17, E=14 -> 17*45+14 = 779.
	var got uint32
	for i := 0; i < 11; i++ {
		got = got<<1 | uint32(b.Bit(i))
	}
	if got != 779 {
		t.Errorf("first pair = %d, want 779", got)
	}
}

func TestEncodeByte(t *testing.T) {
	var b Bits
	encodeByte(&b, []byte{0x41, 0xFF})
	if b.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", b.Len())
	}
	if b.Bytes()[0] != 0x41 || b.Bytes()[1] != 0xFF {
		t.Errorf("Bytes() = %v, want [0x41 0xff]", b.Bytes())
	}
}
