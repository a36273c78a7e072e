// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strings"

// mode describes one of the three supported QR Code encoding modes.
type mode struct {
	name      string
	class     int    // index into lenLen's per-mode tables: 0 numeric, 1 alphanumeric, 2 byte
	indicator uint32 // 4-bit mode indicator
}

var (
	modeNumeric      = mode{"numeric", 0, 0b0001}
	modeAlphanumeric = mode{"alphanumeric", 1, 0b0010}
	modeByte         = mode{"byte", 2, 0b0100}
)

const alphanumericChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// determineMode picks the most compact mode that can represent data
// without loss: numeric if every byte is a digit, alphanumeric if every
// byte is in the QR alphanumeric alphabet, otherwise byte mode. An empty
// string matches the numeric pattern trivially, same as the source this
// package is derived from; see DESIGN.md.
func determineMode(data []byte) mode {
	allDigits := true
	for _, c := range data {
		if c < '0' || c > '9' {
			allDigits = false
			break
		}
	}
	if allDigits {
		return modeNumeric
	}
	allAlnum := true
	for _, c := range data {
		if strings.IndexByte(alphanumericChars, c) < 0 {
			allAlnum = false
			break
		}
	}
	if allAlnum {
		return modeAlphanumeric
	}
	return modeByte
}

// encodeData appends data, encoded per mode's rules, to b.
func encodeData(b *Bits, data []byte, m mode) {
	switch m.class {
	case 0:
		encodeNumeric(b, data)
	case 1:
		encodeAlphanumeric(b, data)
	default:
		encodeByte(b, data)
	}
}

// encodeNumeric packs digits three at a time into 10-bit groups, with a
// 7-bit group for a final pair and a 4-bit group for a final single digit.
func encodeNumeric(b *Bits, data []byte) {
	for i := 0; i < len(data); i += 3 {
		end := i + 3
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]
		v := uint32(0)
		for _, c := range chunk {
			v = v*10 + uint32(c-'0')
		}
		switch len(chunk) {
		case 3:
			b.Write(v, 10)
		case 2:
			b.Write(v, 7)
		case 1:
			b.Write(v, 4)
		}
	}
}

// encodeAlphanumeric packs characters two at a time into 11-bit groups,
// via idx1*45+idx2, with a 6-bit group for a final lone character.
func encodeAlphanumeric(b *Bits, data []byte) {
	for i := 0; i < len(data); i += 2 {
		if i+1 < len(data) {
			idx1 := strings.IndexByte(alphanumericChars, data[i])
			idx2 := strings.IndexByte(alphanumericChars, data[i+1])
			b.Write(uint32(idx1*45+idx2), 11)
		} else {
			idx := strings.IndexByte(alphanumericChars, data[i])
			b.Write(uint32(idx), 6)
		}
	}
}

// encodeByte appends each input byte as 8 bits, unmodified.
func encodeByte(b *Bits, data []byte) {
	for _, c := range data {
		b.Write(uint32(c), 8)
	}
}
