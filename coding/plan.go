// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"sync"
)

// Errors returned by Encode.
var (
	// ErrInvalidVersion is returned when a forced version is outside [1, 40].
	ErrInvalidVersion = errors.New("coding: version out of range")
	// ErrCapacityExceeded is returned when a forced version cannot hold data.
	ErrCapacityExceeded = errors.New("coding: data does not fit in requested version")
	// ErrVersionOutOfRange is returned when no version up to 40 fits data.
	ErrVersionOutOfRange = errors.New("coding: no version large enough for data")
)

// skeletons caches the functional-pattern matrix for each version,
// built once and cloned per encode call; the skeleton depends only on
// version, not level, so one cache serves every level.
var skeletons [41]struct {
	once sync.Once
	m    matrix
}

func skeleton(v Version) matrix {
	s := &skeletons[v]
	s.once.Do(func() { s.m = buildMatrix(v) })
	return cloneMatrix(s.m)
}

func cloneMatrix(m matrix) matrix {
	out := make(matrix, len(m))
	for i, row := range m {
		out[i] = append([]int8(nil), row...)
	}
	return out
}

// Code is the result of an Encode call: the symbol matrix plus the
// parameters that produced it.
type Code struct {
	Version Version
	Level   Level
	Mask    int
	Bits    [][]uint8 // N*N grid, 0 = light, 1 = dark
}

// Encode builds a complete QR Code symbol for data at error-correction
// level ecc. If version is nil, the smallest version that fits data is
// selected automatically; otherwise the given version is used or
// ErrCapacityExceeded is returned.
func Encode(data []byte, ecc Level, version *Version) (*Code, error) {
	v, bits, err := encodeBitStream(data, ecc, version)
	if err != nil {
		return nil, err
	}

	codewords := bits.Bytes()
	blocks := splitBlocks(v, ecc, codewords)
	stream := interleave(blocks)

	var placementBits Bits
	for _, b := range stream {
		placementBits.Write(uint32(b), 8)
	}

	m := skeleton(v)
	placeData(m, &placementBits)

	maskIdx, masked := chooseMask(m)
	writeFormatInfo(masked, formatInfoBits(ecc, maskIdx))
	if v >= 7 {
		writeVersionInfo(masked, masked.size(), versionInfoBits(v))
	}

	return &Code{
		Version: v,
		Level:   ecc,
		Mask:    maskIdx,
		Bits:    collapse(masked),
	}, nil
}

// collapse reduces every cell to its low bit, producing the final 0/1
// output matrix.
func collapse(m matrix) [][]uint8 {
	out := make([][]uint8, len(m))
	for i, row := range m {
		out[i] = make([]uint8, len(row))
		for j, v := range row {
			out[i][j] = uint8(v & 1)
		}
	}
	return out
}

// encodeBitStream selects a mode and version for data (or validates a
// forced version), then assembles the full padded data bit stream.
func encodeBitStream(data []byte, ecc Level, forced *Version) (Version, *Bits, error) {
	m := determineMode(data)

	var encoded Bits
	encodeData(&encoded, data, m)
	count := len(data)

	fits := func(v Version) bool {
		total := 4 + v.lenLen(m) + encoded.Len()
		return v.dataCapacity(ecc)*8 >= total
	}

	var v Version
	switch {
	case forced != nil:
		v = *forced
		if !v.Valid() {
			return 0, nil, ErrInvalidVersion
		}
		if !fits(v) {
			return 0, nil, ErrCapacityExceeded
		}
	default:
		found := false
		for cand := MinVersion; cand <= MaxVersion; cand++ {
			if fits(cand) {
				v = cand
				found = true
				break
			}
		}
		if !found {
			return 0, nil, ErrVersionOutOfRange
		}
	}

	var b Bits
	b.Write(m.indicator, 4)
	b.Write(uint32(count), v.lenLen(m))
	for i := 0; i < encoded.Len(); i++ {
		b.WriteBit(encoded.Bit(i))
	}

	capacityBits := v.dataCapacity(ecc) * 8
	if term := capacityBits - b.Len(); term > 0 {
		if term > 4 {
			term = 4
		}
		b.Write(0, term)
	}
	for b.Len()%8 != 0 {
		b.WriteBit(0)
	}
	pad := [2]byte{0xEC, 0x11}
	for i := 0; b.Len() < capacityBits; i++ {
		b.Write(uint32(pad[i%2]), 8)
	}
	b.Truncate(capacityBits)

	if b.Len() != capacityBits {
		panic("coding: internal invariant violation: bit stream length mismatch")
	}
	return v, &b, nil
}
