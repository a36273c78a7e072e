// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/kvasov/qr/coding/gf256"

var rsField = gf256.NewField(0x11d, 2)

// block is one Reed-Solomon block of a QR Code symbol: k data bytes and
// the ECC bytes computed from them.
type block struct {
	data []byte
	ecc  []byte
}

// splitBlocks divides data into the block layout required for version v
// at level l, and computes each block's ECC bytes. It panics if data is
// not exactly v.dataCapacity(l) bytes long; callers are expected to have
// padded to that length already (see encodeBitStream).
func splitBlocks(v Version, l Level, data []byte) []block {
	capacity := v.dataCapacity(l)
	if len(data) != capacity {
		panic("coding: splitBlocks: data length does not match capacity")
	}
	count := v.blockCount(l)
	ecLen := v.eccPerBlock(l)
	enc := gf256.NewRSEncoder(rsField, ecLen)

	k1 := capacity / count
	k2 := k1
	if capacity%count != 0 {
		k2 = k1 + 1
	}
	// n blocks of k1 bytes, count-n of k2, n*k1+(count-n)*k2 == capacity.
	n := count
	if k2 != k1 {
		n = count*k2 - capacity
	}

	blocks := make([]block, count)
	pos := 0
	for i := 0; i < count; i++ {
		k := k1
		if i >= n {
			k = k2
		}
		d := data[pos : pos+k]
		pos += k
		blocks[i] = block{data: d, ecc: enc.ECC(d)}
	}
	if pos != capacity {
		panic("coding: splitBlocks: internal invariant violation")
	}
	return blocks
}

// interleave produces the final codeword stream: data bytes from every
// block position 0, 1, 2, ... skipping blocks too short, followed by ECC
// bytes the same way. All blocks at a given (version, level) carry the
// same number of ECC bytes, which the loop below relies on explicitly.
func interleave(blocks []block) []byte {
	if len(blocks) == 1 {
		return append(append([]byte{}, blocks[0].data...), blocks[0].ecc...)
	}
	maxK := 0
	for _, b := range blocks {
		if len(b.data) > maxK {
			maxK = len(b.data)
		}
	}
	ecLen := len(blocks[0].ecc)
	for _, b := range blocks {
		if len(b.ecc) != ecLen {
			panic("coding: interleave: blocks have differing ECC lengths")
		}
	}
	out := make([]byte, 0, maxK*len(blocks)+ecLen*len(blocks))
	for i := 0; i < maxK; i++ {
		for _, b := range blocks {
			if i < len(b.data) {
				out = append(out, b.data[i])
			}
		}
	}
	for i := 0; i < ecLen; i++ {
		for _, b := range blocks {
			out = append(out, b.ecc[i])
		}
	}
	return out
}
