// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic in GF(2^8), the finite field used
// by Reed-Solomon error correction in QR Code symbols.
package gf256

// A Field is a Galois field GF(2^8) defined by a primitive polynomial and
// a generator element. Tables are built once at construction and are
// read-only afterward, so a *Field is safe for concurrent use.
type Field struct {
	exp [510]byte // exp[i] == exp[i+255] for i < 255, avoids a mod on lookup
	log [256]byte // log[0] is unused; zero has no logarithm
}

// NewField builds the field for the given primitive polynomial (e.g. 0x11d
// for x^8+x^4+x^3+x^2+1) and generator (e.g. 2).
func NewField(poly, generator int) *Field {
	f := &Field{}
	x := 1
	for i := 0; i < 255; i++ {
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x *= generator
		if x >= 256 {
			x ^= poly
		}
	}
	return f
}

// Exp returns generator^e, where e may be any non-negative integer; the
// table wraps mod 255 as GF(2^8)'s multiplicative group requires.
func (f *Field) Exp(e int) byte {
	return f.exp[e%255]
}

// Log returns e such that generator^e == v. v must be non-zero.
func (f *Field) Log(v byte) int {
	return int(f.log[v])
}

// Mul returns the field product of a and b.
func (f *Field) Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[int(f.log[a])+int(f.log[b])]
}
