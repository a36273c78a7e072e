// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// An RSEncoder computes Reed-Solomon error-correction codewords over a
// Field for a fixed number of ECC bytes. The generator polynomial is
// built once, from repeated multiplication by (x - alpha^i), the same
// construction used by every generator-polynomial implementation in the
// wild rather than a hand-transcribed coefficient table.
type RSEncoder struct {
	field *Field
	gen   []byte // monic generator polynomial, highest degree term first
}

// NewRSEncoder builds an encoder producing ecLen error-correction bytes.
func NewRSEncoder(f *Field, ecLen int) *RSEncoder {
	gen := []byte{1}
	for i := 0; i < ecLen; i++ {
		// Multiply gen by (x + alpha^i); GF(2) subtraction is addition.
		next := make([]byte, len(gen)+1)
		root := f.Exp(i)
		for j, c := range gen {
			next[j] ^= c
			next[j+1] ^= f.Mul(c, root)
		}
		gen = next
	}
	return &RSEncoder{field: f, gen: gen}
}

// ECC returns the error-correction codewords for data, by polynomial
// long division of data (as the high-order coefficients of a message
// polynomial padded with len(gen)-1 zero coefficients) by the generator
// polynomial. The remainder is the ECC codeword sequence.
func (r *RSEncoder) ECC(data []byte) []byte {
	ecLen := len(r.gen) - 1
	remainder := make([]byte, ecLen)
	for _, d := range data {
		factor := d ^ remainder[0]
		copy(remainder, remainder[1:])
		remainder[ecLen-1] = 0
		if factor == 0 {
			continue
		}
		for i, c := range r.gen[1:] {
			remainder[i] ^= r.field.Mul(c, factor)
		}
	}
	return remainder
}
