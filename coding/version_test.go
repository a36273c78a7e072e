// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

func TestVersionSize(t *testing.T) {
	cases := []struct {
		v    Version
		size int
	}{{1, 21}, {2, 25}, {7, 45}, {40, 177}}
	for _, c := range cases {
		if got := c.v.Size(); got != c.size {
			t.Errorf("Version(%d).Size() = %d, want %d", c.v, got, c.size)
		}
	}
}

func TestAlignmentCount(t *testing.T) {
	cases := []struct {
		v Version
		n int
	}{{1, 0}, {2, 2}, {6, 2}, {7, 3}, {13, 3}, {32, 6}, {40, 7}}
	for _, c := range cases {
		if got := c.v.alignmentCount(); got != c.n {
			t.Errorf("Version(%d).alignmentCount() = %d, want %d", c.v, got, c.n)
		}
	}
}

func TestAlignmentPositions(t *testing.T) {
	cases := []struct {
		v   Version
		pos []int
	}{
		{1, nil},
		{2, []int{6, 18}},
		{5, []int{6, 30}},
		{7, []int{6, 22, 38}},
		{32, []int{6, 34, 60, 86, 112, 138}},
	}
	for _, c := range cases {
		got := c.v.alignmentPositions()
		if len(got) != len(c.pos) {
			t.Fatalf("Version(%d).alignmentPositions() = %v, want %v", c.v, got, c.pos)
		}
		for i := range got {
			if got[i] != c.pos[i] {
				t.Errorf("Version(%d).alignmentPositions() = %v, want %v", c.v, got, c.pos)
				break
			}
		}
	}
}

// TestCapacityInvariant checks the corrected form of the capacity
// invariant (see DESIGN.md OQ-1): data capacity plus total ECC
// codewords equals the version's total codeword count, for every
// version and level.
func TestCapacityInvariant(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for l := L; l <= H; l++ {
			data := v.dataCapacity(l)
			count := v.blockCount(l)
			ecc := v.eccPerBlock(l)
			if data+ecc*count != v.totalCapacity() {
				t.Errorf("version %d level %v: data=%d ecc=%d*%d total=%d, want %d",
					v, l, data, ecc, count, data+ecc*count, v.totalCapacity())
			}
			if capacityTab[v].ec[l]%count != 0 {
				t.Errorf("version %d level %v: ec total %d not divisible by block count %d",
					v, l, capacityTab[v].ec[l], count)
			}
		}
	}
}

func TestLenLen(t *testing.T) {
	cases := []struct {
		v    Version
		m    mode
		want int
	}{
		{9, modeNumeric, 10},
		{9, modeAlphanumeric, 9},
		{9, modeByte, 8},
		{10, modeNumeric, 12},
		{26, modeByte, 16},
		{27, modeNumeric, 14},
		{40, modeByte, 16},
	}
	for _, c := range cases {
		if got := c.v.lenLen(c.m); got != c.want {
			t.Errorf("Version(%d).lenLen(%s) = %d, want %d", c.v, c.m.name, got, c.want)
		}
	}
}
