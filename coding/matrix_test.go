// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

func TestBuildMatrixSize(t *testing.T) {
	for _, v := range []Version{1, 2, 7, 40} {
		m := buildMatrix(v)
		if m.size() != v.Size() {
			t.Errorf("version %d: size = %d, want %d", v, m.size(), v.Size())
		}
	}
}

func TestBuildMatrixDarkModule(t *testing.T) {
	for _, v := range []Version{1, 2, 7, 40} {
		m := buildMatrix(v)
		size := m.size()
		if got := m[size-8][8]; got&1 != 1 {
			t.Errorf("version %d: dark module value %d, low bit != 1", v, got)
		}
	}
}

func TestBuildMatrixFinderCenters(t *testing.T) {
	m := buildMatrix(1)
	size := m.size()
	centers := [][2]int{{3, 3}, {3, size - 4}, {size - 4, 3}}
	for _, c := range centers {
		if m[c[0]][c[1]] != cellReservedDark {
			t.Errorf("finder center at %v = %d, want cellReservedDark", c, m[c[0]][c[1]])
		}
	}
	// Bottom-right corner has no finder: it must remain empty, available
	// for data placement.
	if m[size-1][size-1] != cellEmpty {
		t.Errorf("bottom-right corner = %d, want cellEmpty", m[size-1][size-1])
	}
}

func TestBuildMatrixSeparatorCorner(t *testing.T) {
	m := buildMatrix(1)
	if m[7][7] != cellReservedLight {
		t.Errorf("m[7][7] = %d, want cellReservedLight (separator corner)", m[7][7])
	}
}

func TestPlaceDataFillsEveryEmptyCell(t *testing.T) {
	v := Version(1)
	m := skeleton(v)
	empty := 0
	for _, row := range m {
		for _, c := range row {
			if c == cellEmpty {
				empty++
			}
		}
	}
	var bits Bits
	for i := 0; i < empty; i++ {
		bits.WriteBit(byte(i % 2))
	}
	placeData(m, &bits)
	for r, row := range m {
		for c, v := range row {
			if v == cellEmpty {
				t.Fatalf("cell (%d,%d) still empty after placement", r, c)
			}
		}
	}
}
