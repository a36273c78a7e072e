// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// formatInfoBits returns the 15-bit BCH-coded format-information
// codeword for the given level and mask pattern.
func formatInfoBits(l Level, pattern int) uint16 {
	return formatInfoTab[l.selector()][pattern]
}

// versionInfoBits returns the 18-bit BCH-coded version-information
// codeword for v, which is only meaningful for v >= 7.
func versionInfoBits(v Version) uint32 {
	return versionInfoTab[v]
}

// writeFormatInfo writes the 15-bit codeword fb twice into the two
// reserved areas around the finder patterns.
func writeFormatInfo(m matrix, fb uint16) {
	size := m.size()
	bitAt := func(i int) int8 {
		if fb&(1<<uint(14-i)) != 0 {
			return cellDark
		}
		return cellLight
	}
	for i := 0; i <= 5; i++ {
		m[8][i] = bitAt(i)
	}
	m[8][7] = bitAt(6)
	m[8][8] = bitAt(7)
	m[7][8] = bitAt(8)
	for i := 9; i <= 14; i++ {
		m[14-i][8] = bitAt(i)
	}
	for i := 0; i <= 6; i++ {
		m[size-1-i][8] = bitAt(i)
	}
	for i := 7; i <= 14; i++ {
		m[8][size-15+i] = bitAt(i)
	}
}

// versionInfoPositions returns the 36 (row, col) cells, both copies
// combined, reserved for version information at symbol side length size.
func versionInfoPositions(size int) [][2]int {
	pos := make([][2]int, 0, 36)
	for i := 0; i < 18; i++ {
		r, c := size-9-i%3, 5-i/3
		pos = append(pos, [2]int{r, c}, [2]int{c, r})
	}
	return pos
}

// writeVersionInfo writes the 18-bit codeword vb twice, mirror
// symmetrically, into the two reserved 3x6/6x3 regions.
func writeVersionInfo(m matrix, size int, vb uint32) {
	for i := 0; i < 18; i++ {
		v := int8(cellLight)
		if vb&(1<<uint(17-i)) != 0 {
			v = cellDark
		}
		r, c := size-9-i%3, 5-i/3
		m[r][c] = v
		m[c][r] = v
	}
}
