// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Cell values during matrix construction. cellEmpty marks a module not
// yet assigned; the data placer only ever writes into empty cells.
// Reserved cells (functional patterns, format/version info placeholders)
// are never touched by masking. The final output collapses every value
// to its low bit.
const (
	cellEmpty         int8 = -1
	cellLight         int8 = 0
	cellDark          int8 = 1
	cellReservedLight int8 = 2
	cellReservedDark  int8 = 3
)

// matrix is an N*N grid of cell values, addressed matrix[row][col].
type matrix [][]int8

func newMatrix(size int) matrix {
	m := make(matrix, size)
	row := make([]int8, size*size)
	for i := range m {
		m[i] = row[i*size : i*size+size]
		for j := range m[i] {
			m[i][j] = cellEmpty
		}
	}
	return m
}

func (m matrix) size() int { return len(m) }

// buildMatrix allocates the matrix for version v and draws every
// functional pattern and reservation, leaving only the data-bearing
// cells as cellEmpty for the data placer to fill.
func buildMatrix(v Version) matrix {
	size := v.Size()
	m := newMatrix(size)

	drawFinder(m, 0, 0)
	drawFinder(m, 0, size-7)
	drawFinder(m, size-7, 0)

	reserveFormatInfo(m)
	m[size-8][8] = cellReservedDark // the fixed dark module

	drawTiming(m)
	drawAlignment(m, v)

	if v >= 7 {
		for _, p := range versionInfoPositions(size) {
			m[p[0]][p[1]] = cellReservedLight
		}
	}
	return m
}

// drawFinder draws a 7x7 finder pattern whose top-left module is
// (topRow, topCol), plus the 1-module light separator around it; separator
// cells that fall outside the matrix are skipped.
func drawFinder(m matrix, topRow, topCol int) {
	size := m.size()
	for dr := -1; dr <= 7; dr++ {
		for dc := -1; dc <= 7; dc++ {
			r, c := topRow+dr, topCol+dc
			if r < 0 || r >= size || c < 0 || c >= size {
				continue
			}
			var v int8
			switch {
			case dr == -1 || dr == 7 || dc == -1 || dc == 7:
				v = cellReservedLight // separator
			case dr == 0 || dr == 6 || dc == 0 || dc == 6:
				v = cellReservedDark // outer dark border
			case dr >= 2 && dr <= 4 && dc >= 2 && dc <= 4:
				v = cellReservedDark // center 3x3
			default:
				v = cellReservedLight // inner light ring
			}
			m[r][c] = v
		}
	}
}

// reserveFormatInfo pre-colors the 15+15 format-information cells light;
// the actual BCH bits are written over these cells after mask selection.
func reserveFormatInfo(m matrix) {
	size := m.size()
	for _, row := range []int{0, 1, 2, 3, 4, 5, 7, 8} {
		m[row][8] = cellReservedLight
	}
	for _, col := range []int{0, 1, 2, 3, 4, 5, 7, 8} {
		m[8][col] = cellReservedLight
	}
	for i := 0; i <= 6; i++ {
		m[size-1-i][8] = cellReservedLight
	}
	for i := 7; i <= 14; i++ {
		m[8][size-15+i] = cellReservedLight
	}
}

// drawTiming draws the alternating row-6/column-6 timing patterns
// between the finder separators.
func drawTiming(m matrix) {
	size := m.size()
	for pos := 8; pos <= size-9; pos++ {
		v := cellReservedDark
		if pos&1 == 1 {
			v = cellReservedLight
		}
		m[6][pos] = int8(v)
		m[pos][6] = int8(v)
	}
}

// drawAlignment draws every alignment pattern for version v, skipping
// the three grid positions that coincide with the finder patterns.
func drawAlignment(m matrix, v Version) {
	pos := v.alignmentPositions()
	n := len(pos)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if (i == 0 && j == 0) || (i == 0 && j == n-1) || (i == n-1 && j == 0) {
				continue
			}
			drawAlignmentBox(m, pos[i], pos[j])
		}
	}
}

// drawAlignmentBox draws a single 5x5 alignment pattern centered at
// (row, col): a dark center, a 3x3 light ring, a 5x5 dark border.
func drawAlignmentBox(m matrix, row, col int) {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			v := int8(cellReservedDark)
			if abs(dr) <= 1 && abs(dc) <= 1 && (dr != 0 || dc != 0) {
				v = cellReservedLight
			}
			m[row+dr][col+dc] = v
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// placeData zig-zags data's bits into every remaining empty cell, in the
// boustrophedon order ISO/IEC 18004 specifies: starting at the bottom of
// the rightmost column pair and sweeping upward, reversing direction and
// stepping two columns left (three when crossing the timing column) at
// each boundary.
func placeData(m matrix, data *Bits) {
	size := m.size()
	bit := 0
	x, y := size-2, size-1
	column := 1
	dir := -1
	for x >= 0 {
		col := x + column
		if m[y][col] == cellEmpty {
			v := int8(cellLight)
			if bit < data.Len() && data.Bit(bit) != 0 {
				v = cellDark
			}
			m[y][col] = v
			bit++
		}
		if column == 1 {
			column = 0
			continue
		}
		column = 1
		y += dir
		if y < 0 || y >= size {
			if x == 7 {
				x = 4
			} else {
				x -= 2
			}
			dir = -dir
			y += dir
		}
	}
}
