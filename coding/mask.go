// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// maskFuncs holds the eight standard ISO/IEC 18004 mask predicates,
// returning true where the module at (row, col) should be inverted.
// These are equivalent to the tiling matrices the source instead
// represents literally; see DESIGN.md.
var maskFuncs = [8]func(row, col int) bool{
	func(row, col int) bool { return (row+col)%2 == 0 },
	func(row, col int) bool { return row%2 == 0 },
	func(row, col int) bool { return col%3 == 0 },
	func(row, col int) bool { return (row+col)%3 == 0 },
	func(row, col int) bool { return (row/2+col/3)%2 == 0 },
	func(row, col int) bool { return (row*col)%2+(row*col)%3 == 0 },
	func(row, col int) bool { return ((row*col)%2+(row*col)%3)%2 == 0 },
	func(row, col int) bool { return ((row+col)%2+(row*col)%3)%2 == 0 },
}

// applyMask returns a copy of m with mask pattern applied to every
// data-bearing cell (values 0/1); reserved cells are untouched.
func applyMask(m matrix, pattern int) matrix {
	f := maskFuncs[pattern]
	out := newMatrix(m.size())
	for r := range m {
		for c := range m[r] {
			v := m[r][c]
			if (v == cellLight || v == cellDark) && f(r, c) {
				v ^= 1
			}
			out[r][c] = v
		}
	}
	return out
}

// score computes the four ISO/IEC 18004 penalty terms over m's
// collapsed (low-bit) module values. Lower is better.
func score(m matrix) int {
	size := m.size()
	bits := make([][]int8, size)
	for r := range m {
		bits[r] = make([]int8, size)
		for c := range m[r] {
			bits[r][c] = m[r][c] & 1
		}
	}

	total := 0
	for r := 0; r < size; r++ {
		total += scoreLine(rowLine(bits, r))
		total += scoreLine(colLine(bits, r))
	}

	// 2x2 same-colour blocks.
	for r := 0; r < size-1; r++ {
		for c := 0; c < size-1; c++ {
			v := bits[r][c]
			if bits[r][c+1] == v && bits[r+1][c] == v && bits[r+1][c+1] == v {
				total += 3
			}
		}
	}

	// Dark/light balance.
	dark := 0
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			dark += int(bits[r][c])
		}
	}
	ratio := (100*dark + size*size/2) / (size * size)
	k := abs(ratio-50) - 5
	if k > 0 {
		total += 10 * k
	}
	return total
}

func rowLine(bits [][]int8, r int) []int8 { return bits[r] }

func colLine(bits [][]int8, c int) []int8 {
	size := len(bits)
	line := make([]int8, size)
	for r := 0; r < size; r++ {
		line[r] = bits[r][c]
	}
	return line
}

// scoreLine scores a single row or column for the run-length and
// finder-lookalike penalty terms.
func scoreLine(line []int8) int {
	total := 0
	run := 1
	for i := 1; i <= len(line); i++ {
		if i < len(line) && line[i] == line[i-1] {
			run++
			continue
		}
		if run >= 5 {
			total += run - 2
		}
		run = 1
	}
	total += 40 * countFinderLookalike(line)
	return total
}

// countFinderLookalike counts occurrences of the 7-module pattern
// 1011101 in line, the alignment-pattern lookalike penalty.
func countFinderLookalike(line []int8) int {
	const pattern = "1011101"
	count := 0
	for i := 0; i+7 <= len(line); i++ {
		match := true
		for j := 0; j < 7; j++ {
			want := byte(pattern[j] - '0')
			if byte(line[i+j]) != want {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return count
}

// chooseMask applies each of the 8 mask patterns, scores the result, and
// returns the pattern index with the lowest score, ties broken by the
// lowest index, along with the masked matrix itself.
func chooseMask(m matrix) (int, matrix) {
	best := -1
	bestScore := 0
	var bestMatrix matrix
	for p := 0; p < 8; p++ {
		candidate := applyMask(m, p)
		s := score(candidate)
		if best < 0 || s < bestScore {
			best, bestScore, bestMatrix = p, s, candidate
		}
	}
	return best, bestMatrix
}
