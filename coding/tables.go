// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Capacity tables, indexed [1..40] by Version (index 0 unused). These are
// the literal per-version codeword counts and per-level error-correction
// codeword totals defined by ISO/IEC 18004 Annex D/E, reproduced verbatim.
//
// ec holds total error-correction codewords for levels L, M, Q, H in that
// order (matching the order of the Level constants, not the format-info
// selector bits).
var capacityTab = [41]struct {
	words int    // total codewords (data + ECC) in the symbol
	ec    [4]int // total ECC codewords for L, M, Q, H
}{
	{},
	{26, [4]int{7, 10, 13, 17}}, // 1
	{44, [4]int{10, 16, 22, 28}},
	{70, [4]int{15, 26, 36, 44}},
	{100, [4]int{20, 36, 52, 64}},
	{134, [4]int{26, 48, 72, 88}}, // 5
	{172, [4]int{36, 64, 96, 112}},
	{196, [4]int{40, 72, 108, 130}},
	{242, [4]int{48, 88, 132, 156}},
	{292, [4]int{60, 110, 160, 192}},
	{346, [4]int{72, 130, 192, 224}}, // 10
	{404, [4]int{80, 150, 224, 264}},
	{466, [4]int{96, 176, 260, 308}},
	{532, [4]int{104, 198, 288, 352}},
	{581, [4]int{120, 216, 320, 384}},
	{655, [4]int{132, 240, 360, 432}}, // 15
	{733, [4]int{144, 280, 408, 480}},
	{815, [4]int{168, 308, 448, 532}},
	{901, [4]int{180, 338, 504, 588}},
	{991, [4]int{196, 364, 546, 650}},
	{1085, [4]int{224, 416, 600, 700}}, // 20
	{1156, [4]int{224, 442, 644, 750}},
	{1258, [4]int{252, 476, 690, 816}},
	{1364, [4]int{270, 504, 750, 900}},
	{1474, [4]int{300, 560, 810, 960}},
	{1588, [4]int{312, 588, 870, 1050}}, // 25
	{1706, [4]int{336, 644, 952, 1110}},
	{1828, [4]int{360, 700, 1020, 1200}},
	{1921, [4]int{390, 728, 1050, 1260}},
	{2051, [4]int{420, 784, 1140, 1350}},
	{2185, [4]int{450, 812, 1200, 1440}}, // 30
	{2323, [4]int{480, 868, 1290, 1530}},
	{2465, [4]int{510, 924, 1350, 1620}},
	{2611, [4]int{540, 980, 1440, 1710}},
	{2761, [4]int{570, 1036, 1530, 1800}},
	{2876, [4]int{570, 1064, 1590, 1890}}, // 35
	{3034, [4]int{600, 1120, 1680, 1980}},
	{3196, [4]int{630, 1204, 1770, 2100}},
	{3362, [4]int{660, 1260, 1860, 2220}},
	{3532, [4]int{720, 1316, 1950, 2310}},
	{3706, [4]int{750, 1372, 2040, 2430}}, // 40
}

// eccBlockTab[v][ecc] holds {count1, count2}, the number of blocks in
// each of the two block groups (group 2 has one more data codeword than
// group 1; group 2 is absent when count2 == 0).
var eccBlockTab = [41][4][2]int{
	{},
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}}, // 1
	{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
	{{1, 0}, {1, 0}, {2, 0}, {2, 0}},
	{{1, 0}, {2, 0}, {2, 0}, {4, 0}},
	{{1, 0}, {2, 0}, {2, 2}, {2, 2}}, // 5
	{{2, 0}, {4, 0}, {4, 0}, {4, 0}},
	{{2, 0}, {4, 0}, {2, 4}, {4, 1}},
	{{2, 0}, {2, 2}, {4, 2}, {4, 2}},
	{{2, 0}, {3, 2}, {4, 4}, {4, 4}},
	{{2, 2}, {4, 1}, {6, 2}, {6, 2}}, // 10
	{{4, 0}, {1, 4}, {4, 4}, {3, 8}},
	{{2, 2}, {6, 2}, {4, 6}, {7, 4}},
	{{4, 0}, {8, 1}, {8, 4}, {12, 4}},
	{{3, 1}, {4, 5}, {11, 5}, {11, 5}},
	{{5, 1}, {5, 5}, {5, 7}, {11, 7}}, // 15
	{{5, 1}, {7, 3}, {15, 2}, {3, 13}},
	{{1, 5}, {10, 1}, {1, 15}, {2, 17}},
	{{5, 1}, {9, 4}, {17, 1}, {2, 19}},
	{{3, 4}, {3, 11}, {17, 4}, {9, 16}},
	{{3, 5}, {3, 13}, {15, 5}, {15, 10}}, // 20
	{{4, 4}, {17, 0}, {17, 6}, {19, 6}},
	{{2, 7}, {17, 0}, {7, 16}, {34, 0}},
	{{4, 5}, {4, 14}, {11, 14}, {16, 14}},
	{{6, 4}, {6, 14}, {11, 16}, {30, 2}},
	{{8, 4}, {8, 13}, {7, 22}, {22, 13}}, // 25
	{{10, 2}, {19, 4}, {28, 6}, {33, 4}},
	{{8, 4}, {22, 3}, {8, 26}, {12, 28}},
	{{3, 10}, {3, 23}, {4, 31}, {11, 31}},
	{{7, 7}, {21, 7}, {1, 37}, {19, 26}},
	{{5, 10}, {19, 10}, {15, 25}, {23, 25}}, // 30
	{{13, 3}, {2, 29}, {42, 1}, {23, 28}},
	{{17, 0}, {10, 23}, {10, 35}, {19, 35}},
	{{17, 1}, {14, 21}, {29, 19}, {11, 46}},
	{{13, 6}, {14, 23}, {44, 7}, {59, 1}},
	{{12, 7}, {12, 26}, {39, 14}, {22, 41}}, // 35
	{{6, 14}, {6, 34}, {46, 10}, {2, 64}},
	{{17, 4}, {29, 14}, {49, 10}, {24, 46}},
	{{4, 18}, {13, 32}, {48, 14}, {42, 32}},
	{{20, 4}, {40, 7}, {43, 22}, {10, 67}},
	{{19, 6}, {18, 31}, {34, 34}, {20, 61}}, // 40
}

// versionInfoTab holds the 18-bit BCH version-information codeword for
// versions 7 through 40; versions below 7 carry no version-information
// area and are omitted.
var versionInfoTab = [41]uint32{
	7:  0x07c94,
	8:  0x085bc,
	9:  0x09a99,
	10: 0x0a4d3,
	11: 0x0bbf6,
	12: 0x0c762,
	13: 0x0d847,
	14: 0x0e60d,
	15: 0x0f928,
	16: 0x10b78,
	17: 0x1145d,
	18: 0x12a17,
	19: 0x13532,
	20: 0x149a6,
	21: 0x15683,
	22: 0x168c9,
	23: 0x177ec,
	24: 0x18ec4,
	25: 0x191e1,
	26: 0x1afab,
	27: 0x1b08e,
	28: 0x1cc1a,
	29: 0x1d33f,
	30: 0x1ed75,
	31: 0x1f250,
	32: 0x209d5,
	33: 0x216f0,
	34: 0x228ba,
	35: 0x2379f,
	36: 0x24b0b,
	37: 0x2542e,
	38: 0x26a64,
	39: 0x27541,
	40: 0x28c69,
}

// formatInfoTab[eccSelector][mask] holds the 15-bit BCH format-information
// codeword, already XOR-masked with the fixed pattern 0x5412 required by
// the standard. Computed once at init from the format generator
// polynomial rather than hand-transcribed, for the same reason the RS
// generator polynomials are computed rather than tabulated (see DESIGN.md).
var formatInfoTab [4][8]uint16

func init() {
	for sel := 0; sel < 4; sel++ {
		for mask := 0; mask < 8; mask++ {
			fb := uint16(sel)<<3 | uint16(mask)
			formatInfoTab[sel][mask] = bchFormat(fb<<10) ^ 0x5412
		}
	}
}

// bchFormat appends the 10-bit BCH(15,5) error-correction remainder to a
// 5-bit format value already shifted into the top 5 bits of a 15-bit
// field, using generator polynomial G(x) = x^10+x^8+x^5+x^4+x^2+x+1
// (0x537), exactly as ISO/IEC 18004 Annex C specifies.
func bchFormat(fb uint16) uint16 {
	const poly = 0x537
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&(1<<uint(10+i)) != 0 {
			rem ^= poly << uint(i)
		}
	}
	return fb | rem
}
