// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qr encodes QR Code symbols per ISO/IEC 18004.
//
// Encode takes a payload, an error-correction level, and an optional
// fixed version, and returns the symbol as a square grid of 0/1 module
// values; rendering that grid to a raster format is the caller's job.
package qr

import (
	"github.com/kvasov/qr/coding"
)

// A Level denotes a QR Code error-correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level coding.Level

const (
	L Level = Level(coding.L) // recovers ~7% of codewords
	M Level = Level(coding.M) // recovers ~15%
	Q Level = Level(coding.Q) // recovers ~25%
	H Level = Level(coding.H) // recovers ~30%
)

func (l Level) String() string { return coding.Level(l).String() }

// Errors returned by Encode.
var (
	ErrInvalidVersion    = coding.ErrInvalidVersion
	ErrCapacityExceeded  = coding.ErrCapacityExceeded
	ErrVersionOutOfRange = coding.ErrVersionOutOfRange
)

// A Code is the result of encoding data into a QR Code symbol.
type Code struct {
	Version int      // 1..40
	Level   Level    // the error-correction level actually used
	Mask    int      // the selected mask pattern, 0..7
	Bits    [][]uint8 // Size x Size grid of module values, 0=light, 1=dark
	Size    int       // side length in modules, 17+4*Version
}

// Black reports whether the module at (row, col) is dark. It returns
// false for any coordinate outside the symbol.
func (c *Code) Black(row, col int) bool {
	if row < 0 || row >= c.Size || col < 0 || col >= c.Size {
		return false
	}
	return c.Bits[row][col] != 0
}

// Encode builds a QR Code symbol for data at error-correction level
// ecc. The mode (numeric, alphanumeric, or byte) is chosen automatically
// from data's content. If version is non-nil, that version is forced and
// ErrCapacityExceeded is returned if data does not fit; otherwise the
// smallest version with sufficient capacity is chosen, and
// ErrVersionOutOfRange is returned if none up to 40 suffices.
func Encode(data []byte, ecc Level, version *int) (*Code, error) {
	var v *coding.Version
	if version != nil {
		cv := coding.Version(*version)
		v = &cv
	}
	cc, err := coding.Encode(data, coding.Level(ecc), v)
	if err != nil {
		return nil, err
	}
	return &Code{
		Version: int(cc.Version),
		Level:   Level(cc.Level),
		Mask:    cc.Mask,
		Bits:    cc.Bits,
		Size:    len(cc.Bits),
	}, nil
}
