// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"strings"
	"testing"
)

func TestEncodeNumeric(t *testing.T) {
	c, err := Encode([]byte("1"), H, nil)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if c.Version != 1 || c.Size != 21 {
		t.Fatalf("Version=%d Size=%d, want 1,21", c.Version, c.Size)
	}
	// Top-left finder center must be dark.
	if !c.Black(3, 3) {
		t.Errorf("top-left finder center is not dark")
	}
}

func TestEncodeAutoVersionGrowsWithData(t *testing.T) {
	small, err := Encode([]byte("HELLO"), M, nil)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	large, err := Encode([]byte(strings.Repeat("HELLO WORLD ", 50)), M, nil)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if large.Version <= small.Version {
		t.Errorf("large.Version = %d, want > small.Version (%d)", large.Version, small.Version)
	}
}

func TestEncodeCapacityExceededForcedVersion(t *testing.T) {
	v := 1
	_, err := Encode([]byte(strings.Repeat("X", 1000)), H, &v)
	if err != ErrCapacityExceeded {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}
}

func TestEncodeVersionOutOfRange(t *testing.T) {
	_, err := Encode([]byte(strings.Repeat("A", 10000)), L, nil)
	if err != ErrVersionOutOfRange {
		t.Fatalf("err = %v, want ErrVersionOutOfRange", err)
	}
}

func TestBlackOutOfBounds(t *testing.T) {
	c, err := Encode([]byte("1"), L, nil)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if c.Black(-1, 0) || c.Black(0, c.Size) {
		t.Errorf("Black() out of bounds should return false")
	}
}

func TestLevelString(t *testing.T) {
	if L.String() == "" || H.String() == "" {
		t.Errorf("Level.String() should not be empty")
	}
}
