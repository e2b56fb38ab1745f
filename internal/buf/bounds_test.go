package buf

import (
	"math"
	"testing"
)

func TestEndOf(t *testing.T) {
	if end, ok := EndOf(0x1000, 0x10); !ok || end != 0x1010 {
		t.Fatalf("EndOf(0x1000,0x10)=0x%x,%v want 0x1010,true", end, ok)
	}
	if _, ok := EndOf(math.MaxUint64, 1); ok {
		t.Fatalf("expected wrap when adding to MaxUint64")
	}
}

func TestWithinAndCovers(t *testing.T) {
	if !Within(0x10, 0x10, 0x10, 0x20) {
		t.Fatalf("range touching both bounds should be within")
	}
	if Within(0x0f, 0x10, 0x10, 0x20) {
		t.Fatalf("range starting below window should be rejected")
	}
	if Within(0x11, 0x10, 0x10, 0x20) {
		t.Fatalf("range ending above window should be rejected")
	}
	if Within(math.MaxUint64-1, 4, 0, math.MaxUint64) {
		t.Fatalf("wrapping range should be rejected")
	}

	if !Covers(0x100, 0x20, 0x110, 0x10) {
		t.Fatalf("block should cover its tail")
	}
	if Covers(0x100, 0x20, 0x110, 0x11) {
		t.Fatalf("block should not cover a range past its end")
	}
	if Covers(0x100, 0x20, 0xff, 1) {
		t.Fatalf("block should not cover a range before its base")
	}
}

func TestCheckSlots(t *testing.T) {
	end, err := CheckSlots(0x1000, 5, 0x60)
	if err != nil {
		t.Fatalf("CheckSlots: %v", err)
	}
	if end != 0x1000+5*0x60 {
		t.Fatalf("CheckSlots end = 0x%x", end)
	}
	if _, err := CheckSlots(0x1000, -1, 8); err == nil {
		t.Fatalf("expected negative count error")
	}
	if _, err := CheckSlots(0x1000, 1, 0); err == nil {
		t.Fatalf("expected stride error")
	}
	if _, err := CheckSlots(math.MaxUint64-8, 2, 8); err == nil {
		t.Fatalf("expected overflow error")
	}
}

func TestAlign(t *testing.T) {
	cases := []struct{ in, align, want int }{
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{0x54, 8, 0x58},
	}
	for _, c := range cases {
		if got := Align(c.in, c.align); got != c.want {
			t.Fatalf("Align(%d,%d) = %d, want %d", c.in, c.align, got, c.want)
		}
	}
	if got := Align[uint64](0x2a982c8b1, 8); got != 0x2a982c8b8 {
		t.Fatalf("Align uint64 = 0x%x", got)
	}
}
