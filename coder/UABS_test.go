package coder

import (
	"errors"
	"testing"

	ans "github.com/anscore/ansgo"
)

func TestUABSDecodeInvertsEncode(t *testing.T) {
	u, err := NewUABS(1, 3)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for x := ans.State(1); x < ans.State(500); x++ {
		for _, s := range []ans.Symbol{0, 1} {
			y, err := u.C(s, x)

			if err != nil {
				t.Fatalf("C(%d, %d): %v", s, x, err)
			}

			gotS, gotX, err := u.D(y)

			if err != nil {
				t.Fatalf("D(%d): %v", y, err)
			}

			if gotS != s || gotX != x {
				t.Fatalf("D(C(%d, %d)) = (%d, %d), want (%d, %d)", s, x, gotS, gotX, s, x)
			}
		}
	}
}

func TestUABSEncodeInvertsDecode(t *testing.T) {
	u, _ := NewUABS(2, 5)

	for x := ans.State(1); x < ans.State(500); x++ {
		s, x2, err := u.D(x)

		if err != nil {
			t.Fatalf("D(%d): %v", x, err)
		}

		gotX, err := u.C(s, x2)

		if err != nil {
			t.Fatalf("C(%d, %d): %v", s, x2, err)
		}

		if gotX != x {
			t.Fatalf("C(D(%d)) = %d, want %d", x, gotX, x)
		}
	}
}

func TestUABSRejectsBadProbability(t *testing.T) {
	cases := [][2]uint64{{0, 1}, {1, 0}, {3, 3}, {4, 3}}

	for _, c := range cases {
		if _, err := NewUABS(c[0], c[1]); !errors.Is(err, ans.ErrInvalidParameter) {
			t.Fatalf("NewUABS(%d, %d): expected ErrInvalidParameter, got %v", c[0], c[1], err)
		}
	}
}

func TestUABSRejectsNonBinarySymbol(t *testing.T) {
	u, _ := NewUABS(1, 2)

	if _, err := u.C(2, 10); !errors.Is(err, ans.ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}

	if _, err := u.Freq(2); !errors.Is(err, ans.ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}

// TestUABSSynthesizedFrequenciesMatchP checks the Freq/M synthesis
// that lets uABS share the generic streaming driver: freq(1)/M must
// equal p exactly.
func TestUABSSynthesizedFrequenciesMatchP(t *testing.T) {
	u, _ := NewUABS(3, 7)

	f1, _ := u.Freq(1)
	f0, _ := u.Freq(0)

	if f1 != 3 {
		t.Fatalf("Freq(1) = %d, want 3", f1)
	}

	if f0 != 4 {
		t.Fatalf("Freq(0) = %d, want 4", f0)
	}

	if f0+f1 != u.M() {
		t.Fatalf("Freq(0)+Freq(1) = %d, want M()=%d", f0+f1, u.M())
	}
}
