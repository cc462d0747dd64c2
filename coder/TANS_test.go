package coder

import (
	"errors"
	"reflect"
	"testing"

	ans "github.com/anscore/ansgo"
	"github.com/anscore/ansgo/model"
)

func newTANSTestFreqs(t *testing.T) *model.Frequencies {
	t.Helper()
	f, err := model.New(map[ans.Symbol]uint64{0: 5, 1: 3, 2: 8})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return f
}

func TestTANSDecIsInverseOfEnc(t *testing.T) {
	freqs := newTANSTestFreqs(t)
	tbl, err := NewTANS(freqs, 2, 1)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lowI := uint64(1) * freqs.M()
	highI := 2 * lowI

	for y := lowI; y < highI; y++ {
		s, x, err := tbl.D(ans.State(y))

		if err != nil {
			t.Fatalf("D(%d): %v", y, err)
		}

		gotY, err := tbl.C(s, x)

		if err != nil {
			t.Fatalf("C(%d, %d): %v", s, x, err)
		}

		if uint64(gotY) != y {
			t.Fatalf("C(D(%d)) = %d, want %d", y, gotY, y)
		}
	}
}

func TestTANSSymbolCountMatchesFormula(t *testing.T) {
	freqs := newTANSTestFreqs(t)
	b, l := uint64(2), uint64(1)
	tbl, err := NewTANS(freqs, b, l)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range freqs.Symbols() {
		freq, _ := freqs.Freq(s)
		want := int((b - 1) * l * freq)

		if got := tbl.SymbolCount(s); got != want {
			t.Fatalf("SymbolCount(%d) = %d, want %d", s, got, want)
		}
	}
}

func TestTANSTableLookupMiss(t *testing.T) {
	freqs := newTANSTestFreqs(t)
	tbl, _ := NewTANS(freqs, 2, 1)

	lowI := freqs.M()

	if _, _, err := tbl.D(ans.State(lowI - 1)); !errors.Is(err, ans.ErrTableLookupMiss) {
		t.Fatalf("expected ErrTableLookupMiss below lowI, got %v", err)
	}

	if _, err := tbl.C(0, ans.State(0)); !errors.Is(err, ans.ErrTableLookupMiss) {
		t.Fatalf("expected ErrTableLookupMiss for state outside enc domain, got %v", err)
	}
}

// TestTANSBuildIsDeterministic rebuilds the table twice from an
// identical (F,b,l) and checks the dec array agrees entry-for-entry —
// the cross-multiplication heap comparator must never depend on map
// iteration order or float rounding.
func TestTANSBuildIsDeterministic(t *testing.T) {
	freqs := newTANSTestFreqs(t)

	a, err := NewTANS(freqs, 3, 2)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := NewTANS(freqs, 3, 2)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(a.table.dec, b.table.dec) {
		t.Fatalf("two builds from identical (F,b,l) produced different tables")
	}
}

func TestNewTANSRejectsBadParameters(t *testing.T) {
	freqs := newTANSTestFreqs(t)

	if _, err := NewTANS(freqs, 1, 1); !errors.Is(err, ans.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for b=1, got %v", err)
	}

	if _, err := NewTANS(freqs, 2, 0); !errors.Is(err, ans.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for l=0, got %v", err)
	}

	if _, err := NewTANS(nil, 2, 1); !errors.Is(err, ans.ErrInvalidModel) {
		t.Fatalf("expected ErrInvalidModel for nil freqs, got %v", err)
	}
}
