package coder

import (
	"fmt"

	ans "github.com/anscore/ansgo"
	"github.com/anscore/ansgo/rational"
)

// UABS is the uniform asymmetric binary system coder: a closed-form
// binary coder parameterized by p, the probability of symbol 1. p is
// represented as an exact rational pNum/pDen so that every ceil/floor
// used below is computed from integers — the original prototype
// (original_source/prototypes/uABS.py) used math.ceil/math.floor on a
// Python float and its own docstring records the failure mode: an
// intermediate value of 30.000000000000004 ceil'ing to 31 instead of
// 30. This implementation never converts to a floating point value.
type UABS struct {
	p    rational.Ratio // p = pNum/pDen, probability of symbol 1
	comp rational.Ratio // 1 - p
}

// NewUABS creates a uABS coder for p = pNum/pDen, with
// 0 < pNum < pDen.
func NewUABS(pNum, pDen uint64) (*UABS, error) {
	if pDen == 0 || pNum == 0 || pNum >= pDen {
		return nil, fmt.Errorf("%w: p numerator/denominator must satisfy 0 < pNum < pDen, got %d/%d", ans.ErrInvalidParameter, pNum, pDen)
	}

	p, err := rational.New(pNum, pDen)

	if err != nil {
		return nil, err
	}

	return &UABS{p: p, comp: rational.Complement(p)}, nil
}

// D decodes the bit at state x.
// s = ceil((x+1)*p) - ceil(x*p); if s=0, x' = x - ceil(x*p);
// if s=1, x' = ceil(x*p).
func (this *UABS) D(x ans.State) (ans.Symbol, ans.State, error) {
	xCeil := rational.CeilMul(x, this.p)
	x1Ceil := rational.CeilMul(x+1, this.p)

	if x1Ceil < xCeil {
		return 0, 0, fmt.Errorf("%w: non-monotonic ceil at state %d", ans.ErrStateOutOfDomain, x)
	}

	s := x1Ceil - xCeil

	switch s {
	case 0:
		return 0, x - xCeil, nil
	case 1:
		return 1, xCeil, nil
	default:
		return 0, 0, fmt.Errorf("%w: got s=%d at state %d, want 0 or 1", ans.ErrUnknownSymbol, s, x)
	}
}

// C encodes bit s at state x.
// s=0: x' = ceil((x+1)/(1-p)) - 1; s=1: x' = floor(x/p).
func (this *UABS) C(s ans.Symbol, x ans.State) (ans.State, error) {
	switch s {
	case 0:
		return rational.CeilDiv(x+1, this.comp) - 1, nil
	case 1:
		return rational.FloorDiv(x, this.p), nil
	default:
		return 0, fmt.Errorf("%w: %d (uABS alphabet is {0,1})", ans.ErrUnknownSymbol, s)
	}
}

// Freq returns the frequency uABS synthesizes for s so that it can
// share the generic streaming driver with rANS/tANS: freq(1) = pNum,
// freq(0) = pDen - pNum, against M() = pDen. freq(1)/M therefore
// equals p exactly, so the driver's renormalization thresholds land
// exactly where the closed-form C/D above expect them.
func (this *UABS) Freq(s ans.Symbol) (uint64, error) {
	switch s {
	case 0:
		return this.comp.Num, nil
	case 1:
		return this.p.Num, nil
	default:
		return 0, fmt.Errorf("%w: %d (uABS alphabet is {0,1})", ans.ErrUnknownSymbol, s)
	}
}

// M returns pDen.
func (this *UABS) M() uint64 {
	return this.p.Den
}
