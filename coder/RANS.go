package coder

import (
	"fmt"

	ans "github.com/anscore/ansgo"
	"github.com/anscore/ansgo/model"
)

// RANS is the range ANS coder: a closed-form C/D pair driven by a
// cumulative frequency model. See "Asymmetric Numeral System" by Jarek
// Duda, http://arxiv.org/abs/0902.0271; the decode formula below
// mirrors the one used throughout kanzi-go's entropy.ANSRangeCodec,
// generalized here from a fixed power-of-two scale to an arbitrary
// frequency model.
type RANS struct {
	freqs *model.Frequencies
}

// NewRANS creates a rANS coder over the given frequency model.
func NewRANS(freqs *model.Frequencies) (*RANS, error) {
	if freqs == nil || freqs.Len() == 0 {
		return nil, fmt.Errorf("%w: nil or empty frequency model", ans.ErrInvalidModel)
	}

	return &RANS{freqs: freqs}, nil
}

// C encodes symbol s at state x: x' = M*(x div freq(s)) + base(s) + (x mod freq(s)).
// base(s) is added after the multiply-then-mod, never before — the two
// associate to different (and only one correct) result; see
// TestRANSBaseAddedAfterModReduce.
func (this *RANS) C(s ans.Symbol, x ans.State) (ans.State, error) {
	freq, err := this.freqs.Freq(s)

	if err != nil {
		return 0, err
	}

	base, err := this.freqs.Base(s)

	if err != nil {
		return 0, err
	}

	m := this.freqs.M()
	return m*(x/freq) + base + (x % freq), nil
}

// D decodes the symbol at state x: s = symbolOf(x mod M),
// x' = freq(s)*(x div M) + (x mod M) - base(s).
func (this *RANS) D(x ans.State) (ans.Symbol, ans.State, error) {
	m := this.freqs.M()

	if x < m {
		return 0, 0, fmt.Errorf("%w: state %d below M=%d", ans.ErrStateOutOfDomain, x, m)
	}

	r := x % m
	s, err := this.freqs.SymbolOf(r)

	if err != nil {
		return 0, 0, err
	}

	freq, err := this.freqs.Freq(s)

	if err != nil {
		return 0, 0, err
	}

	base, err := this.freqs.Base(s)

	if err != nil {
		return 0, 0, err
	}

	return s, freq*(x/m) + r - base, nil
}

// Freq returns freq(s).
func (this *RANS) Freq(s ans.Symbol) (uint64, error) {
	return this.freqs.Freq(s)
}

// M returns the total frequency mass.
func (this *RANS) M() uint64 {
	return this.freqs.M()
}
