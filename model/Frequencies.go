// Package model implements the frequency model component of the ANS
// codec: an immutable mapping from symbol to positive integer count,
// with precomputed total mass and cumulative starts.
package model

import (
	"fmt"
	"sort"

	ans "github.com/anscore/ansgo"
)

// Frequencies is an immutable frequency model built once at
// construction time. freq(s), base(s), M and symbolOf are all O(1) or
// O(log|alphabet|) after construction; there are no updates.
type Frequencies struct {
	symbols []ans.Symbol // sorted alphabet
	freqs   []uint64     // freqs[i] is the frequency of symbols[i]
	base    []uint64     // base[i] = sum(freqs[:i]), len == len(symbols)+1
	total   uint64        // M
}

// New builds a Frequencies from a symbol->frequency map. Returns
// ans.ErrInvalidModel if the map is empty or any frequency is <= 0.
func New(freqs map[ans.Symbol]uint64) (*Frequencies, error) {
	if len(freqs) == 0 {
		return nil, fmt.Errorf("%w: empty alphabet", ans.ErrInvalidModel)
	}

	symbols := make([]ans.Symbol, 0, len(freqs))

	for s, f := range freqs {
		if f == 0 {
			return nil, fmt.Errorf("%w: symbol %d has non-positive frequency", ans.ErrInvalidModel, s)
		}

		symbols = append(symbols, s)
	}

	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	this := &Frequencies{
		symbols: symbols,
		freqs:   make([]uint64, len(symbols)),
		base:    make([]uint64, len(symbols)+1),
	}

	sum := uint64(0)

	for i, s := range symbols {
		f := freqs[s]
		this.freqs[i] = f
		this.base[i] = sum
		sum += f
	}

	this.base[len(symbols)] = sum
	this.total = sum
	return this, nil
}

// FromCounts builds a Frequencies from a dense count slice indexed by
// symbol (counts[s] is the frequency of s), skipping symbols with a
// zero count. Convenience wrapper around New
// for callers (e.g. a histogram) that naturally produce dense counts
// rather than a map.
func FromCounts(counts []uint64) (*Frequencies, error) {
	freqs := make(map[ans.Symbol]uint64, len(counts))

	for s, c := range counts {
		if c > 0 {
			freqs[ans.Symbol(s)] = c
		}
	}

	return New(freqs)
}

// FromHistogram builds an order-0 byte frequency model from a byte
// slice, the way a caller estimating frequencies from a corpus would.
// Frequency estimation is a caller concern, not a coder or driver one,
// so this lives here as a constructor convenience rather than inside
// either of those packages.
func FromHistogram(block []byte) (*Frequencies, error) {
	counts := make([]uint64, 256)

	for _, b := range block {
		counts[b]++
	}

	return FromCounts(counts)
}

// M returns the total frequency mass.
func (this *Frequencies) M() uint64 {
	return this.total
}

// Len returns the alphabet size.
func (this *Frequencies) Len() int {
	return len(this.symbols)
}

// Symbols returns the alphabet in increasing order. The returned slice
// must not be modified by the caller.
func (this *Frequencies) Symbols() []ans.Symbol {
	return this.symbols
}

// indexOf returns the position of s in the sorted alphabet, or -1.
func (this *Frequencies) indexOf(s ans.Symbol) int {
	i := sort.Search(len(this.symbols), func(i int) bool { return this.symbols[i] >= s })

	if i < len(this.symbols) && this.symbols[i] == s {
		return i
	}

	return -1
}

// Freq returns freq(s). Returns ans.ErrUnknownSymbol if s is not in
// the alphabet.
func (this *Frequencies) Freq(s ans.Symbol) (uint64, error) {
	i := this.indexOf(s)

	if i < 0 {
		return 0, fmt.Errorf("%w: %d", ans.ErrUnknownSymbol, s)
	}

	return this.freqs[i], nil
}

// Base returns base(s), the cumulative sum of frequencies strictly
// below s. Returns ans.ErrUnknownSymbol if s is not in the alphabet.
func (this *Frequencies) Base(s ans.Symbol) (uint64, error) {
	i := this.indexOf(s)

	if i < 0 {
		return 0, fmt.Errorf("%w: %d", ans.ErrUnknownSymbol, s)
	}

	return this.base[i], nil
}

// SymbolOf returns the unique s such that base(s) <= r < base(s)+freq(s),
// for r in [0, M). Worst case O(log|alphabet|) via binary search over
// the cumulative array.
func (this *Frequencies) SymbolOf(r uint64) (ans.Symbol, error) {
	if r >= this.total {
		return 0, fmt.Errorf("%w: cumulative value %d outside [0,%d)", ans.ErrStateOutOfDomain, r, this.total)
	}

	// base is strictly increasing; find the rightmost index i such that
	// base[i] <= r, i.e. the first index where base[i+1] > r.
	i := sort.Search(len(this.symbols), func(i int) bool { return this.base[i+1] > r })
	return this.symbols[i], nil
}

// AtIndex returns the i-th symbol of the sorted alphabet along with
// its frequency and base, for callers (e.g. the tANS table builder)
// that want to iterate the whole model once.
func (this *Frequencies) AtIndex(i int) (symbol ans.Symbol, freq uint64, base uint64) {
	return this.symbols[i], this.freqs[i], this.base[i]
}
