package coder

import (
	"container/heap"
	"fmt"

	ans "github.com/anscore/ansgo"
	"github.com/anscore/ansgo/model"
	"github.com/anscore/ansgo/rational"
)

// tansSymbolState identifies one (symbol, state) pair inside a tANS
// enc table; used as the map key for TANS.C.
type tansSymbolState struct {
	symbol ans.Symbol
	state  uint64
}

// decEntry is what TANS.D looks up for a destination state y.
type decEntry struct {
	symbol ans.Symbol
	state  uint64
}

// tansTable holds the two direct-lookup structures (component D):
// enc maps (symbol, state) to a destination state y in I, dec maps y
// back to (symbol, state). Immutable after construction; enc and dec
// are built as mutual inverses by construction, never patched
// afterwards.
type tansTable struct {
	enc   map[tansSymbolState]uint64
	dec   []decEntry // indexed by y - lM
	b, l  uint64
	m     uint64
	freqs *model.Frequencies
}

// heapItem is one live entry in the priority queue driving table
// construction: the next unused source state for a symbol, and how
// many times it has already been popped (used to recompute value/prob
// as exact rationals with no incremental float drift).
type heapItem struct {
	symbol ans.Symbol
	freq   uint64
	m      uint64
	pops   uint64 // number of times this symbol has been popped so far
}

// value returns 1/(2*prob) + pops/prob = (2*pops+1)*M / (2*freq), the
// target position on the real line Duda's precise initialization
// assigns this symbol's next pop, computed without floating point.
func (h heapItem) value() rational.Ratio {
	return rational.Ratio{Num: (2*h.pops + 1) * h.m, Den: 2 * h.freq}
}

// prob returns freq/M.
func (h heapItem) prob() rational.Ratio {
	return rational.Ratio{Num: h.freq, Den: h.m}
}

// tansHeap implements container/heap.Interface over heapItem, ordered
// by (value, prob) ascending — ties broken toward the less frequent
// symbol. Both keys are compared by rational.Compare
// (cross-multiplication), never float64, so two builds from identical
// (F, b, l) always produce an identical table.
type tansHeap []heapItem

func (h tansHeap) Len() int { return len(h) }

func (h tansHeap) Less(i, j int) bool {
	vi, vj := h[i].value(), h[j].value()
	c := rational.Compare(vi, vj)

	if c != 0 {
		return c < 0
	}

	return rational.Less(h[i].prob(), h[j].prob())
}

func (h tansHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *tansHeap) Push(x any) { *h = append(*h, x.(heapItem)) }

func (h *tansHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// buildTANSTable runs Duda's "precise initialization": a min-heap
// seeded with one entry per symbol, popped once per destination state
// y in [l*M, b*l*M) in increasing order. The legacy "range-fill" form
// (each pop claims a whole range of source states) is not implemented
// here — it produces a many-to-one encode map and breaks the
// bijection every C/D pair depends on.
func buildTANSTable(freqs *model.Frequencies, b, l uint64) *tansTable {
	m := freqs.M()
	lowI := l * m
	highI := b * l * m

	h := make(tansHeap, 0, freqs.Len())

	for i := 0; i < freqs.Len(); i++ {
		s, freq, _ := freqs.AtIndex(i)
		h = append(h, heapItem{symbol: s, m: m, freq: freq})
	}

	heap.Init(&h)

	tab := &tansTable{
		enc:   make(map[tansSymbolState]uint64, int(highI-lowI)),
		dec:   make([]decEntry, highI-lowI),
		b:     b,
		l:     l,
		m:     m,
		freqs: freqs,
	}

	for y := lowI; y < highI; y++ {
		item := heap.Pop(&h).(heapItem)
		state := l*item.freq + item.pops

		tab.enc[tansSymbolState{symbol: item.symbol, state: state}] = y
		tab.dec[y-lowI] = decEntry{symbol: item.symbol, state: state}

		item.pops++
		heap.Push(&h, item)
	}

	return tab
}

// TANS is the table ANS coder: C and D are both O(1) direct lookups
// into a table built once at construction (construction itself is
// O(b*l*M*log|alphabet|), dominated by the heap operations).
type TANS struct {
	table *tansTable
}

// NewTANS builds a tANS coder for the given frequency model and
// streaming parameters (b, l). b must be >= 2 and l >= 1.
func NewTANS(freqs *model.Frequencies, b, l uint64) (*TANS, error) {
	if freqs == nil || freqs.Len() == 0 {
		return nil, fmt.Errorf("%w: nil or empty frequency model", ans.ErrInvalidModel)
	}

	if b < 2 {
		return nil, fmt.Errorf("%w: b=%d must be >= 2", ans.ErrInvalidParameter, b)
	}

	if l < 1 {
		return nil, fmt.Errorf("%w: l=%d must be >= 1", ans.ErrInvalidParameter, l)
	}

	return &TANS{table: buildTANSTable(freqs, b, l)}, nil
}

// C looks up enc(s, x). Returns ans.ErrTableLookupMiss if (s, x) falls
// outside the domain built at construction.
func (this *TANS) C(s ans.Symbol, x ans.State) (ans.State, error) {
	y, ok := this.table.enc[tansSymbolState{symbol: s, state: x}]

	if !ok {
		return 0, fmt.Errorf("%w: enc(%d, %d)", ans.ErrTableLookupMiss, s, x)
	}

	return y, nil
}

// D looks up dec(x). Returns ans.ErrTableLookupMiss if x falls outside
// I = [l*M, b*l*M).
func (this *TANS) D(x ans.State) (ans.Symbol, ans.State, error) {
	lowI := this.table.l * this.table.m

	if x < lowI || int(x-lowI) >= len(this.table.dec) {
		return 0, 0, fmt.Errorf("%w: dec(%d)", ans.ErrTableLookupMiss, x)
	}

	e := this.table.dec[x-lowI]
	return e.symbol, e.state, nil
}

// Freq returns freq(s) from the underlying frequency model.
func (this *TANS) Freq(s ans.Symbol) (uint64, error) {
	return this.table.freqs.Freq(s)
}

// M returns the total frequency mass.
func (this *TANS) M() uint64 {
	return this.table.m
}

// SymbolCount returns how many destination states in I decode to s,
// which by construction equals (b-1)*l*freq(s) for every symbol: each
// symbol is popped from the heap exactly that many times while
// building the table.
func (this *TANS) SymbolCount(s ans.Symbol) int {
	n := 0

	for _, e := range this.table.dec {
		if e.symbol == s {
			n++
		}
	}

	return n
}
