// Package rational implements the exact integer arithmetic the ANS
// codec needs in two places: uABS's ceil/floor division by a rational
// probability, and the deterministic (value, prob) comparator driving
// the tANS table's priority queue. Neither ever converts to floating
// point; a prototype that did (see DESIGN.md) drifted at large states.
package rational

import (
	"fmt"
	"math/bits"
)

// Ratio is an exact non-negative rational Num/Den, Den > 0.
type Ratio struct {
	Num uint64
	Den uint64
}

// New builds a Ratio, returning an error if den is zero.
func New(num, den uint64) (Ratio, error) {
	if den == 0 {
		return Ratio{}, fmt.Errorf("rational: zero denominator")
	}

	return Ratio{Num: num, Den: den}, nil
}

// CeilMul returns ceil(x * r) computed as (x*r.Num + r.Den - 1) / r.Den,
// without ever forming a floating point value. Panics on uint64
// overflow of the intermediate product, the same way the rest of this
// package treats arithmetic overflow as a programming error rather
// than a recoverable one (the spec's own guidance is to test up to
// 2^40 before trusting a 64-bit state; values that large still leave
// headroom here since x*r.Num is checked explicitly).
func CeilMul(x uint64, r Ratio) uint64 {
	hi, lo := bits.Mul64(x, r.Num)

	if hi != 0 {
		panic(fmt.Errorf("rational: overflow computing ceil(%d * %d/%d)", x, r.Num, r.Den))
	}

	return (lo + r.Den - 1) / r.Den
}

// FloorMul returns floor(x * r) = (x * r.Num) / r.Den.
func FloorMul(x uint64, r Ratio) uint64 {
	hi, lo := bits.Mul64(x, r.Num)

	if hi != 0 {
		panic(fmt.Errorf("rational: overflow computing floor(%d * %d/%d)", x, r.Num, r.Den))
	}

	return lo / r.Den
}

// CeilDiv returns ceil(x / r) = ceil(x*r.Den / r.Num) = (x*r.Den + r.Num - 1) / r.Num.
func CeilDiv(x uint64, r Ratio) uint64 {
	hi, lo := bits.Mul64(x, r.Den)

	if hi != 0 {
		panic(fmt.Errorf("rational: overflow computing ceil(%d / %d/%d)", x, r.Num, r.Den))
	}

	return (lo + r.Num - 1) / r.Num
}

// FloorDiv returns floor(x / r) = (x * r.Den) / r.Num.
func FloorDiv(x uint64, r Ratio) uint64 {
	hi, lo := bits.Mul64(x, r.Den)

	if hi != 0 {
		panic(fmt.Errorf("rational: overflow computing floor(%d / %d/%d)", x, r.Num, r.Den))
	}

	return lo / r.Num
}

// Complement returns 1 - r as an exact Ratio sharing r's denominator.
func Complement(r Ratio) Ratio {
	return Ratio{Num: r.Den - r.Num, Den: r.Den}
}

// Less reports whether a < b using cross-multiplication, never
// converting to float64. This is what makes the tANS table build a
// pure function of its inputs across platforms: float64 comparisons
// can disagree by platform or compiler flag on values this close.
func Less(a, b Ratio) bool {
	lhsHi, lhsLo := bits.Mul64(a.Num, b.Den)
	rhsHi, rhsLo := bits.Mul64(b.Num, a.Den)

	if lhsHi != rhsHi {
		return lhsHi < rhsHi
	}

	return lhsLo < rhsLo
}

// Compare returns -1, 0 or 1 as a is less than, equal to, or greater
// than b, by the same cross-multiplication rule as Less.
func Compare(a, b Ratio) int {
	if Less(a, b) {
		return -1
	}

	if Less(b, a) {
		return 1
	}

	return 0
}
