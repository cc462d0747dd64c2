// Package coder implements the three ANS coder variants: rANS (closed
// form over a cumulative frequency table), uABS (closed form binary,
// parameterized by one rational probability) and tANS (a precomputed
// transition table). All three satisfy the Variant contract consumed
// by package driver.
package coder

import (
	ans "github.com/anscore/ansgo"
)

// Variant is the coder contract the streaming driver invokes: a pair
// of mutually-inverse step functions C (encode) and D (decode), plus
// the accessors the driver needs to compute renormalization
// thresholds. Implementations are RANS, UABS and TANS.
type Variant interface {
	// C is the encode step: C(s, x) -> x'. Total on the
	// pre-renormalized state domain for s.
	C(s ans.Symbol, x ans.State) (ans.State, error)

	// D is the decode step: D(x) -> (s, x'). Total on I.
	D(x ans.State) (ans.Symbol, ans.State, error)

	// Freq returns freq(s), the frequency of s under this variant's
	// model (for uABS this is p's numerator or its complement).
	Freq(s ans.Symbol) (uint64, error)

	// M returns the total frequency mass M.
	M() uint64
}
