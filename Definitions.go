// Package ans defines the shared types and error taxonomy for an
// asymmetric numeral system entropy codec: binary uABS, range rANS and
// table-driven tANS, plus the renormalizing stream driver that couples
// any of the three to a side digit buffer.
//
// The implementations live in sub-packages: model (the frequency
// table), rational (exact integer arithmetic for uABS and tANS),
// coder (the three coder variants), bitstream (the side digit buffer
// and its packed wire form), driver (the renormalization loop) and
// payload (the canonical on-disk format).
package ans

// Symbol is a non-negative integer identifier drawn from a frequency
// model's alphabet.
type Symbol = uint32

// State is the ANS coder state. Conceptually unbounded; the driver
// keeps it inside a bounded interval between symbols.
type State = uint64
