package coder

import (
	"fmt"

	ans "github.com/anscore/ansgo"
	"github.com/anscore/ansgo/model"
)

// Kind tags which of the three coder variants a Config selects. This
// is the same tagged-dispatch shape as kanzi-go's
// entropy.EntropyCodecFactory, which switches on a small integer
// constant. The switch happens once, in New; the driver then calls C
// and D through the Variant interface, one interface call per step.
type Kind byte

const (
	// RANSKind selects the range ANS coder.
	RANSKind Kind = iota
	// UABSKind selects the binary uABS coder.
	UABSKind
	// TANSKind selects the table-driven tANS coder.
	TANSKind
)

// String returns a human-readable name for k, used by the cmd/ansutil
// CLI's progress output.
func (k Kind) String() string {
	switch k {
	case RANSKind:
		return "rans"
	case UABSKind:
		return "uabs"
	case TANSKind:
		return "tans"
	default:
		return fmt.Sprintf("kind(%d)", byte(k))
	}
}

// Config selects a variant and carries whichever of its parameters
// apply: the streaming parameters (b, l), the frequency model for
// rANS/tANS, and the rational probability for uABS.
type Config struct {
	Variant    Kind
	B, L       uint64
	Model      *model.Frequencies // required for RANSKind, TANSKind
	PNum, PDen uint64             // required for UABSKind
}

// New builds the Variant selected by cfg.Variant. This is the only
// place the Kind is switched on; the returned value is used through the
// Variant interface, so the driver's C/D calls are interface calls
// rather than calls specialized per concrete coder type.
func New(cfg Config) (Variant, error) {
	switch cfg.Variant {
	case RANSKind:
		return NewRANS(cfg.Model)

	case UABSKind:
		return NewUABS(cfg.PNum, cfg.PDen)

	case TANSKind:
		return NewTANS(cfg.Model, cfg.B, cfg.L)

	default:
		return nil, fmt.Errorf("%w: unknown coder kind %d", ans.ErrInvalidParameter, cfg.Variant)
	}
}
