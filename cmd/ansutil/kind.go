package main

import (
	"fmt"

	"github.com/anscore/ansgo/coder"
)

// parseKind maps the -variant flag's value to a coder.Kind. uABS is
// deliberately excluded here: it codes a single bit per symbol off a
// fixed p, which isn't a natural fit for an arbitrary byte alphabet —
// see the dedicated "bits" subcommand instead.
func parseKind(s string) (coder.Kind, error) {
	switch s {
	case "rans":
		return coder.RANSKind, nil
	case "tans":
		return coder.TANSKind, nil
	default:
		return 0, fmt.Errorf("unknown variant %q (want rans or tans)", s)
	}
}
