// Package driver implements the renormalizing streaming loop that
// couples any coder.Variant to a bitstream.DigitStack, keeping the
// coder's state inside I = [l*M, b*l*M) on every symbol boundary. The
// loop itself never looks inside the coder beyond its C/D/Freq/M
// contract (coder.Variant), mirroring how kanzi-go's
// ANSRangeEncoder.encodeSymbol/decodeChunk keep renormalization
// separate from the symbol-specific math.
package driver

import (
	"fmt"

	ans "github.com/anscore/ansgo"
	"github.com/anscore/ansgo/bitstream"
	"github.com/anscore/ansgo/coder"
)

// Encode runs symbols through variant, shifting digits out of state
// until it lies in [l*freq(s), b*l*freq(s)) before every C step, so
// that C lands it back in I = [l*M, b*l*M). Initial state is l*M. Returns
// the side digit stack (digits appended in the order they were shifted
// out) and the final state, both of which payload.Encode carries
// verbatim in the canonical wire format.
func Encode(symbols []ans.Symbol, variant coder.Variant, b, l uint64) (*bitstream.DigitStack, ans.State, error) {
	if b < 2 {
		return nil, 0, fmt.Errorf("%w: b=%d must be >= 2", ans.ErrInvalidParameter, b)
	}

	if l < 1 {
		return nil, 0, fmt.Errorf("%w: l=%d must be >= 1", ans.ErrInvalidParameter, l)
	}

	m := variant.M()
	state := ans.State(l) * ans.State(m)
	digits := bitstream.NewDigitStack()

	for _, s := range symbols {
		freq, err := variant.Freq(s)

		if err != nil {
			return nil, 0, err
		}

		ceiling := b * l * freq

		for uint64(state) >= ceiling {
			digits.Push(uint64(state) % b)
			state = ans.State(uint64(state) / b)
		}

		state, err = variant.C(s, state)

		if err != nil {
			return nil, 0, err
		}
	}

	return digits, state, nil
}

// Decode runs exactly n D steps starting from finalState, popping
// refill digits from the tail of digits as state dips below l*M.
// Returns the produced symbols in the reverse of their original encode
// order, since D walks the state transitions back to front; the caller
// must reverse the result to recover the input sequence. Fails with
// ans.ErrTruncated if digits runs out before n symbols have been
// produced.
func Decode(digits *bitstream.DigitStack, finalState ans.State, variant coder.Variant, b, l, n uint64) ([]ans.Symbol, error) {
	if b < 2 {
		return nil, fmt.Errorf("%w: b=%d must be >= 2", ans.ErrInvalidParameter, b)
	}

	if l < 1 {
		return nil, fmt.Errorf("%w: l=%d must be >= 1", ans.ErrInvalidParameter, l)
	}

	m := variant.M()
	lowI := l * m
	state := finalState
	out := make([]ans.Symbol, 0, n)

	for i := uint64(0); i < n; i++ {
		s, next, err := variant.D(state)

		if err != nil {
			return nil, err
		}

		state = next
		out = append(out, s)

		for uint64(state) < lowI {
			d, err := digits.PopBack()

			if err != nil {
				return nil, fmt.Errorf("%w: ran out of digits after %d/%d symbols", ans.ErrTruncated, i+1, n)
			}

			state = ans.State(uint64(state)*b + d)
		}
	}

	return out, nil
}
