// Package payload implements the canonical "ANS1" wire format: a
// fixed-width header (magic, variant, b, l, N, final_state, bit_len)
// followed by the packed digit trailer. The frequency model is
// out-of-band by design — callers that need one, e.g. cmd/ansutil,
// append their own length-prefixed symbol/freq list after a Payload's
// bytes.
//
// Header/magic/fixed-width-field conventions are grounded on
// io/CompressedStream.go's bitstream header; its block-chunking and
// transform-stage framing are out of scope here — this format never
// carries a transform stage or chunks a payload into blocks.
package payload

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	ans "github.com/anscore/ansgo"
	"github.com/anscore/ansgo/bitstream"
	"github.com/anscore/ansgo/coder"
)

// magic is the 4-byte ASCII signature "ANS1".
var magic = [4]byte{'A', 'N', 'S', '1'}

// packingMode tags how the digit trailer is packed. bitPacked is used
// when b is a power of two (MSB-first, log2(b) bits per digit, via
// bitstream.Writer/Reader); onePerByte is the fallback for any other
// b in [2,255], one full byte per digit. Bit-packing a non-power-of-two
// base would need a variable-width divide per digit instead of a
// shift, so the fallback trades a few wasted bits per digit for a
// uniform byte-aligned reader/writer; see DESIGN.md.
type packingMode byte

const (
	bitPacked  packingMode = 0
	onePerByte packingMode = 1
)

// Error is a malformed-payload error: a message plus a Kind matching
// the ans error taxonomy, mirroring kanzi-go's io.IOError (message +
// numeric code) rather than a deeper custom hierarchy.
type Error struct {
	Kind ans.ErrorKind
	Msg  string
}

func (this *Error) Error() string {
	return fmt.Sprintf("payload: %s: %s", this.Kind, this.Msg)
}

func (this *Error) Unwrap() error {
	return this.Kind.Sentinel()
}

// Payload is the decoded form of an ANS1 blob: everything the
// streaming driver needs to replay a decode pass, minus the frequency
// model, which stays out-of-band for callers to carry however they
// like.
type Payload struct {
	Variant    coder.Kind
	B          uint64
	L          uint64
	N          uint64
	FinalState ans.State
	Digits     []uint64
}

// Encode serializes p into the canonical ANS1 byte layout.
func Encode(p *Payload) ([]byte, error) {
	if p.B < 2 || p.B > 255 {
		return nil, fmt.Errorf("%w: b=%d must be in [2,255]", ans.ErrInvalidParameter, p.B)
	}

	if p.L > 0xFFFF {
		return nil, fmt.Errorf("%w: l=%d exceeds 16 bits", ans.ErrInvalidParameter, p.L)
	}

	out := make([]byte, 0, 32+len(p.Digits))
	out = append(out, magic[:]...)
	out = append(out, byte(p.Variant))
	out = append(out, byte(p.B))

	var tmp [8]byte
	binary.BigEndian.PutUint16(tmp[:2], uint16(p.L))
	out = append(out, tmp[:2]...)

	binary.BigEndian.PutUint64(tmp[:], p.N)
	out = append(out, tmp[:]...)

	binary.BigEndian.PutUint64(tmp[:], uint64(p.FinalState))
	out = append(out, tmp[:]...)

	binary.BigEndian.PutUint64(tmp[:], uint64(len(p.Digits)))
	out = append(out, tmp[:]...)

	mode, digitBytes, err := packDigits(p.B, p.Digits)

	if err != nil {
		return nil, err
	}

	out = append(out, digitBytes...)
	out = append(out, byte(mode))

	return out, nil
}

// Decode parses an ANS1 byte layout into a Payload.
func Decode(data []byte) (*Payload, error) {
	if len(data) < 4+1+1+2+8+8+8+1 {
		return nil, &Error{Kind: ans.KindTruncated, Msg: "shorter than fixed header"}
	}

	if data[0] != magic[0] || data[1] != magic[1] || data[2] != magic[2] || data[3] != magic[3] {
		return nil, &Error{Kind: ans.KindInvalidParameter, Msg: "bad magic, expected \"ANS1\""}
	}

	off := 4
	variant := coder.Kind(data[off])
	off++

	if variant > coder.TANSKind {
		return nil, &Error{Kind: ans.KindInvalidParameter, Msg: fmt.Sprintf("unknown variant byte %d", byte(variant))}
	}

	b := uint64(data[off])
	off++

	if b < 2 {
		return nil, &Error{Kind: ans.KindInvalidParameter, Msg: fmt.Sprintf("b=%d must be >= 2", b)}
	}

	l := uint64(binary.BigEndian.Uint16(data[off : off+2]))
	off += 2

	n := binary.BigEndian.Uint64(data[off : off+8])
	off += 8

	finalState := ans.State(binary.BigEndian.Uint64(data[off : off+8]))
	off += 8

	digitCount := binary.BigEndian.Uint64(data[off : off+8])
	off += 8

	if len(data) <= off {
		return nil, &Error{Kind: ans.KindTruncated, Msg: "missing packing-mode byte"}
	}

	mode := packingMode(data[len(data)-1])
	digitBytes := data[off : len(data)-1]

	digits, err := unpackDigits(mode, b, digitCount, digitBytes)

	if err != nil {
		return nil, err
	}

	return &Payload{
		Variant:    variant,
		B:          b,
		L:          l,
		N:          n,
		FinalState: finalState,
		Digits:     digits,
	}, nil
}

// packDigits packs digits (each in [0,b)) according to whether b is a
// power of two.
func packDigits(b uint64, digits []uint64) (packingMode, []byte, error) {
	if isPowerOfTwo(b) {
		bitsPerDigit := uint(bits.TrailingZeros64(b))
		w := bitstream.NewWriter()

		for _, d := range digits {
			w.WriteBits(d, bitsPerDigit)
		}

		return bitPacked, w.Bytes(), nil
	}

	out := make([]byte, len(digits))

	for i, d := range digits {
		if d > 255 {
			return 0, nil, fmt.Errorf("%w: digit %d out of byte range", ans.ErrInvalidParameter, d)
		}

		out[i] = byte(d)
	}

	return onePerByte, out, nil
}

// unpackDigits inverts packDigits, reading exactly digitCount digits.
func unpackDigits(mode packingMode, b, digitCount uint64, data []byte) ([]uint64, error) {
	digits := make([]uint64, digitCount)

	switch mode {
	case bitPacked:
		if !isPowerOfTwo(b) {
			return nil, &Error{Kind: ans.KindInvalidParameter, Msg: "bit-packed mode requires a power-of-two b"}
		}

		bitsPerDigit := uint(bits.TrailingZeros64(b))
		r := bitstream.NewReader(data)

		for i := uint64(0); i < digitCount; i++ {
			d, err := r.ReadBits(bitsPerDigit)

			if err != nil {
				return nil, &Error{Kind: ans.KindTruncated, Msg: fmt.Sprintf("digit %d/%d: %v", i, digitCount, err)}
			}

			digits[i] = d
		}

	case onePerByte:
		if uint64(len(data)) < digitCount {
			return nil, &Error{Kind: ans.KindTruncated, Msg: fmt.Sprintf("need %d digit bytes, have %d", digitCount, len(data))}
		}

		for i := uint64(0); i < digitCount; i++ {
			digits[i] = uint64(data[i])
		}

	default:
		return nil, &Error{Kind: ans.KindInvalidParameter, Msg: fmt.Sprintf("unknown packing mode %d", mode)}
	}

	return digits, nil
}

func isPowerOfTwo(b uint64) bool {
	return b != 0 && b&(b-1) == 0
}
