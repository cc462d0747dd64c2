package payload

import (
	"errors"
	"reflect"
	"testing"

	ans "github.com/anscore/ansgo"
	"github.com/anscore/ansgo/coder"
)

func samplePayload(b uint64) *Payload {
	return &Payload{
		Variant:    coder.RANSKind,
		B:          b,
		L:          3,
		N:          9,
		FinalState: ans.State(123456789),
		Digits:     []uint64{0, 1, 1, 0, 1, (b - 1), 0},
	}
}

func TestEncodeDecodeRoundTripPowerOfTwoB(t *testing.T) {
	p := samplePayload(2)
	data, err := Encode(p)

	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(data)

	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !reflect.DeepEqual(got, p) {
		t.Fatalf("Decode(Encode(p)) = %+v, want %+v", got, p)
	}
}

func TestEncodeDecodeRoundTripNonPowerOfTwoB(t *testing.T) {
	p := samplePayload(3)
	data, err := Encode(p)

	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(data)

	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !reflect.DeepEqual(got, p) {
		t.Fatalf("Decode(Encode(p)) = %+v, want %+v", got, p)
	}
}

func TestEncodeDecodeEmptyDigits(t *testing.T) {
	p := &Payload{Variant: coder.TANSKind, B: 4, L: 1, N: 0, FinalState: 7, Digits: nil}
	data, err := Encode(p)

	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(data)

	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(got.Digits) != 0 {
		t.Fatalf("expected no digits, got %v", got.Digits)
	}
}

func TestMagicBytesAreANS1(t *testing.T) {
	data, _ := Encode(samplePayload(2))

	if string(data[:4]) != "ANS1" {
		t.Fatalf("magic = %q, want \"ANS1\"", data[:4])
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	data, _ := Encode(samplePayload(2))
	data[0] = 'X'

	if _, err := Decode(data); err == nil {
		t.Fatalf("expected error for bad magic")
	}
}

func TestDecodeRejectsTruncatedHeader(t *testing.T) {
	if _, err := Decode([]byte("ANS1")); err == nil {
		t.Fatalf("expected error for truncated header")
	}
}

func TestEncodeRejectsBadB(t *testing.T) {
	p := samplePayload(2)
	p.B = 1

	if _, err := Encode(p); err == nil {
		t.Fatalf("expected error for b < 2")
	}

	p.B = 256

	if _, err := Encode(p); err == nil {
		t.Fatalf("expected error for b > 255")
	}
}

func TestDecodeErrorUnwrapsToTaxonomySentinel(t *testing.T) {
	if _, err := Decode([]byte("ANS1")); !errors.Is(err, ans.ErrTruncated) {
		t.Fatalf("expected errors.Is match against ans.ErrTruncated, got %v", err)
	}

	data, _ := Encode(samplePayload(2))
	data[0] = 'X'

	if _, err := Decode(data); !errors.Is(err, ans.ErrInvalidParameter) {
		t.Fatalf("expected errors.Is match against ans.ErrInvalidParameter, got %v", err)
	}
}

func TestEncodeRejectsOversizedL(t *testing.T) {
	p := samplePayload(2)
	p.L = 1 << 20

	if _, err := Encode(p); err == nil {
		t.Fatalf("expected error for l exceeding 16 bits")
	}
}
