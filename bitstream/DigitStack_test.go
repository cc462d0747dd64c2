package bitstream

import "testing"

func TestDigitStackLIFO(t *testing.T) {
	s := NewDigitStack()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	for _, want := range []uint64{3, 2, 1} {
		got, err := s.PopBack()

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != want {
			t.Fatalf("PopBack() = %d, want %d", got, want)
		}
	}

	if _, err := s.PopBack(); err == nil {
		t.Fatalf("expected error popping an empty stack")
	}
}

func TestFromDigitsRoundTrip(t *testing.T) {
	digits := []uint64{4, 5, 6}
	s := FromDigits(digits)

	if s.Len() != len(digits) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(digits))
	}

	got := s.Digits()

	for i, d := range digits {
		if got[i] != d {
			t.Fatalf("Digits()[%d] = %d, want %d", i, got[i], d)
		}
	}
}
