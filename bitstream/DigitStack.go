package bitstream

import (
	"fmt"

	ans "github.com/anscore/ansgo"
)

// DigitStack is the side channel the streaming driver shifts base-b
// digits into during encoding and back out of during decoding. Encoding appends digits in the order they're produced;
// decoding consumes them in the reverse order, since the last digit
// shifted in during encoding is the first one the decoder needs to
// restore the state it was shifted out of. PopBack removes the most
// recently pushed digit, which is exactly the LIFO order decoding
// wants when the driver walks the digit trailer from the end.
type DigitStack struct {
	digits []uint64
}

// NewDigitStack creates an empty digit stack.
func NewDigitStack() *DigitStack {
	return &DigitStack{}
}

// Push appends digit to the end of the stack.
func (this *DigitStack) Push(digit uint64) {
	this.digits = append(this.digits, digit)
}

// PopBack removes and returns the most recently pushed digit.
func (this *DigitStack) PopBack() (uint64, error) {
	n := len(this.digits)

	if n == 0 {
		return 0, fmt.Errorf("%w: pop from empty digit stack", ans.ErrTruncated)
	}

	d := this.digits[n-1]
	this.digits = this.digits[:n-1]
	return d, nil
}

// Len returns the number of digits currently held.
func (this *DigitStack) Len() int {
	return len(this.digits)
}

// Digits returns the pushed digits in push order. The returned slice
// must not be retained past the next Push or PopBack call.
func (this *DigitStack) Digits() []uint64 {
	return this.digits
}

// FromDigits rebuilds a DigitStack from digits already stored in push
// order, e.g. after payload.Decode unpacks the digit trailer.
func FromDigits(digits []uint64) *DigitStack {
	return &DigitStack{digits: append([]uint64(nil), digits...)}
}
