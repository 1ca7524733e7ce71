package mpg

import (
	"fmt"
	"strconv"
)

// Size describes the dimensions of a [Buffer]: the number of whole digit
// positions (W) followed by the number of fractional digit positions (F).
// The implicit decimal point sits between position W-1 and position W.
type Size struct {
	Whole int // W
	Frac  int // F
}

// NewSize returns a size large enough to encode every operand without
// truncating its whole part:
//
//	W = margin + max(prec, len(op.Whole()) for every op)
//	F = prec
//
// The margin reserves extra whole positions for carries produced by
// intermediate multiplications and divisions. Buffers never grow, so the
// caller has to compute a new size for every distinct set of operands.
//
// NewSize returns an error if margin or prec is negative, or if the
// resulting buffer would have no positions at all.
func NewSize(margin, prec int, ops ...Digits) (Size, error) {
	if margin < 0 {
		return Size{}, fmt.Errorf("computing size: %w: negative margin %v", ErrInvalidInput, margin)
	}
	if prec < 0 {
		return Size{}, fmt.Errorf("computing size: %w: negative precision %v", ErrInvalidInput, prec)
	}
	w := prec
	for _, op := range ops {
		w = max(w, len(op.whole))
	}
	s := Size{Whole: margin + w, Frac: prec}
	if s.Len() == 0 {
		return Size{}, fmt.Errorf("computing size: %w: empty buffer", ErrInvalidInput)
	}
	return s, nil
}

// Len returns the total number of digit positions, W + F.
func (s Size) Len() int {
	return s.Whole + s.Frac
}

func (s Size) valid() bool {
	return s.Whole >= 0 && s.Frac >= 0 && s.Len() > 0
}

// String implements the [fmt.Stringer] interface and returns
// the dimensions in the "W.F" form, for example "9.3".
func (s Size) String() string {
	return strconv.Itoa(s.Whole) + "." + strconv.Itoa(s.Frac)
}
