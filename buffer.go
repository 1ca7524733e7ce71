package mpg

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecisionOverflow is returned when a value or an intermediate result
	// does not fit into the whole positions of a buffer.
	ErrPrecisionOverflow = errors.New("precision overflow")
	// ErrSizeMismatch is returned when the operands of an arithmetic
	// operation have different dimensions.
	ErrSizeMismatch = errors.New("size mismatch")
)

// Buffer represents a non-negative decimal number as a fixed number of
// decimal digits with an implicit decimal point.
// The first [Size.Whole] digits hold the whole part and the remaining
// [Size.Frac] digits hold the fractional part.
// There is no sign digit.
//
// Every operation returns a newly allocated buffer, operands are never
// modified, which makes Buffer safe for concurrent use by multiple goroutines.
// The zero value has no positions and is not a valid operand.
type Buffer struct {
	size   Size
	digits []int8
}

func newBufferUnsafe(s Size) Buffer {
	return Buffer{size: s, digits: make([]int8, s.Len())}
}

// NewBuffer returns a buffer with the given dimensions holding the given
// digits, most significant first.
//
//	NewBuffer(Size{Whole: 2, Frac: 2}, 0, 0, 5, 0) // 0.05
//
// NewBuffer returns an error if:
//   - the size has no positions or negative dimensions;
//   - the number of digits differs from [Size.Len];
//   - any digit is outside the range [0, 9].
func NewBuffer(s Size, digits ...int8) (Buffer, error) {
	if !s.valid() {
		return Buffer{}, fmt.Errorf("creating buffer %v: %w: invalid size", s, ErrInvalidInput)
	}
	if len(digits) != s.Len() {
		return Buffer{}, fmt.Errorf("creating buffer %v: %w: got %v digit(s), want %v", s, ErrInvalidInput, len(digits), s.Len())
	}
	b := newBufferUnsafe(s)
	for i, v := range digits {
		if v < 0 || v > 9 {
			return Buffer{}, fmt.Errorf("creating buffer %v: %w: digit %v at position %v", s, ErrInvalidInput, v, i)
		}
		b.digits[i] = v
	}
	return b, nil
}

// MustNewBuffer is like [NewBuffer] but panics if the buffer cannot be created.
func MustNewBuffer(s Size, digits ...int8) Buffer {
	b, err := NewBuffer(s, digits...)
	if err != nil {
		panic(fmt.Sprintf("NewBuffer(%v, %v) failed: %v", s, digits, err))
	}
	return b
}

// Encode places the digits into a buffer of the given size.
// Whole digits are right-aligned in the whole positions and fractional
// digits are left-aligned in the fractional positions.
// Unused positions are zero.
// Fractional digits that do not fit are dropped without rounding,
// so encoding 1.2345 with 2 fractional positions gives 1.23.
//
// Encode returns an error if the size is not valid or if the whole part has
// more digits than [Size.Whole].
// Use [NewSize] to obtain a size that fits all operands.
func Encode(d Digits, s Size) (Buffer, error) {
	if !s.valid() {
		return Buffer{}, fmt.Errorf("encoding %v: %w: invalid size %v", d, ErrInvalidInput, s)
	}
	if len(d.whole) > s.Whole {
		return Buffer{}, fmt.Errorf("encoding %v into %v: %w: the whole part has %v digit(s)", d, s, ErrPrecisionOverflow, len(d.whole))
	}
	b := newBufferUnsafe(s)
	copy(b.digits[s.Whole-len(d.whole):s.Whole], d.whole)
	copy(b.digits[s.Whole:], d.frac)
	return b, nil
}

// MustEncode is like [Encode] but panics if the digits cannot be encoded.
func MustEncode(d Digits, s Size) Buffer {
	b, err := Encode(d, s)
	if err != nil {
		panic(fmt.Sprintf("Encode(%v, %v) failed: %v", d, s, err))
	}
	return b
}

// Size returns the dimensions of the buffer.
func (b Buffer) Size() Size {
	return b.size
}

// Digits returns a copy of all digit positions, most significant first.
func (b Buffer) Digits() []int8 {
	return append([]int8(nil), b.digits...)
}

// IsZero returns:
//
//	true  if b == 0
//	false otherwise
func (b Buffer) IsZero() bool {
	for _, v := range b.digits {
		if v != 0 {
			return false
		}
	}
	return true
}

// isMax returns true if every position holds the digit 9.
func (b Buffer) isMax() bool {
	for _, v := range b.digits {
		if v != 9 {
			return false
		}
	}
	return true
}

// Cmp compares buffers and returns:
//
//	-1 if b < c
//	 0 if b == c
//	+1 if b > c
//
// Cmp returns an error if the buffers have different sizes.
func (b Buffer) Cmp(c Buffer) (int, error) {
	if b.size != c.size {
		return 0, fmt.Errorf("comparing %v and %v: %w: %v and %v", b, c, ErrSizeMismatch, b.size, c.size)
	}
	return cmpDigits(b.digits, c.digits), nil
}

// Equal returns true if the buffers have the same size and the same digits.
func (b Buffer) Equal(c Buffer) bool {
	return b.size == c.size && cmpDigits(b.digits, c.digits) == 0
}

// cmpDigits compares two digit slices of the same length
// from the most significant position.
func cmpDigits(a, b []int8) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// String implements the [fmt.Stringer] interface and returns the canonical
// representation of the buffer: leading zeros of the whole part and
// trailing zeros of the fractional part are removed, and the decimal point
// is omitted when nothing follows it.
//
//	Size  Digits     String
//	2.2   0 0 0 0    0
//	2.2   0 0 5 0    0.05
//	3.2   0 1 2 5 0  12.5
func (b Buffer) String() string {
	text := make([]byte, 0, len(b.digits)+2)

	// Whole part
	w := 0
	for w < b.size.Whole && b.digits[w] == 0 {
		w++
	}
	if w == b.size.Whole {
		text = append(text, '0')
	}
	for _, v := range b.digits[w:b.size.Whole] {
		text = append(text, byte(v)+'0')
	}

	// Fractional part
	f := len(b.digits)
	for f > b.size.Whole && b.digits[f-1] == 0 {
		f--
	}
	if f > b.size.Whole {
		text = append(text, '.')
		for _, v := range b.digits[b.size.Whole:f] {
			text = append(text, byte(v)+'0')
		}
	}

	return string(text)
}

// Format implements the [fmt.Formatter] interface.
// The following format verbs are available:
//
//	| Verb | Example | Description     |
//	| ---- | ------- | --------------- |
//	| %v   | 12.5    | Canonical value |
//	| %s   | 12.5    | Canonical value |
//	| %q   | "12.5"  | Quoted value    |
//
// The width flag pads the value with spaces on the left, or on the right
// if the '-' flag is present.
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (b Buffer) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'v', 's':
		text = b.String()
	case 'q':
		text = "\"" + b.String() + "\""
	default:
		text = fmt.Sprintf("%%!%c(mpg.Buffer=%s)", verb, b.String())
	}

	pad := 0
	if width, ok := state.Width(); ok && width > len(text) {
		pad = width - len(text)
	}
	if !state.Flag('-') {
		for range pad {
			_, _ = state.Write([]byte{' '})
		}
	}
	_, _ = state.Write([]byte(text))
	if state.Flag('-') {
		for range pad {
			_, _ = state.Write([]byte{' '})
		}
	}
}
