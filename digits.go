package mpg

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidInput is returned when a literal or a parameter cannot be
// interpreted as a non-negative decimal value.
var ErrInvalidInput = errors.New("invalid input")

// Digits represents a non-negative decimal literal split into its whole and
// fractional digits, both ordered from the most significant digit.
// The zero value has no digits at all and encodes to zero.
// Digits is immutable and safe for concurrent use by multiple goroutines.
type Digits struct {
	whole []int8
	frac  []int8
}

// ParseDigits splits a decimal literal into whole and fractional digits.
// The input string must be in one of the following formats:
//
//	123
//	123.456
//	.456
//	123.
//
// Leading zeros in the whole part and trailing zeros in the fraction
// are preserved, so "007.100" has three whole and three fraction digits.
//
// ParseDigits returns an error if the string is empty, contains no digits,
// contains more than one decimal point, or contains any character other
// than a digit or a decimal point (including signs and exponents).
func ParseDigits(s string) (Digits, error) {
	d, err := parseDigits(s)
	if err != nil {
		return Digits{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

func parseDigits(s string) (Digits, error) {
	if len(s) == 0 {
		return Digits{}, fmt.Errorf("%w: empty literal", ErrInvalidInput)
	}
	var whole, frac []int8
	point := false
	for i := range len(s) {
		ch := s[i]
		switch {
		case ch == '.':
			if point {
				return Digits{}, fmt.Errorf("%w: more than one decimal point", ErrInvalidInput)
			}
			point = true
		case ch >= '0' && ch <= '9':
			if point {
				frac = append(frac, int8(ch-'0'))
			} else {
				whole = append(whole, int8(ch-'0'))
			}
		default:
			return Digits{}, fmt.Errorf("%w: unexpected character %q at position %v", ErrInvalidInput, ch, i)
		}
	}
	if len(whole) == 0 && len(frac) == 0 {
		return Digits{}, fmt.Errorf("%w: no digits", ErrInvalidInput)
	}
	return Digits{whole: whole, frac: frac}, nil
}

// MustParseDigits is like [ParseDigits] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding constants.
func MustParseDigits(s string) Digits {
	d, err := ParseDigits(s)
	if err != nil {
		panic(fmt.Sprintf("ParseDigits(%q) failed: %v", s, err))
	}
	return d
}

// NewDigitsFromFloat64 splits the shortest decimal representation of f
// that round-trips to the same float64.
// For example, 3.785411784 splits into [3] and [7 8 5 4 1 1 7 8 4].
//
// NewDigitsFromFloat64 returns an error if f is negative, infinite or NaN.
func NewDigitsFromFloat64(f float64) (Digits, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || math.Signbit(f) {
		return Digits{}, fmt.Errorf("converting %v: %w: not a non-negative finite number", f, ErrInvalidInput)
	}
	return ParseDigits(strconv.FormatFloat(f, 'f', -1, 64))
}

// NewDigitsFromInt64 splits the decimal representation of n.
//
// NewDigitsFromInt64 returns an error if n is negative.
func NewDigitsFromInt64(n int64) (Digits, error) {
	if n < 0 {
		return Digits{}, fmt.Errorf("converting %v: %w: negative number", n, ErrInvalidInput)
	}
	return ParseDigits(strconv.FormatInt(n, 10))
}

// Whole returns a copy of the whole digits.
func (d Digits) Whole() []int8 {
	return append([]int8(nil), d.whole...)
}

// Frac returns a copy of the fractional digits.
func (d Digits) Frac() []int8 {
	return append([]int8(nil), d.frac...)
}

// String implements the [fmt.Stringer] interface and returns the literal
// the digits were parsed from, without any normalization.
// A value without whole digits is rendered with a leading decimal point,
// for example ".25".
func (d Digits) String() string {
	text := make([]byte, 0, len(d.whole)+len(d.frac)+1)
	for _, v := range d.whole {
		text = append(text, byte(v)+'0')
	}
	if len(d.frac) > 0 {
		text = append(text, '.')
		for _, v := range d.frac {
			text = append(text, byte(v)+'0')
		}
	}
	return string(text)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseDigits].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Digits) UnmarshalText(text []byte) error {
	var err error
	*d, err = ParseDigits(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Digits{}, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// See also method [Digits.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Digits) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both quoted and bare JSON numbers are accepted.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Digits) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return d.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted string.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Digits) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, len(d.whole)+len(d.frac)+3)
	text = append(text, '"')
	text = append(text, d.String()...)
	text = append(text, '"')
	return text, nil
}
