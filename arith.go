package mpg

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeResult is returned when the subtrahend is greater than
	// the minuend, since buffers cannot represent negative values.
	ErrNegativeResult = errors.New("negative result")
)

// Add returns the (exact) sum b + c.
//
// Add returns an error if:
//   - the buffers have different sizes;
//   - a carry leaves the most significant position.
func (b Buffer) Add(c Buffer) (Buffer, error) {
	d, err := b.add(c)
	if err != nil {
		return Buffer{}, fmt.Errorf("computing [%v + %v]: %w", b, c, err)
	}
	return d, nil
}

func (b Buffer) add(c Buffer) (Buffer, error) {
	if b.size != c.size {
		return Buffer{}, ErrSizeMismatch
	}
	d := newBufferUnsafe(b.size)
	if addDigits(d.digits, b.digits, c.digits) {
		return Buffer{}, ErrPrecisionOverflow
	}
	return d, nil
}

// addDigits stores x + y into z, from the least significant position,
// and reports whether a carry left the most significant position.
// z may alias x or y.
func addDigits(z, x, y []int8) bool {
	var carry int8
	for i := len(z) - 1; i >= 0; i-- {
		s := x[i] + y[i] + carry
		if s < 10 {
			z[i], carry = s, 0
		} else {
			z[i], carry = s-10, 1
		}
	}
	return carry != 0
}

// Sub returns the (exact) difference b - c.
//
// Sub returns an error if:
//   - the buffers have different sizes;
//   - c is greater than b.
func (b Buffer) Sub(c Buffer) (Buffer, error) {
	d, err := b.sub(c)
	if err != nil {
		return Buffer{}, fmt.Errorf("computing [%v - %v]: %w", b, c, err)
	}
	return d, nil
}

func (b Buffer) sub(c Buffer) (Buffer, error) {
	if b.size != c.size {
		return Buffer{}, ErrSizeMismatch
	}
	if cmpDigits(b.digits, c.digits) < 0 {
		return Buffer{}, ErrNegativeResult
	}
	d := newBufferUnsafe(b.size)
	subDigits(d.digits, b.digits, c.digits)
	return d, nil
}

// subDigits stores x - y into z, from the least significant position,
// and reports whether a borrow is still pending after the most significant
// position, which happens only when x < y.
func subDigits(z, x, y []int8) bool {
	var borrow int8 // 0 or -1
	for i := len(z) - 1; i >= 0; i-- {
		v := x[i] + borrow
		if v >= y[i] {
			z[i], borrow = v-y[i], 0
		} else {
			z[i], borrow = v+10-y[i], -1
		}
	}
	return borrow != 0
}

// Mul returns the product b * c truncated to the fractional positions of b.
// It is equivalent to b.MulFrac(c, b.Size().Frac).
//
// Mul returns an error if:
//   - the buffers have different sizes;
//   - the whole part of the product does not fit into the buffer.
func (b Buffer) Mul(c Buffer) (Buffer, error) {
	return b.MulFrac(c, b.size.Frac)
}

// MulFrac returns the product b * c computed by long multiplication.
// For every digit of c, starting from the least significant one, the digits
// of b are multiplied by that digit with carry propagation, and the partial
// product is shifted right by a counter that starts at frac and decreases by
// one for every digit of c.
// The partial products are then summed.
// Digits shifted past the last position are dropped, so the product is
// truncated, not rounded.
//
// With frac equal to [Size.Frac] the product is aligned with the decimal
// point of the buffer.
//
// MulFrac returns an error if:
//   - the buffers have different sizes;
//   - frac is not within the range [0, Size.Len];
//   - a non-zero digit or a carry leaves the most significant position.
func (b Buffer) MulFrac(c Buffer, frac int) (Buffer, error) {
	d, err := b.mul(c, frac)
	if err != nil {
		return Buffer{}, fmt.Errorf("computing [%v * %v]: %w", b, c, err)
	}
	return d, nil
}

func (b Buffer) mul(c Buffer, frac int) (Buffer, error) {
	if b.size != c.size {
		return Buffer{}, ErrSizeMismatch
	}
	if frac < 0 || frac > b.size.Len() {
		return Buffer{}, fmt.Errorf("%w: fraction size %v is out of range [0, %v]", ErrInvalidInput, frac, b.size.Len())
	}
	z, ok := mulDigits(b.digits, c.digits, frac)
	if !ok {
		return Buffer{}, ErrPrecisionOverflow
	}
	return Buffer{size: b.size, digits: z}, nil
}

// mulDigits returns the truncated product of x and y.
// It reports false as soon as any digit of the product would have to be
// placed before the most significant position.
func mulDigits(x, y []int8, frac int) ([]int8, bool) {
	n := len(x)
	z := make([]int8, n)
	partial := make([]int8, n)
	for i, shift := n-1, frac; i >= 0; i, shift = i-1, shift-1 {
		m := int(y[i])
		if m == 0 {
			continue
		}
		clear(partial)
		carry := 0
		// j == -1 places the final carry of the partial product.
		for j := n - 1; j >= -1; j-- {
			p := carry
			if j >= 0 {
				p += m * int(x[j])
			}
			carry = p / 10
			k := j + shift
			switch {
			case k >= n:
				// below the last fractional position
			case k < 0:
				if p%10 != 0 {
					return nil, false
				}
			default:
				partial[k] = int8(p % 10)
			}
		}
		if addDigits(z, z, partial) {
			return nil, false
		}
	}
	return z, true
}

// Quo returns the quotient b / c truncated to the fractional positions of b.
// It is equivalent to b.QuoFrac(c, b.Size().Frac).
//
// Quo returns an error if:
//   - the buffers have different sizes;
//   - the divisor is zero;
//   - the quotient does not fit into the buffer.
func (b Buffer) Quo(c Buffer) (Buffer, error) {
	return b.QuoFrac(c, b.size.Frac)
}

// QuoFrac returns the largest quotient q such that q.MulFrac(c, frac) <= b.
// If b and c are equal, the quotient is exactly 1 placed frac positions
// before the end of the buffer.
//
// The quotient is built one position at a time, from the most significant
// one, by trying the digits 9 through 1 and keeping the first digit whose
// trial product does not exceed b.
// Since the trial product never decreases when q increases, the result is
// the same as the one of a scan over every candidate quotient starting from
// zero, but it takes at most 9 multiplications per position instead of
// a number of multiplications proportional to the quotient itself.
//
// QuoFrac returns an error if:
//   - the buffers have different sizes;
//   - frac is not within the range [0, Size.Len);
//   - the divisor is zero;
//   - every position of the quotient is 9, meaning that the quotient
//     saturates the buffer.
func (b Buffer) QuoFrac(c Buffer, frac int) (Buffer, error) {
	d, err := b.quo(c, frac)
	if err != nil {
		return Buffer{}, fmt.Errorf("computing [%v / %v]: %w", b, c, err)
	}
	return d, nil
}

func (b Buffer) quo(c Buffer, frac int) (Buffer, error) {
	if b.size != c.size {
		return Buffer{}, ErrSizeMismatch
	}
	n := b.size.Len()
	if frac < 0 || frac >= n {
		return Buffer{}, fmt.Errorf("%w: fraction size %v is out of range [0, %v)", ErrInvalidInput, frac, n)
	}
	if c.IsZero() {
		return Buffer{}, ErrDivisionByZero
	}

	q := newBufferUnsafe(b.size)

	// Identity
	if cmpDigits(b.digits, c.digits) == 0 {
		q.digits[n-frac-1] = 1
		return q, nil
	}

	// Search
	for pos := range n {
		for v := int8(9); v > 0; v-- {
			q.digits[pos] = v
			if p, ok := mulDigits(q.digits, c.digits, frac); ok && cmpDigits(p, b.digits) <= 0 {
				break
			}
			q.digits[pos] = 0
		}
	}

	if q.isMax() {
		return Buffer{}, ErrPrecisionOverflow
	}
	return q, nil
}
