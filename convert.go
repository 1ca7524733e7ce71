package mpg

import "fmt"

const (
	// DefaultMargin is the number of extra whole positions reserved for
	// carries produced by intermediate results.
	DefaultMargin = 3
	// DefaultPrec is the number of fractional digits of a conversion result.
	DefaultPrec = 3
)

var (
	// LitersPerGallon is the number of liters in 100 US gallons
	// (100 × 3.785411784).
	LitersPerGallon = MustParseDigits("378.5411784")
	// KilometersPerMile is the number of kilometers in one international mile.
	KilometersPerMile = MustParseDigits("1.609344")
)

// Converter converts fuel economy between miles per gallon and liters per
// 100 kilometers.
// The conversion is its own inverse: the same factor divided by a value in
// MPG gives L/100km, and divided by a value in L/100km gives MPG.
// Converter is designed to be safe for concurrent use by multiple goroutines.
type Converter struct {
	margin int // extra whole positions
	prec   int // fractional positions of the result
}

// NewConverter returns a converter producing results with prec fractional
// digits, using buffers with margin extra whole positions.
//
// NewConverter returns an error if margin or prec is negative.
func NewConverter(margin, prec int) (Converter, error) {
	if margin < 0 {
		return Converter{}, fmt.Errorf("creating converter: %w: negative margin %v", ErrInvalidInput, margin)
	}
	if prec < 0 {
		return Converter{}, fmt.Errorf("creating converter: %w: negative precision %v", ErrInvalidInput, prec)
	}
	return Converter{margin: margin, prec: prec}, nil
}

// MustNewConverter is like [NewConverter] but panics if the converter cannot
// be constructed.
func MustNewConverter(margin, prec int) Converter {
	c, err := NewConverter(margin, prec)
	if err != nil {
		panic(fmt.Sprintf("NewConverter(%v, %v) failed: %v", margin, prec, err))
	}
	return c
}

// Margin returns the number of extra whole positions of the buffers.
func (c Converter) Margin() int {
	return c.margin
}

// Prec returns the number of fractional digits of the results.
func (c Converter) Prec() int {
	return c.prec
}

// Size returns the buffer dimensions shared by the physical constants and
// the given operands.
func (c Converter) Size(ops ...Digits) (Size, error) {
	all := make([]Digits, 0, len(ops)+2)
	all = append(all, LitersPerGallon, KilometersPerMile)
	all = append(all, ops...)
	return NewSize(c.margin, c.prec, all...)
}

// Factor returns the conversion factor [LitersPerGallon] / [KilometersPerMile],
// truncated to [Converter.Prec] fractional digits, in a buffer sized for the
// physical constants and the given operands.
// Both constants are truncated to the same number of fractional digits
// before the division.
func (c Converter) Factor(ops ...Digits) (Buffer, error) {
	s, err := c.Size(ops...)
	if err != nil {
		return Buffer{}, fmt.Errorf("computing factor: %w", err)
	}
	f, err := factor(s)
	if err != nil {
		return Buffer{}, fmt.Errorf("computing factor: %w", err)
	}
	return f, nil
}

func factor(s Size) (Buffer, error) {
	l, err := Encode(LitersPerGallon, s)
	if err != nil {
		return Buffer{}, err
	}
	k, err := Encode(KilometersPerMile, s)
	if err != nil {
		return Buffer{}, err
	}
	return l.Quo(k)
}

// Convert returns the factor divided by the value, truncated to
// [Converter.Prec] fractional digits.
//
// Convert returns an error if:
//   - the value is zero after truncation to [Converter.Prec] fractional digits;
//   - the result does not fit into the buffer.
func (c Converter) Convert(value Digits) (Buffer, error) {
	r, err := c.convert(value)
	if err != nil {
		return Buffer{}, fmt.Errorf("converting %v: %w", value, err)
	}
	return r, nil
}

func (c Converter) convert(value Digits) (Buffer, error) {
	s, err := c.Size(value)
	if err != nil {
		return Buffer{}, err
	}
	f, err := factor(s)
	if err != nil {
		return Buffer{}, err
	}
	v, err := Encode(value, s)
	if err != nil {
		return Buffer{}, err
	}
	return f.Quo(v)
}

// ConvertString is like [Converter.Convert] but takes and returns decimal
// strings.
// See also constructor [ParseDigits] and method [Buffer.String].
func (c Converter) ConvertString(value string) (string, error) {
	d, err := ParseDigits(value)
	if err != nil {
		return "", err
	}
	r, err := c.Convert(d)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// Convert converts a value between miles per gallon and liters per
// 100 kilometers with prec fractional digits and [DefaultMargin].
//
//	Convert("123", 3) // "1.912"
func Convert(value string, prec int) (string, error) {
	c, err := NewConverter(DefaultMargin, prec)
	if err != nil {
		return "", err
	}
	return c.ConvertString(value)
}
