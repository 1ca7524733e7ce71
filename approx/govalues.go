package approx

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Govalues computes with [decimal.Decimal], a 19-digit decimal
// with correct rounding.
type Govalues struct{}

// Name implements the [Backend] interface.
func (Govalues) Name() string {
	return "govalues"
}

// Convert implements the [Backend] interface.
// Convert returns an error if:
//   - the value is not a valid non-negative decimal;
//   - the value is 0;
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the integer part of an intermediate result has more than [decimal.MaxPrec] digits.
func (g Govalues) Convert(value string, scale int) (string, error) {
	q, err := g.convert(value, scale)
	if err != nil {
		return "", fmt.Errorf("converting %q with %v: %w", value, g.Name(), err)
	}
	return q, nil
}

func (Govalues) convert(value string, scale int) (string, error) {
	if err := checkArgs(value, scale); err != nil {
		return "", err
	}
	if scale > decimal.MaxScale {
		return "", fmt.Errorf("%w: scale %v is greater than %v", errInvalidInput, scale, decimal.MaxScale)
	}
	v, err := decimal.Parse(value)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	if v.IsZero() {
		return "", errDivisionByZero
	}
	l := decimal.MustParse(litersPerGallon)
	k := decimal.MustParse(kilometersPerMile)
	f, err := l.Quo(k)
	if err != nil {
		return "", err
	}
	q, err := f.Quo(v)
	if err != nil {
		return "", err
	}
	return q.Trunc(scale).Trim(0).String(), nil
}
