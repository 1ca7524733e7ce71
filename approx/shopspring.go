package approx

import (
	"fmt"

	shopspring "github.com/shopspring/decimal"
)

// shopspringGuard is the number of extra digits kept by the division
// before truncating to the requested scale.
const shopspringGuard = 16

// Shopspring computes with [shopspring.Decimal], an arbitrary-precision
// decimal backed by [math/big].
type Shopspring struct{}

// Name implements the [Backend] interface.
func (Shopspring) Name() string {
	return "shopspring"
}

// Convert implements the [Backend] interface.
// Convert returns an error if:
//   - the value is not a valid non-negative decimal;
//   - the value is 0;
//   - the scale is negative.
func (s Shopspring) Convert(value string, scale int) (string, error) {
	q, err := s.convert(value, scale)
	if err != nil {
		return "", fmt.Errorf("converting %q with %v: %w", value, s.Name(), err)
	}
	return q, nil
}

func (Shopspring) convert(value string, scale int) (string, error) {
	if err := checkArgs(value, scale); err != nil {
		return "", err
	}
	v, err := shopspring.NewFromString(value)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	if v.IsZero() {
		return "", errDivisionByZero
	}
	l := shopspring.RequireFromString(litersPerGallon)
	k := shopspring.RequireFromString(kilometersPerMile)
	prec := int32(scale + shopspringGuard)
	f := l.DivRound(k, prec)
	q := f.DivRound(v, prec).Truncate(int32(scale))
	return q.String(), nil
}
