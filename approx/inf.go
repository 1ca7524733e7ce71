package approx

import (
	"fmt"

	inf "gopkg.in/inf.v0"
)

// infFactorScale is the scale of the factor L / K.
const infFactorScale = 32

// Inf computes with [inf.Dec], an arbitrary-precision decimal
// with explicit scale and rounding control.
type Inf struct{}

// Name implements the [Backend] interface.
func (Inf) Name() string {
	return "inf"
}

// Convert implements the [Backend] interface.
// Convert returns an error if:
//   - the value is not a valid non-negative decimal;
//   - the value is 0;
//   - the scale is negative.
func (i Inf) Convert(value string, scale int) (string, error) {
	q, err := i.convert(value, scale)
	if err != nil {
		return "", fmt.Errorf("converting %q with %v: %w", value, i.Name(), err)
	}
	return q, nil
}

func (Inf) convert(value string, scale int) (string, error) {
	if err := checkArgs(value, scale); err != nil {
		return "", err
	}
	v, ok := new(inf.Dec).SetString(value)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a decimal", errInvalidInput, value)
	}
	if v.Sign() == 0 {
		return "", errDivisionByZero
	}
	l, _ := new(inf.Dec).SetString(litersPerGallon)
	k, _ := new(inf.Dec).SetString(kilometersPerMile)
	f := new(inf.Dec).QuoRound(l, k, infFactorScale, inf.RoundDown)
	q := new(inf.Dec).QuoRound(f, v, inf.Scale(scale), inf.RoundDown)
	return trimZeros(q.String()), nil
}
