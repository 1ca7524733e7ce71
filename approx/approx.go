/*
Package approx computes the fuel consumption conversion with general-purpose
decimal libraries.
It serves as an independent reference for the fixed-width arithmetic
implemented in package mpg.

Each [Backend] computes the factor L / K with the precision native to its
library and then divides the factor by the input value, truncating the
quotient towards zero.
Results therefore differ from mpg in the last digits: mpg truncates both
constants to the output precision before dividing.
The [Checker] type reports these deviations.
*/
package approx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

const (
	litersPerGallon   = "378.5411784"
	kilometersPerMile = "1.609344"
)

var (
	errInvalidInput   = errors.New("invalid input")
	errDivisionByZero = errors.New("division by zero")
)

// Backend converts fuel consumption using a particular decimal library.
type Backend interface {
	// Name returns the short name of the underlying library.
	Name() string
	// Convert converts value between L/100km and US MPG.
	// The result is truncated to scale digits after the decimal point
	// and does not have trailing zeros.
	Convert(value string, scale int) (string, error)
}

// Backends returns all available backends.
func Backends() []Backend {
	return []Backend{Govalues{}, Shopspring{}, Inf{}}
}

// Convert converts value using the [Govalues] backend with as many digits
// after the decimal point as [decimal.Decimal] can hold.
func Convert(value string) (string, error) {
	return Govalues{}.Convert(value, decimal.MaxScale)
}

// checkArgs rejects signs and negative scales, which mpg does not accept either.
func checkArgs(value string, scale int) error {
	if scale < 0 {
		return fmt.Errorf("%w: negative scale %v", errInvalidInput, scale)
	}
	if strings.ContainsAny(value, "+-") {
		return fmt.Errorf("%w: signed value %q", errInvalidInput, value)
	}
	return nil
}

// trimZeros removes trailing fractional zeros and a dangling decimal point.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
