/*
Package mpg converts fuel economy between miles per gallon and liters per
100 kilometers using exact fixed-point decimal arithmetic.
Binary floating-point numbers cannot represent most decimal fractions, such
as the number of liters in a gallon, so the package never converts values
to float64.
Instead it works with numbers stored as fixed-width arrays of decimal digits.

# Features

  - Conversion in both directions with a configurable number of fractional digits
  - Decimal arithmetic built from first principles: addition, subtraction,
    long multiplication and division
  - Truncation instead of rounding, so results never exceed the exact value
  - Immutable values, ensuring safe usage across multiple goroutines
  - MessagePack encoding of buffers as packed BCD

# Representation

The package consists of three main types: Digits, Size and Buffer.
A [Digits] value is a decimal literal split into whole and fractional digits.
A [Size] describes a buffer: W whole positions followed by F fractional positions.
A [Buffer] holds exactly W + F digits with an implicit decimal point after
position W - 1.
For example, 123.456 encoded with Size{Whole: 5, Frac: 4} is stored as:

	| 0 0 1 2 3 | 4 5 6 0 |
	|   whole   |  frac   |

Buffers have no sign digit and represent only non-negative values.

# Supported Ranges

A buffer never grows.
Use [NewSize] to compute a size that fits every operand of a computation:
the widest whole part (or the number of fractional digits, whichever is
greater) plus a margin for carries produced by intermediate results.
Operations whose results do not fit return [ErrPrecisionOverflow].

# Operations

[Buffer.Add] and [Buffer.Sub] process digits from the least significant
position, propagating a carry or a borrow.
[Buffer.Mul] sums shifted partial products, exactly as done by hand.
[Buffer.Quo] finds the largest quotient whose product with the divisor does
not exceed the dividend, using nothing but multiplication and comparison.
Its cost grows with the cube of the buffer length, which is acceptable for
the short buffers used by conversions but not competitive with
arbitrary-precision libraries.

# Conversion

[Converter] composes the operations above: it parses the value and the
physical constants, sizes a common buffer, divides [LitersPerGallon] by
[KilometersPerMile] to obtain the conversion factor, and divides the factor
by the value.
Every intermediate result is truncated to the requested precision.

# Errors

Parsing fails fast with [ErrInvalidInput] for anything that is not a
non-negative decimal literal.
Arithmetic operations return [ErrSizeMismatch], [ErrPrecisionOverflow],
[ErrNegativeResult] or [ErrDivisionByZero] instead of producing
meaningless digits.
The package returns errors or panics, depending on the situation.
*/
package mpg
