/*
Package decimal provides immutable decimal floating-point numbers with an
explicit rounding mode on every arithmetic operation.
It is designed for retail and financial documents, where the rounding policy
applied to each amount is dictated by the document, not by the library.

# Representation

[Decimal] wraps the arbitrary-precision decimal type of
[github.com/cockroachdb/apd/v3].
The package does not reimplement decimal arithmetic: every operation is
delegated to the platform library. The value of this package is the calling
convention: immutable values, an explicit [RoundingMode] parameter, and a
fixed exactness policy.

The zero value of [Decimal] is the number 0 and is ready to use.
Special values such as NaN, Infinity, or negative zeros are not supported,
so arithmetic operations always produce either valid decimals or errors.

# Operations

[Decimal.Add], [Decimal.Sub], [Decimal.Mul], and [Decimal.Quo] compute
their result at 38 significant digits and round it under the caller's mode.
[Decimal.Neg] is composed from subtraction and multiplication (-1 is
produced as 0 - 1, the result as d * -1), so negation observes exactly the
same rounding semantics as multiplication.

[Decimal.Rem] is the one asymmetric operation: it takes no rounding mode
and always computes under half-even rounding at 38-digit precision.
Callers who need a differently rounded remainder must compose it from
[Decimal.Quo], [Decimal.Rescale], and [Decimal.Mul].

# Rounding

[RoundingMode] is a fixed four-value enumeration:

	| Mode         | Policy                                      |
	| ------------ | ------------------------------------------- |
	| RoundBankers | to nearest, ties to even                    |
	| RoundUp      | toward positive infinity                    |
	| RoundDown    | toward negative infinity                    |
	| RoundPlain   | toward zero                                 |

The zero value of the type is [RoundBankers].

# Errors

Division by zero is always an error, for both [Decimal.Quo] and
[Decimal.Rem], including 0 / 0.
Inexact, rounded, overflow, and underflow conditions are tolerated: the
result is rounded under the operation's mode and returned without error,
unless it leaves the finite range entirely.
The package performs no recovery or retry; errors propagate to the caller.
*/
package decimal
