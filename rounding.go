package decimal

import (
	"github.com/cockroachdb/apd/v3"
)

// RoundingMode determines how a result that exceeds the working precision
// is rounded.
// The zero value is [RoundBankers], which is also the fixed policy used
// by [Decimal.Rem].
type RoundingMode uint8

const (
	// RoundBankers rounds to the nearest representable value;
	// ties are rounded to the value with an even last digit.
	RoundBankers RoundingMode = iota

	// RoundUp rounds toward positive infinity.
	RoundUp

	// RoundDown rounds toward negative infinity.
	RoundDown

	// RoundPlain rounds toward zero, discarding excess digits.
	RoundPlain
)

// String method implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	switch m {
	case RoundBankers:
		return "bankers"
	case RoundUp:
		return "up"
	case RoundDown:
		return "down"
	case RoundPlain:
		return "plain"
	}
	return "unknown"
}

func (m RoundingMode) rounder() (apd.Rounder, error) {
	switch m {
	case RoundBankers:
		return apd.RoundHalfEven, nil
	case RoundUp:
		return apd.RoundCeiling, nil
	case RoundDown:
		return apd.RoundFloor, nil
	case RoundPlain:
		return apd.RoundDown, nil
	}
	return "", errRoundingMode
}
