package decimal

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Decimal type is a representation of a finite floating-point decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal is a thin immutable wrapper around [apd.Decimal]: all arithmetic
// is delegated to the platform library, and every operation returns a new
// value instead of mutating its operands.
// Special values such as NaN, Infinity, or signed zeros are not supported,
// so arithmetic operations always produce either valid decimals or errors.
type Decimal struct {
	val apd.Decimal // the wrapped platform decimal, never mutated after construction
}

const (
	MaxPrec  = 38      // maximum number of significant digits in a result
	MaxScale = MaxPrec // maximum number of digits after the decimal point
)

var (
	errInvalidDecimal  = errors.New("invalid decimal")
	errScaleRange      = errors.New("scale out of range")
	errExponentRange   = errors.New("exponent out of range")
	errDecimalOverflow = errors.New("decimal overflow")
	errDivisionByZero  = errors.New("division by zero")
	errRoundingMode    = errors.New("unknown rounding mode")
)

// newFromResult validates the outcome of a platform operation.
// Results that left the finite range are rejected, and zero results
// have their sign cleared, so that negative zeros never escape.
func newFromResult(v apd.Decimal) (Decimal, error) {
	if v.Form != apd.Finite {
		return Decimal{}, errDecimalOverflow
	}
	if v.IsZero() {
		v.Negative = false
	}
	return Decimal{val: v}, nil
}

// New returns a decimal equal to coef / 10^scale.
//
// New returns an error if scale is less than 0 or greater than [MaxScale].
func New(coef int64, scale int) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, fmt.Errorf("converting coefficient: %w", errScaleRange)
	}
	return Decimal{val: *apd.New(coef, int32(-scale))}, nil
}

// MustNew is like [New] but panics if the decimal cannot be constructed.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(coef int64, scale int) Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// Zero returns the additive identity, a decimal with the value 0.
func Zero() Decimal {
	return Decimal{}
}

// One returns the multiplicative identity, a decimal with the value 1.
func One() Decimal {
	var d Decimal
	d.val.SetInt64(1)
	return d
}

// NewFromFloat64 converts a float to a (possibly rounded) decimal.
//
// NewFromFloat64 returns an error if f is NaN or Infinity.
func NewFromFloat64(f float64) (Decimal, error) {
	var d Decimal
	if _, err := d.val.SetFloat64(f); err != nil {
		return Decimal{}, fmt.Errorf("converting %v: %w", f, errInvalidDecimal)
	}
	return newFromResult(d.val)
}

// Parse converts a string to a decimal.
// The input string must be a finite decimal number in plain or scientific
// notation, for example:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//
// Parse returns an error if:
//   - the string does not represent a finite decimal;
//     NaN and Infinity are rejected;
//   - the coefficient has more than [MaxPrec] digits;
//   - the exponent is out of range.
func Parse(s string) (Decimal, error) {
	var d Decimal
	if _, _, err := d.val.SetString(s); err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, errInvalidDecimal)
	}
	if d.val.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, errInvalidDecimal)
	}
	// The arithmetic contexts work at MaxPrec digits. A wider value would
	// parse fine and then lose digits in every operation, breaking the
	// a + 0 == a and a * 1 == a identities.
	if d.val.NumDigits() > MaxPrec {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, errDecimalOverflow)
	}
	if d.val.Exponent > apd.MaxExponent || d.val.Exponent < apd.MinExponent {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, errExponentRange)
	}
	return newFromResult(d.val)
}

// MustParse is like [Parse] but panics if the string cannot be converted.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the decimal value.
// The returned string does not use scientific or engineering notation.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return d.val.Text('f')
}

// Float64 returns the nearest binary floating-point number.
//
// This conversion may lose data, as float64 has a smaller precision
// than the decimal type.
func (d Decimal) Float64() (f float64, ok bool) {
	f, err := d.val.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	if d.val.Exponent < 0 {
		return int(-d.val.Exponent)
	}
	return 0
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.val.Sign()
}

// IsNeg returns:
//
//	true  if d < 0
//	false otherwise
func (d Decimal) IsNeg() bool {
	return d.val.Sign() < 0
}

// IsZero returns:
//
//	true  if d == 0
//	false otherwise
func (d Decimal) IsZero() bool {
	return d.val.IsZero()
}

// Cmp compares decimals numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	return d.val.Cmp(&e.val)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// Also see method [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	case int64:
		*d, err = New(value, 0)
	case float64:
		*d, err = NewFromFloat64(value)
	default:
		err = fmt.Errorf("failed to convert from %T to %T", value, Decimal{})
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Also see method [Decimal.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}
