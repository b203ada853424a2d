package decimal

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// opTraps lists the conditions that always fail an operation.
// Inexact, rounded, overflow, and underflow results are tolerated;
// how excess digits are discarded is entirely the caller's mode choice.
const opTraps = apd.DivisionByZero |
	apd.DivisionUndefined |
	apd.DivisionImpossible |
	apd.InvalidOperation

// opContext returns the working context for a mode-parameterized operation.
func opContext(mode RoundingMode) (apd.Context, error) {
	r, err := mode.rounder()
	if err != nil {
		return apd.Context{}, err
	}
	return apd.Context{
		Precision:   MaxPrec,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       opTraps,
		Rounding:    r,
	}, nil
}

// remContext is the fixed context used by [Decimal.Rem]: half-even rounding
// at full precision, regardless of the mode chosen by the surrounding
// computation.
var remContext = apd.Context{
	Precision:   MaxPrec,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Traps:       opTraps,
	Rounding:    apd.RoundHalfEven,
}

// Add returns the (possibly rounded) sum of d and e.
//
// Add returns an error if mode is not a valid rounding mode.
func (d Decimal) Add(e Decimal, mode RoundingMode) (Decimal, error) {
	f, err := d.add(e, mode)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal) add(e Decimal, mode RoundingMode) (Decimal, error) {
	ctx, err := opContext(mode)
	if err != nil {
		return Decimal{}, err
	}
	var v apd.Decimal
	if _, err := ctx.Add(&v, &d.val, &e.val); err != nil {
		return Decimal{}, err
	}
	return newFromResult(v)
}

// Sub returns the (possibly rounded) difference of d and e.
//
// Sub returns an error if mode is not a valid rounding mode.
func (d Decimal) Sub(e Decimal, mode RoundingMode) (Decimal, error) {
	f, err := d.sub(e, mode)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v - %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal) sub(e Decimal, mode RoundingMode) (Decimal, error) {
	ctx, err := opContext(mode)
	if err != nil {
		return Decimal{}, err
	}
	var v apd.Decimal
	if _, err := ctx.Sub(&v, &d.val, &e.val); err != nil {
		return Decimal{}, err
	}
	return newFromResult(v)
}

// Mul returns the (possibly rounded) product of d and e.
//
// Mul returns an error if mode is not a valid rounding mode.
func (d Decimal) Mul(e Decimal, mode RoundingMode) (Decimal, error) {
	f, err := d.mul(e, mode)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal) mul(e Decimal, mode RoundingMode) (Decimal, error) {
	ctx, err := opContext(mode)
	if err != nil {
		return Decimal{}, err
	}
	var v apd.Decimal
	if _, err := ctx.Mul(&v, &d.val, &e.val); err != nil {
		return Decimal{}, err
	}
	return newFromResult(v)
}

// Quo returns the (possibly rounded) quotient of d and e.
//
// Quo returns an error if:
//   - e is 0;
//   - mode is not a valid rounding mode.
func (d Decimal) Quo(e Decimal, mode RoundingMode) (Decimal, error) {
	f, err := d.quo(e, mode)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal) quo(e Decimal, mode RoundingMode) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, errDivisionByZero
	}
	ctx, err := opContext(mode)
	if err != nil {
		return Decimal{}, err
	}
	var v apd.Decimal
	if _, err := ctx.Quo(&v, &d.val, &e.val); err != nil {
		return Decimal{}, err
	}
	return newFromResult(v)
}

// Neg returns d with the opposite sign.
//
// Negation is routed through subtraction and multiplication rather than a
// native sign flip: -1 is produced as 0 - 1 and the result as d * -1, so
// negation observes exactly the same rounding semantics as multiplication.
//
// Neg returns an error if mode is not a valid rounding mode.
func (d Decimal) Neg(mode RoundingMode) (Decimal, error) {
	f, err := d.neg(mode)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [-%v]: %w", d, err)
	}
	return f, nil
}

func (d Decimal) neg(mode RoundingMode) (Decimal, error) {
	minusOne, err := Zero().sub(One(), mode)
	if err != nil {
		return Decimal{}, err
	}
	return d.mul(minusOne, mode)
}

// Rem returns the remainder of d divided by e.
// The result has the sign of d.
//
// Unlike the other arithmetic methods, Rem does not take a rounding mode:
// it always computes under half-even rounding at full precision.
//
// Rem returns an error if e is 0.
func (d Decimal) Rem(e Decimal) (Decimal, error) {
	f, err := d.rem(e)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v mod %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal) rem(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, errDivisionByZero
	}
	var v apd.Decimal
	if _, err := remContext.Rem(&v, &d.val, &e.val); err != nil {
		return Decimal{}, err
	}
	return newFromResult(v)
}

// Rescale returns a decimal rounded to the given number of digits after
// the decimal point, under the caller's rounding mode.
//
// Rescale returns an error if:
//   - scale is less than 0 or greater than [MaxScale];
//   - mode is not a valid rounding mode.
func (d Decimal) Rescale(scale int, mode RoundingMode) (Decimal, error) {
	f, err := d.rescale(scale, mode)
	if err != nil {
		return Decimal{}, fmt.Errorf("rescaling %v: %w", d, err)
	}
	return f, nil
}

func (d Decimal) rescale(scale int, mode RoundingMode) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, errScaleRange
	}
	ctx, err := opContext(mode)
	if err != nil {
		return Decimal{}, err
	}
	var v apd.Decimal
	if _, err := ctx.Quantize(&v, &d.val, int32(-scale)); err != nil {
		return Decimal{}, err
	}
	return newFromResult(v)
}
