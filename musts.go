package decimal

import "fmt"

// MustAdd is like [Decimal.Add] but panics if computing error.
func (d Decimal) MustAdd(e Decimal, mode RoundingMode) Decimal {
	f, err := d.Add(e, mode)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v, %v) failed: %v", e, mode, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics if computing error.
func (d Decimal) MustSub(e Decimal, mode RoundingMode) Decimal {
	f, err := d.Sub(e, mode)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v, %v) failed: %v", e, mode, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics if computing error.
func (d Decimal) MustMul(e Decimal, mode RoundingMode) Decimal {
	f, err := d.Mul(e, mode)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v, %v) failed: %v", e, mode, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal, mode RoundingMode) Decimal {
	f, err := d.Quo(e, mode)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v, %v) failed: %v", e, mode, err))
	}
	return f
}

// MustNeg is like [Decimal.Neg] but panics if computing error.
func (d Decimal) MustNeg(mode RoundingMode) Decimal {
	f, err := d.Neg(mode)
	if err != nil {
		panic(fmt.Sprintf("MustNeg(%v) failed: %v", mode, err))
	}
	return f
}

// MustRem is like [Decimal.Rem] but panics if computing error.
func (d Decimal) MustRem(e Decimal) Decimal {
	f, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", e, err))
	}
	return f
}

// MustRescale is like [Decimal.Rescale] but panics if computing error.
func (d Decimal) MustRescale(scale int, mode RoundingMode) Decimal {
	f, err := d.Rescale(scale, mode)
	if err != nil {
		panic(fmt.Sprintf("MustRescale(%v, %v) failed: %v", scale, mode, err))
	}
	return f
}
