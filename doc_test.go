package decimal_test

import (
	"fmt"

	"github.com/retailkit/decimal"
)

func ExampleParse() {
	d, err := decimal.Parse("-1.230")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: -1.230
}

func ExampleDecimal_Add() {
	d := decimal.MustParse("1.5")
	e := decimal.MustParse("2.25")
	fmt.Println(d.MustAdd(e, decimal.RoundPlain))
	// Output: 3.75
}

func ExampleDecimal_Sub() {
	d := decimal.MustParse("10")
	e := decimal.MustParse("3.33")
	fmt.Println(d.MustSub(e, decimal.RoundBankers))
	// Output: 6.67
}

func ExampleDecimal_Mul() {
	d := decimal.MustParse("6.25")
	e := decimal.MustParse("-4")
	fmt.Println(d.MustMul(e, decimal.RoundBankers))
	// Output: -25.00
}

func ExampleDecimal_Quo() {
	d := decimal.MustParse("10")
	e := decimal.MustParse("4")
	fmt.Println(d.MustQuo(e, decimal.RoundBankers))
	// Output: 2.5
}

func ExampleDecimal_Quo_divisionByZero() {
	d := decimal.MustParse("10")
	_, err := d.Quo(decimal.Zero(), decimal.RoundBankers)
	fmt.Println(err)
	// Output: computing [10 / 0]: division by zero
}

func ExampleDecimal_Neg() {
	d := decimal.MustParse("2.5")
	fmt.Println(d.MustNeg(decimal.RoundBankers))
	// Output: -2.5
}

func ExampleDecimal_Rem() {
	d := decimal.MustParse("10")
	e := decimal.MustParse("3")
	fmt.Println(d.MustRem(e))
	// Output: 1
}

func ExampleDecimal_Rescale() {
	d := decimal.MustParse("-1.25")
	modes := []decimal.RoundingMode{
		decimal.RoundBankers,
		decimal.RoundUp,
		decimal.RoundDown,
		decimal.RoundPlain,
	}
	for _, mode := range modes {
		r, err := d.Rescale(1, mode)
		if err != nil {
			panic(err)
		}
		fmt.Println(mode, r)
	}
	// Output:
	// bankers -1.2
	// up -1.2
	// down -1.3
	// plain -1.2
}

func ExampleDecimal_IsNeg() {
	d := decimal.MustParse("-0.01")
	fmt.Println(d.IsNeg())
	// Output: true
}

func ExampleZero() {
	d := decimal.MustParse("1.5")
	fmt.Println(d.MustAdd(decimal.Zero(), decimal.RoundBankers))
	// Output: 1.5
}

func ExampleOne() {
	d := decimal.MustParse("1.5")
	fmt.Println(d.MustMul(decimal.One(), decimal.RoundBankers))
	// Output: 1.5
}
