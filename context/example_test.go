// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context_test

import (
	"errors"
	"fmt"

	"github.com/db47h/bcnum"
	"github.com/db47h/bcnum/context"
)

var (
	_four = new(bcnum.Number).SetInt64(-4)
	two   = new(bcnum.Number).SetInt64(2)
)

// solve solves the quadratic equation ax² + bx + c = 0 at ctx's scale. It
// can fail with various combinations of inputs, for example a = 0, b = 2,
// c = -3 will result in a division by zero when computing x0. So we need
// to check errors.
func solve(ctx *context.Context, a, b, c *bcnum.Number) (x0, x1 *bcnum.Number, err error) {
	d := ctx.New()
	// compute discriminant
	ctx.Mul(d, a, _four)                    // d = a × -4
	ctx.Mul(d, d, c)                        //     × c
	ctx.Add(d, d, ctx.Mul(ctx.New(), b, b)) //     + b × b
	if err = ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("error computing discriminant: %w", err)
	}
	if d.Sign() < 0 {
		return nil, nil, errors.New("no real roots")
	}
	// d = √d
	ctx.Sqrt(d, d)
	twoA := ctx.Mul(ctx.New(), a, two)
	negB := ctx.Neg(ctx.New(), b)

	x0 = ctx.Add(ctx.New(), negB, d)
	ctx.Div(x0, x0, twoA)
	x1 = ctx.Sub(ctx.New(), negB, d)
	ctx.Div(x1, x1, twoA)

	if err = ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("error computing roots: %w", err)
	}
	return
}

// Example demonstrates various features of Contexts.
func Example() {
	ctx := context.New(nil, 5)
	a, b, c := ctx.NewInt64(1), ctx.NewInt64(2), ctx.NewInt64(-3)
	x0, x1, err := solve(ctx, a, b, c)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("roots of %s×x²+%sx%s: %s, %s\n", a, b, c, x0, x1)

	c = ctx.NewString("-2")
	x0, x1, err = solve(ctx, a, b, c)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("roots of %s×x²+%sx%s: %s, %s\n", a, b, c, x0, x1)

	a = ctx.New() // zero
	_, _, err = solve(ctx, a, b, c)
	// obviously, our solve() algorithm cannot handle a == 0
	fmt.Printf("failed to solve %s×x²+%sx%s: %t\n", a, b, c, bcnum.ErrDivideByZero.Has(err))
	//
	// Output:
	// roots of 1×x²+2x-3: 1.00000, -3.00000
	// roots of 1×x²+2x-2: 0.73205, -2.73205
	// failed to solve 0×x²+2x-2: true
}
