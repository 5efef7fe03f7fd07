// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math implements the transcendental functions of the bc math
// library on top of bcnum contexts.
//
// Each function works at the scale of the context plus a few guard digits
// and truncates the result to the scale of the context. Errors follow the
// rules of the context: a function called on a context in an error state
// is a no-op, and a failure is recorded in the context.
package math

import (
	"github.com/db47h/bcnum"
	"github.com/db47h/bcnum/context"
	"github.com/zeebo/errs"
)

// Error is the class of errors raised by this package.
var Error = errs.Class("math")

// guard is the number of extra digits carried by intermediate results.
const guard = 10

// constants
var (
	one     = number("1")
	two     = number("2")
	half    = number("0.5")
	quarter = number("0.25")
)

func number(s string) *bcnum.Number {
	var e bcnum.Engine
	z := new(bcnum.Number)
	if err := e.Parse(z, s, 10); err != nil {
		panic(err)
	}
	return z
}

// digits returns the number of decimal digits of n > 0.
func digits(n int) int {
	d := 1
	for ; n >= 10; n /= 10 {
		d++
	}
	return d
}

// epsilon sets z to 10**-n and returns z.
func epsilon(w *context.Context, z *bcnum.Number, n int) *bcnum.Number {
	p := new(bcnum.Number).SetInt64(int64(n))
	return w.Do(z, func() error { return w.Engine().RShift(z, one, p) })
}

// square sets z to x**(2**n) and returns z.
func square(w *context.Context, z, x *bcnum.Number, n int) *bcnum.Number {
	z.Set(x)
	for ; n > 0; n-- {
		w.Mul(z, z, z)
	}
	return z
}

// apply runs f with a working context derived from c at the given scale
// and stores its result truncated to the scale of c into z.
func apply(c *context.Context, z *bcnum.Number, scale int, f func(w *context.Context) (*bcnum.Number, error)) *bcnum.Number {
	return c.Do(z, func() (err error) {
		defer Error.WrapP(&err)
		w := c.Derive(scale)
		r, err := f(w)
		if err == nil {
			err = w.Err()
		}
		if err != nil {
			return err
		}
		z.Set(r).SetScale(c.Scale())
		return nil
	})
}
