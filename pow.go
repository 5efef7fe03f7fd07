// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "math"

// Pow sets z to x**y. y must be an integer that fits a uint64 in absolute
// value. For y >= 0 the scale of the result is
//
//	min(x.Scale()*y, max(scale, x.Scale()))
//
// and for y < 0 the result is the reciprocal of x**-y at the given scale.
func (e *Engine) Pow(z, x, y *Number, scale int) (err error) {
	defer e.recover(&err)
	e.init()
	checkScale(scale)
	e.commit(z, len(x.num), func(t *Number) { e.pow(t, x, y, scale) })
	return nil
}

// pow sets z = x**y. z must not alias x or y.
func (e *Engine) pow(z, x, y *Number, scale int) {
	if !y.IsInt() {
		raise(&ErrNonInteger, "exponent %s", y)
	}
	if y.IsZero() {
		z.setOne()
		return
	}
	if x.IsZero() {
		if y.neg {
			raise(&ErrDivideByZero, "negative power of zero")
		}
		z.setZero(scale)
		return
	}
	exp := bigdig(y)
	neg := y.neg
	if exp == 1 {
		if neg {
			e.inv(z, x, scale)
		} else {
			z.Set(x)
		}
		return
	}

	if !neg {
		scalePow := math.MaxInt
		if x.scale == 0 {
			scalePow = 0
		} else if exp <= uint64(math.MaxInt/x.scale) {
			scalePow = x.scale * int(exp)
		}
		scale = min(scalePow, max(scale, x.scale))
	}

	sq := e.scratch(len(x.num))
	defer e.release(sq)
	t := e.scratch(len(x.num))
	defer e.release(t)
	sq.Set(x)

	// squaring scale and accumulated result scale
	powrdx := x.scale
	for ; exp&1 == 0; exp >>= 1 {
		e.check()
		powrdx = double(powrdx)
		e.mul(t, sq, sq, powrdx)
		sq.swap(t)
	}
	z.Set(sq)
	resrdx := powrdx
	for exp >>= 1; exp != 0; exp >>= 1 {
		e.check()
		powrdx = double(powrdx)
		e.mul(t, sq, sq, powrdx)
		sq.swap(t)
		if exp&1 != 0 {
			resrdx = min(resrdx+powrdx, math.MaxInt/2)
			e.mul(t, sq, z, resrdx)
			z.swap(t)
		}
	}

	if neg {
		t.Set(z)
		e.inv(z, t, scale)
	}
	if z.scale > scale {
		z.Truncate(z.scale - scale)
	}
	z.clean()
}

func double(n int) int {
	if n > math.MaxInt/4 {
		return n
	}
	return n << 1
}
