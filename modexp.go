// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

// ModExp sets z to x**y mod m, with a scale of 0. All operands must be
// integers, y must not be negative and m must not be zero.
func (e *Engine) ModExp(z, x, y, m *Number) (err error) {
	defer e.recover(&err)
	e.init()
	e.commit(z, len(m.num), func(t *Number) { e.modexp(t, x, y, m) })
	return nil
}

// intView returns the integer part of x, sharing its limbs. x must be an
// integer.
func intView(x *Number) Number {
	v := Number{num: nat(x.num[x.rdx:]).norm(), neg: x.neg}
	v.neg = v.neg && len(v.num) > 0
	return v
}

// modexp uses right-to-left square and multiply, reducing after each
// product. z must not alias any operand.
func (e *Engine) modexp(z, x, y, m *Number) {
	if m.IsZero() {
		raise(&ErrDivideByZero, "modulus is zero")
	}
	if y.neg {
		raise(&ErrNegative, "exponent %s", y)
	}
	if !x.IsInt() || !y.IsInt() || !m.IsInt() {
		raise(&ErrNonInteger, "modexp operands")
	}
	a, b, c := intView(x), intView(y), intView(m)

	base := e.scratch(len(c.num))
	defer e.release(base)
	t := e.scratch(2 * len(c.num))
	defer e.release(t)
	q := e.scratch(0)
	defer e.release(q)
	exp := e.getNat(len(b.num))
	defer e.putNat(exp)
	exp = exp.set(b.num)

	e.rem(q, base, &a, &c, 0, 0)

	// 1 mod c, so that a**0 mod 1 == 0
	var obuf [1]Limb
	one := viewOver(obuf[:])
	one.setOne()
	e.rem(q, z, &one, &c, 0, 0)

	for len(exp) > 0 {
		e.check()
		var bit Limb
		exp, bit = exp.divW(exp, 2)
		if bit != 0 {
			e.mul(t, z, base, 0)
			e.rem(q, z, t, &c, 0, 0)
		}
		if len(exp) > 0 {
			e.mul(t, base, base, 0)
			e.rem(q, base, t, &c, 0, 0)
		}
	}
	z.clean()
}
