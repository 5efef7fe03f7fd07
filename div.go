// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

// Div sets z to the quotient x/y truncated toward zero to scale fractional
// digits.
func (e *Engine) Div(z, x, y *Number, scale int) (err error) {
	defer e.recover(&err)
	e.init()
	checkScale(scale)
	e.commit(z, len(x.num)+rdxOf(scale)+1, func(t *Number) { e.div(t, x, y, scale) })
	return nil
}

// Inv sets z to 1/x with scale fractional digits.
func (e *Engine) Inv(z, x *Number, scale int) (err error) {
	defer e.recover(&err)
	e.init()
	checkScale(scale)
	e.commit(z, rdxOf(scale)+1, func(t *Number) { e.inv(t, x, scale) })
	return nil
}

// Rem sets z to the remainder x - y*(x/y), where the quotient is computed
// at the given scale. The scale of the result is max(scale+y.Scale(),
// x.Scale()). The sign follows the dividend.
func (e *Engine) Rem(z, x, y *Number, scale int) (err error) {
	defer e.recover(&err)
	e.init()
	checkScale(scale)
	e.commit(z, len(x.num)+1, func(t *Number) {
		q := e.scratch(0)
		defer e.release(q)
		e.rem(q, t, x, y, scale, remScale(x, y, scale))
	})
	return nil
}

// DivMod sets q to x/y at the given scale and r to the matching remainder,
// as computed by Div and Rem. q and r must be distinct.
func (e *Engine) DivMod(q, r, x, y *Number, scale int) (err error) {
	defer e.recover(&err)
	e.init()
	checkScale(scale)
	if q == r {
		panic("bcnum: DivMod with q == r")
	}
	tq := e.scratch(len(x.num) + rdxOf(scale) + 1)
	defer e.release(tq)
	tr := e.scratch(len(x.num) + 1)
	defer e.release(tr)
	e.rem(tq, tr, x, y, scale, remScale(x, y, scale))
	e.check()
	q.swap(tq)
	r.swap(tr)
	return nil
}

func remScale(x, y *Number, scale int) int {
	return max(scale+y.scale, x.scale)
}

// div sets z = x/y truncated to scale. z must not alias x or y.
//
// With the operands seen as the integers X and Y of their limbs, the
// quotient is floor(X * B**(y.rdx+r-x.rdx) / Y) with r fractional limbs.
func (e *Engine) div(z, x, y *Number, scale int) {
	if y.IsZero() {
		raise(&ErrDivideByZero, "")
	}
	if x.IsZero() {
		z.setZero(scale)
		return
	}
	if y.isOne() {
		z.Set(x)
		z.neg = x.neg != y.neg
		z.retire(scale)
		return
	}

	r := rdxOf(scale)
	u := x.num
	if sh := y.rdx + r - x.rdx; sh > 0 {
		t := e.getNat(len(u) + sh)
		defer e.putNat(t)
		copy(t[sh:], u)
		clear(t[:sh])
		u = t
	} else if sh < 0 {
		u = u[min(-sh, len(u)):]
	}
	// floor(floor(U/B**k) / V) == floor(U / (V*B**k))
	v := y.num
	k := v.lowZeros()
	v = v[k:]
	u = u[min(k, len(u)):].norm()

	z.num, _ = e.natDiv(z.num, nil, u, v)
	z.rdx = r
	z.scale = r * _DW
	z.neg = x.neg != y.neg
	z.clean()
	z.retire(scale)
}

func (e *Engine) inv(z, x *Number, scale int) {
	var buf [1]Limb
	one := viewOver(buf[:])
	one.setOne()
	e.div(z, &one, x, scale)
}

// rem sets q = x/y at scale and d = x - q*y at scale ts.
func (e *Engine) rem(q, d, x, y *Number, scale, ts int) {
	if y.IsZero() {
		raise(&ErrDivideByZero, "")
	}
	if x.IsZero() {
		q.setZero(ts)
		d.setZero(ts)
		return
	}
	t := e.scratch(len(x.num) + 1)
	defer e.release(t)

	e.div(q, x, y, scale)
	rs := 0
	if scale != 0 {
		rs = ts + 1
	}
	e.mul(t, q, y, rs)
	e.add(d, x, t, true)
	if ts > d.scale && !d.IsZero() {
		d.Extend(ts - d.scale)
	}
	d.retire(ts)
}

// viewOver returns a zero Number using buf as its storage.
func viewOver(buf []Limb) Number {
	return Number{num: nat(buf[:0])}
}
