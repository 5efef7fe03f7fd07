// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

// Add sets z to the sum x+y. The scale of the result is the larger of the
// operand scales. scale must not be negative; it is otherwise ignored.
func (e *Engine) Add(z, x, y *Number, scale int) (err error) {
	defer e.recover(&err)
	e.init()
	checkScale(scale)
	e.commit(z, addLen(x, y), func(t *Number) { e.add(t, x, y, false) })
	return nil
}

// Sub sets z to the difference x-y. The scale of the result is the larger
// of the operand scales. scale must not be negative; it is otherwise
// ignored.
func (e *Engine) Sub(z, x, y *Number, scale int) (err error) {
	defer e.recover(&err)
	e.init()
	checkScale(scale)
	e.commit(z, addLen(x, y), func(t *Number) { e.add(t, x, y, true) })
	return nil
}

func addLen(x, y *Number) int {
	return max(x.rdx, y.rdx) + max(x.intLen(), y.intLen()) + 1
}

// add sets z = x + y, or x - y if sub is set. z must not alias x or y.
func (e *Engine) add(z, x, y *Number, sub bool) {
	yneg := y.neg != sub
	scale := max(x.scale, y.scale)
	switch {
	case x.IsZero() && y.IsZero():
		z.setZero(scale)
		return
	case x.IsZero():
		z.Set(y)
		z.neg = yneg
		z.Extend(scale - z.scale)
		return
	case y.IsZero():
		z.Set(x)
		z.Extend(scale - z.scale)
		return
	}

	rdx := max(x.rdx, y.rdx)
	z.num = z.num.make(rdx + max(x.intLen(), y.intLen()) + 1)
	if x.neg == yneg {
		addAligned(z.num, x.num, y.num, rdx-x.rdx, rdx-y.rdx)
		z.neg = x.neg
	} else {
		// the larger integer part wins; limbs are compared only on a tie
		c := cmpAbs(x, y)
		if c == 0 {
			z.setZero(scale)
			return
		}
		if c > 0 {
			subAligned(z.num, x.num, y.num, rdx-x.rdx, rdx-y.rdx)
			z.neg = x.neg
		} else {
			subAligned(z.num, y.num, x.num, rdx-y.rdx, rdx-x.rdx)
			z.neg = yneg
		}
	}
	z.rdx = rdx
	z.scale = scale
	z.clean()
}

// addAligned sets z to x*B**xo + y*B**yo, one of xo or yo being zero. The
// low limbs of the operand with the longer fraction are copied, then both
// are added with carry. len(z) must fit the result plus a carry limb.
func addAligned(z, x, y nat, xo, yo int) {
	if xo != 0 {
		x, y, xo, yo = y, x, yo, xo
	}
	k := yo
	copy(z[:k], x[:k])
	x = x[k:]
	if len(x) < len(y) {
		x, y = y, x
	}
	n, m := len(y), len(x)
	c := add10VV(z[k:k+n], x[:n], y)
	c = add10VW(z[k+n:k+m], x[n:], c)
	z[k+m] = c
	clear(z[k+m+1:])
}

// subAligned sets z to x*B**xo - y*B**yo, with the left operand not
// smaller than the right one. Low limbs only present in y are subtracted
// from zero.
func subAligned(z, x, y nat, xo, yo int) {
	var b Limb
	k := 0
	switch {
	case yo > 0:
		k = yo
		copy(z[:k], x[:k])
		x = x[k:]
	case xo > 0:
		k = xo
		b = neg10V(z[:k], y[:k], 0)
		y = y[k:]
	}
	n, m := len(y), len(x)
	c := sub10VV(z[k:k+n], x[:n], y)
	c = sub10VW(z[k+n:k+m], x[n:], c)
	if b != 0 {
		c += sub10VW(z[k:k+m], z[k:k+m], b)
	}
	clear(z[k+m:])
	if c != 0 {
		panic("bcnum: subAligned underflow")
	}
}
