// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

// basicMul adds x*y to z using the schoolbook method. len(z) must be at
// least len(x)+len(y).
func basicMul(z, x, y nat) {
	for i, d := range y {
		if d != 0 {
			c := addMul10VVW(z[i:i+len(x)], x, d)
			addAt(z, nat{c}, i+len(x))
		}
	}
}

// addAt adds x to z[i:], propagating the carry.
func addAt(z, x nat, i int) {
	n := len(x)
	if n == 0 {
		return
	}
	c := add10VV(z[i:i+n], z[i:], x)
	for j := i + n; c != 0; j++ {
		if z[j]++; z[j] == _DB {
			z[j] = 0
		} else {
			c = 0
		}
	}
}

// subAt subtracts x from z[i:], propagating the borrow. The result must
// not be negative.
func subAt(z, x nat, i int) {
	n := len(x)
	if n == 0 {
		return
	}
	c := sub10VV(z[i:i+n], z[i:], x)
	for j := i + n; c != 0; j++ {
		if z[j] == 0 {
			z[j] = _DMax
		} else {
			z[j]--
			c = 0
		}
	}
}

// diff sets z = |x - y| and returns z with the sign of x - y.
func (z nat) diff(x, y nat) (nat, int) {
	switch x.cmp(y) {
	case -1:
		return z.sub(y, x), -1
	case 1:
		return z.sub(x, y), 1
	}
	return z[:0], 0
}

// mul sets z = x*y and returns the normalized result.
func (e *Engine) natMul(z, x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		x, y, m, n = y, x, n, m
	}
	switch {
	case n == 0:
		return z[:0]
	case n == 1:
		return z.mulAddWW(x, uint64(y[0]), 0)
	}
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(m + n)
	clear(z)
	if n >= e.cfg.KaratsubaLen {
		e.log.Debug("karatsuba", "len", m, "by", n)
	}
	e.karatsuba(z, x, y)
	return z.norm()
}

// karatsuba adds x*y to z. len(z) must be at least len(x)+len(y).
//
// With B = _DB**k, x = x1*B + x0 and y = y1*B + y0:
//
//	x*y = z2*B*B + (z2 + z0 + z1)*B + z0
//
// where z2 = x1*y1, z0 = x0*y0 and z1 = (x1-x0)*(y0-y1).
func (e *Engine) karatsuba(z, x, y nat) {
	e.check()
	m, n := len(x), len(y)
	if m < n {
		x, y, m, n = y, x, n, m
	}
	switch {
	case n == 0:
		return
	case n == 1:
		if y[0] == 1 {
			addAt(z, x, 0)
			return
		}
		t := e.getNat(m + 1)
		defer e.putNat(t)
		t[m] = Limb(mulAdd10VWW(t[:m], x, uint64(y[0]), 0))
		addAt(z, t.norm(), 0)
		return
	case n < e.cfg.KaratsubaLen:
		basicMul(z, x, y)
		return
	}

	k := (m + 1) / 2
	x0, x1 := x[:k].norm(), x[k:]
	y0, y1 := y, nat(nil)
	if n > k {
		y0, y1 = y[:k], y[k:]
	}
	y0 = y0.norm()

	// accumulate in a buffer with headroom: the partial sums may exceed
	// the final product before z1 is subtracted.
	acc := e.getNat(2*m + 2)
	defer e.putNat(acc)
	clear(acc)

	p := e.getNat(len(x0) + len(y0))
	defer e.putNat(p)
	clear(p)
	e.karatsuba(p, x0, y0)
	p = p.norm()
	addAt(acc, p, 0)
	addAt(acc, p, k)

	if len(y1) > 0 {
		q := e.getNat(len(x1) + len(y1))
		defer e.putNat(q)
		clear(q)
		e.karatsuba(q, x1, y1)
		q = q.norm()
		addAt(acc, q, 2*k)
		addAt(acc, q, k)
	}

	d1, s1 := e.getNat(k).diff(x1, x0)
	defer e.putNat(d1)
	d2, s2 := e.getNat(k).diff(y0, y1)
	defer e.putNat(d2)
	if s1 != 0 && s2 != 0 {
		r := e.getNat(len(d1) + len(d2))
		defer e.putNat(r)
		clear(r)
		e.karatsuba(r, d1, d2)
		r = r.norm()
		if s1 != s2 {
			subAt(acc, r, k)
		} else {
			addAt(acc, r, k)
		}
	}

	addAt(z, acc.norm(), 0)
}
