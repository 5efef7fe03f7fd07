// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

// divW sets z = x / y and returns the normalized quotient and the
// remainder.
func (z nat) divW(x nat, y Limb) (q nat, r Limb) {
	m := len(x)
	switch {
	case y == 0:
		panic("division by zero")
	case y == 1:
		q = z.set(x)
		return
	case m == 0:
		q = z[:0]
		return
	}
	z = z.make(m)
	r = div10VWW(z, 0, x, y)
	q = z.norm()
	return
}

// modW returns x % y.
func (x nat) modW(y Limb) Limb {
	var r uint64
	d := uint64(y)
	for i := len(x) - 1; i >= 0; i-- {
		r = (r*_DB + uint64(x[i])) % d
	}
	return Limb(r)
}

// natDiv sets q = u / v and r = u % v. v must be normalized and non-zero.
func (e *Engine) natDiv(q, r, u, v nat) (nat, nat) {
	if len(v) == 0 {
		panic("division by zero")
	}
	if u.cmp(v) < 0 {
		return q[:0], r.set(u)
	}
	if len(v) == 1 {
		var rw Limb
		q, rw = q.divW(u, v[0])
		return q, r.setUint64(uint64(rw))
	}
	return e.divLarge(q, r, u, v)
}

// divLarge implements long division of u by v, len(v) >= 2 and u >= v.
//
// Both operands are first multiplied by a power of ten so that the leading
// limb of v has no leading zero digit. Each quotient limb is estimated
// from the top two limbs of the running remainder, refined with the second
// limb of v, and corrected by adding v back while the remainder window is
// negative.
func (e *Engine) divLarge(z, r, uIn, vIn nat) (nat, nat) {
	n := len(vIn)
	m := len(uIn) - n

	if alias(z, uIn) || alias(z, vIn) {
		z = nil
	}
	if alias(r, uIn) || alias(r, vIn) {
		r = nil
	}

	s := zeroDigits(vIn[n-1])
	v := e.getNat(n)
	defer e.putNat(v)
	shl10VU(v, vIn, s)
	u := e.getNat(len(uIn) + 1)
	defer e.putNat(u)
	u[len(uIn)] = shl10VU(u[:len(uIn)], uIn, s)

	qhatv := e.getNat(n + 1)
	defer e.putNat(qhatv)

	q := z.make(m + 1)
	vn1, vn2 := uint64(v[n-1]), uint64(v[n-2])
	for j := m; j >= 0; j-- {
		e.check()
		num := uint64(u[j+n])*_DB + uint64(u[j+n-1])
		qhat, rhat := num/vn1, num%vn1
		if qhat > _DMax {
			qhat = _DMax
			rhat = num - qhat*vn1
		}
		for rhat < _DB && qhat*vn2 > rhat*_DB+uint64(u[j+n-2]) {
			qhat--
			rhat += vn1
		}

		qhatv[n] = Limb(mulAdd10VWW(qhatv[:n], v, qhat, 0))
		c := sub10VV(u[j:j+n+1], u[j:], qhatv)
		for c != 0 {
			qhat--
			t := u[j+n] + add10VV(u[j:j+n], u[j:], v)
			if t >= _DB {
				t -= _DB
				c = 0
			}
			u[j+n] = t
		}
		q[j] = Limb(qhat)
	}

	r = r.make(n)
	shr10VU(r, u[:n], s)
	return q.norm(), r.norm()
}
