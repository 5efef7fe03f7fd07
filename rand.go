// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the bridge between Numbers and the RNG.

package bcnum

import "math"

// rngStateScale is the scale of the fractional part of a Number holding a
// generator state.
const rngStateScale = 128

// max64 sets z to 2**64.
func max64(z *Number) {
	z.SetUint64(math.MaxUint64)
	z.num = z.num.add(z.num, nat{1})
}

// Seed reseeds rng from n: the fraction of n, scaled by 2**128 and
// truncated, gives the state; the integer part gives the increment, both
// split into 64 bits words. The sign of n is ignored.
func (e *Engine) Seed(rng *RNG, n *Number) (err error) {
	defer e.recover(&err)
	e.init()

	m := e.scratch(3)
	defer e.release(m)
	m2 := e.scratch(5)
	defer e.release(m2)
	t := e.scratch(len(n.num) + 5)
	defer e.release(t)
	q := e.scratch(len(n.num) + 5)
	defer e.release(q)
	r := e.scratch(3)
	defer e.release(r)
	max64(m)
	e.mul(m2, m, m, 0)

	frac := Number{num: nat(n.num[:n.rdx]).norm(), rdx: n.rdx, scale: n.scale}
	frac.clean()
	intn := Number{num: nat(n.num[n.rdx:])}

	e.mul(t, &frac, m2, 0)
	t.Truncate(t.scale)
	e.rem(q, r, t, m, 0, 0)
	s1, s2 := bigdig(r), bigdig(q)

	var i1, i2 uint64
	if !intn.IsZero() {
		e.rem(q, r, &intn, m, 0, 0)
		i1 = bigdig(r)
		if q.Cmp(m) >= 0 {
			t.Set(q)
			e.rem(r, q, t, m, 0, 0)
		}
		i2 = bigdig(q)
	}
	rng.Seed(s1, s2, i1, i2)
	return nil
}

// SetRNG sets z to a Number that reseeds rng to its current state when
// passed to Seed: (s2*2**64 + s1) / 2**128 at scale 128, plus
// i2*2**64 + i1.
func (e *Engine) SetRNG(z *Number, rng *RNG) (err error) {
	defer e.recover(&err)
	e.init()
	s1, s2, i1, i2 := rng.State()
	e.commit(z, rdxOf(rngStateScale)+5, func(out *Number) {
		m := e.scratch(3)
		defer e.release(m)
		m2 := e.scratch(5)
		defer e.release(m2)
		c := e.scratch(3)
		defer e.release(c)
		t := e.scratch(5)
		defer e.release(t)
		t2 := e.scratch(5)
		defer e.release(t2)
		f := e.scratch(rdxOf(rngStateScale) + 1)
		defer e.release(f)

		max64(m)
		e.mul(m2, m, m, 0)

		c.SetUint64(s2)
		e.mul(t, c, m, 0)
		c.SetUint64(s1)
		e.add(t2, c, t, false)
		e.div(f, t2, m2, rngStateScale)

		c.SetUint64(i2)
		e.mul(t, c, m, 0)
		c.SetUint64(i1)
		e.add(t2, c, t, false)
		e.add(out, t2, f, false)
	})
	return nil
}

// Irand sets z to a uniform random integer in [0, bound). bound must be a
// non-negative integer; 0 and 1 yield 0.
//
// Bounds wider than 64 bits are drawn limb by limb and redrawn when the
// result is not below bound. The top limb is drawn below its value in
// bound, so a draw is accepted with probability at least one half and at
// most two draws are expected.
func (e *Engine) Irand(z, bound *Number, rng *RNG) (err error) {
	defer e.recover(&err)
	e.init()
	e.commit(z, len(bound.num), func(t *Number) { e.irand(t, bound, rng) })
	return nil
}

func (e *Engine) irand(z, bound *Number, rng *RNG) {
	if bound.neg {
		raise(&ErrNegative, "bound %s", bound)
	}
	if !bound.IsInt() {
		raise(&ErrNonInteger, "bound %s", bound)
	}
	b := intView(bound)
	if b.IsZero() || b.isOne() {
		z.setZero(0)
		return
	}
	if v, ok := b.num.uint64(); ok {
		if v&(v-1) == 0 {
			z.SetUint64(rng.Uint64() & (v - 1))
		} else {
			z.SetUint64(rng.Bounded(v))
		}
		return
	}
	// draw limbs below the top one freely and the top one up to its bound
	// value, then reject draws that are not below the bound
	n := len(b.num)
	top := uint64(b.num[n-1]) + 1
	z.num = z.num.make(n)
	for {
		e.check()
		for i := range z.num[:n-1] {
			z.num[i] = Limb(rng.Bounded(_DB))
		}
		z.num[n-1] = Limb(rng.Bounded(top))
		if cmp10VV(z.num, b.num) < 0 {
			break
		}
	}
	z.rdx, z.scale, z.neg = 0, 0, false
	z.clean()
}

// Frand sets z to a uniform random number in [0, 1) with places fractional
// digits.
func (e *Engine) Frand(z *Number, places int, rng *RNG) (err error) {
	defer e.recover(&err)
	e.init()
	checkScale(places)
	e.commit(z, rdxOf(places)+1, func(t *Number) {
		if places == 0 {
			t.setZero(0)
			return
		}
		p := e.scratch(rdxOf(places) + 1)
		defer e.release(p)
		p.setOne()
		p.shiftLeft(places)
		e.irand(t, p, rng)
		t.shiftRight(places)
	})
	return nil
}
