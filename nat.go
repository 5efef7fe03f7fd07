// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "math"

const (
	// default capacity of a number buffer, in limbs
	_DefCap = 16
	// largest buffer the engine will allocate
	_MaxLimbs = math.MaxInt32
)

// nat is an unsigned integer x of the form
//
//	x = x[n-1]*_DB^(n-1) + x[n-2]*_DB^(n-2) + ... + x[1]*_DB + x[0]
//
// with 0 <= x[i] < _DB and 0 <= i < n is stored in a slice of length n,
// with the limbs x[i] as the slice elements.
//
// A nat is normalized if the slice contains no leading 0 limbs. The
// normalized representation of 0 is the empty or nil slice.
type nat []Limb

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// lowZeros returns the number of low zero limbs of x.
func (x nat) lowZeros() int {
	for i, w := range x {
		if w != 0 {
			return i
		}
	}
	return len(x)
}

func (z nat) make(n int) nat {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n < 0 || n > _MaxLimbs {
		allocFailed(n)
	}
	if n == 1 {
		return make(nat, 1)
	}
	// grow by a quarter so that repeated extensions amortize
	c := n + n/4 + 4
	if c < _DefCap {
		c = _DefCap
	}
	if c > _MaxLimbs {
		c = n
	}
	return make(nat, n, c)
}

// grow returns z with length n, preserving the contents of z[:len(z)]
// and zeroing the new limbs.
func (z nat) grow(n int) nat {
	l := len(z)
	if n <= l {
		return z[:n]
	}
	if n > cap(z) {
		t := nat(nil).make(n)
		copy(t, z)
		z = t
	}
	z = z[:n]
	clear(z[l:])
	return z
}

// shlW shifts z left by k limbs in place.
func (z nat) shlW(k int) nat {
	n := len(z)
	if k == 0 || n == 0 {
		return z
	}
	z = z.grow(n + k)
	copy(z[k:], z[:n])
	clear(z[:k])
	return z
}

// alias reports whether x and y share the same base array.
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

func (z nat) set(x nat) nat {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z nat) setUint64(v uint64) nat {
	if v == 0 {
		return z[:0]
	}
	n := 1
	for t := v / _DB; t != 0; t /= _DB {
		n++
	}
	z = z.make(n)
	for i := range z {
		z[i] = Limb(v % _DB)
		v /= _DB
	}
	return z
}

// uint64 returns the value of x and true, or false if x overflows a uint64.
func (x nat) uint64() (uint64, bool) {
	var v uint64
	for i := len(x) - 1; i >= 0; i-- {
		if v > (math.MaxUint64-uint64(x[i]))/_DB {
			return 0, false
		}
		v = v*_DB + uint64(x[i])
	}
	return v, true
}

func (x nat) cmp(y nat) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	return cmp10VV(x, y)
}

// digits returns the number of decimal digits of x.
func (x nat) digits() int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*_DW + mag(uint64(x[i]))
		}
	}
	return 0
}

// add sets z = x + y and returns the normalized result.
func (z nat) add(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		return z.add(y, x)
	}
	if n == 0 {
		return z.set(x).norm()
	}
	z = z.make(m + 1)
	c := add10VV(z[:n], x, y)
	if m > n {
		c = add10VW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

// sub sets z = x - y for x >= y and returns the normalized result.
func (z nat) sub(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		panic("bcnum: nat.sub underflow")
	}
	if n == 0 {
		return z.set(x).norm()
	}
	z = z.make(m)
	c := sub10VV(z[:n], x, y)
	if m > n {
		c = sub10VW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("bcnum: nat.sub underflow")
	}
	return z.norm()
}

// mulAddWW sets z = x*y + r, with y <= _DB.
func (z nat) mulAddWW(x nat, y uint64, r Limb) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setUint64(uint64(r))
	}
	z = z.make(m + 2)
	c := mulAdd10VWW(z[:m], x, y, r)
	z[m], z[m+1] = Limb(c%_DB), Limb(c/_DB)
	return z.norm()
}

// shift10 multiplies x by 10**e. A negative e divides x by 10**-e; the
// low digits shifted out must be zero.
func (z nat) shift10(x nat, e int) nat {
	if len(x) == 0 || e == 0 {
		return z.set(x)
	}
	if alias(z, x) {
		z = nil // limb moves are not in-place safe
	}
	if e > 0 {
		nw, s := e/_DW, e%_DW
		n := len(x) + nw + 1
		if n < 0 || n > _MaxLimbs {
			allocFailed(n)
		}
		z = z.make(n)
		z[n-1] = shl10VU(z[nw:n-1], x, s)
		clear(z[:nw])
		return z.norm()
	}
	e = -e
	nw, s := e/_DW, e%_DW
	if nw >= len(x) {
		return z[:0]
	}
	z = z.make(len(x) - nw)
	shr10VU(z, x[nw:], s)
	return z.norm()
}
