// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the limb vector kernels used by the nat and Number
// arithmetic. Limbs hold _DW decimal digits; products of two limbs are
// accumulated in uint64.

package bcnum

import "math/bits"

// A Limb is a single digit of a number in base 10**9.
type Limb uint32

const (
	_DW   = 9          // decimal digits per limb
	_DB   = 1000000000 // limb base
	_DMax = _DB - 1    // largest limb value
)

var pow10tab = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

// pow10 returns 10**n for 0 <= n < 20.
func pow10(n int) uint64 { return pow10tab[n] }

var maxDigits = [...]int{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// mag returns the magnitude of x such that 10**(mag-1) <= x < 10**mag.
// Returns 0 for x == 0.
func mag(x uint64) int {
	if x == 0 {
		return 0
	}
	d := maxDigits[bits.Len64(x)]
	if x < pow10(d-1) {
		d--
	}
	return d
}

// zeroDigits returns the number of leading zero digits in the _DW digits
// representation of x.
func zeroDigits(x Limb) int { return _DW - mag(uint64(x)) }

// add10VV sets z to x + y and returns the carry. len(x) and len(y) must be
// at least len(z).
func add10VV(z, x, y []Limb) (c Limb) {
	for i := range z {
		s := x[i] + y[i] + c
		if s >= _DB {
			z[i], c = s-_DB, 1
		} else {
			z[i], c = s, 0
		}
	}
	return c
}

// sub10VV sets z to x - y and returns the borrow.
func sub10VV(z, x, y []Limb) (c Limb) {
	for i := range z {
		yi := y[i] + c
		if x[i] >= yi {
			z[i], c = x[i]-yi, 0
		} else {
			z[i], c = x[i]+_DB-yi, 1
		}
	}
	return c
}

// add10VW sets z to x + y and returns the carry.
func add10VW(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := range z {
		s := x[i] + c
		if s >= _DB {
			z[i], c = s-_DB, 1
		} else {
			z[i], c = s, 0
		}
	}
	return c
}

// sub10VW sets z to x - y and returns the borrow.
func sub10VW(z, x []Limb, y Limb) (c Limb) {
	c = y
	for i := range z {
		if x[i] >= c {
			z[i], c = x[i]-c, 0
		} else {
			z[i], c = x[i]+_DB-c, 1
		}
	}
	return c
}

// neg10V sets z to 0 - x - c and returns the borrow.
func neg10V(z, x []Limb, c Limb) Limb {
	for i := range z {
		xi := x[i] + c
		if xi == 0 {
			z[i], c = 0, 0
		} else {
			z[i], c = _DB-xi, 1
		}
	}
	return c
}

// mulAdd10VWW sets z to x*y + r and returns the carry. y must not exceed
// _DB; the carry may then be as large as _DB.
func mulAdd10VWW(z, x []Limb, y uint64, r Limb) (c uint64) {
	c = uint64(r)
	for i := range z {
		t := uint64(x[i])*y + c
		z[i], c = Limb(t%_DB), t/_DB
	}
	return c
}

// addMul10VVW sets z to z + x*y and returns the carry.
func addMul10VVW(z, x []Limb, y Limb) (c Limb) {
	for i := range z {
		t := uint64(z[i]) + uint64(x[i])*uint64(y) + uint64(c)
		z[i], c = Limb(t%_DB), Limb(t/_DB)
	}
	return c
}

// div10VWW sets z to (xn*_DB**len(x) + x) / y and returns the remainder.
// xn must be less than y.
func div10VWW(z []Limb, xn Limb, x []Limb, y Limb) (r Limb) {
	rr := uint64(xn)
	d := uint64(y)
	for i := len(z) - 1; i >= 0; i-- {
		t := rr*_DB + uint64(x[i])
		z[i], rr = Limb(t/d), t%d
	}
	return Limb(rr)
}

// shl10VU sets z to x*(10**s), s < _DW, and returns the carry.
func shl10VU(z, x []Limb, s int) (c Limb) {
	m := pow10(s)
	for i := range z {
		t := uint64(x[i])*m + uint64(c)
		z[i], c = Limb(t%_DB), Limb(t/_DB)
	}
	return c
}

// shr10VU sets z to x/(10**s), s < _DW, and returns the remainder.
func shr10VU(z, x []Limb, s int) (r Limb) {
	d, m := Limb(pow10(s)), Limb(pow10(_DW-s))
	for i := len(z) - 1; i >= 0; i-- {
		q, rm := x[i]/d, x[i]%d
		z[i] = r*m + q
		r = rm
	}
	return r
}

// cmp10VV compares x and y of equal length from the most significant limb.
func cmp10VV(x, y []Limb) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
