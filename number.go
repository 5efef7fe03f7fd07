// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "math"

// A Number represents a signed decimal number with a fixed number of
// digits after the point, its scale.
//
// Internally, the absolute value is stored as an integer in base 10**9
// limbs, least significant limb first, with the last rdx limbs holding
// the fractional part. Digits past the scale are always zero.
//
// The zero value for a Number is 0 with a scale of 0. Arithmetic is
// performed by the methods of Engine; a Number itself only provides
// queries and operations that cannot fail.
//
// Shallow copies of a Number share its storage and must not be used as
// destinations once the original has been.
type Number struct {
	num   nat
	rdx   int
	scale int
	neg   bool
	// pooled is set while num comes from an engine pool and nothing
	// outside the engine holds a reference to it.
	pooled bool
}

// rdxOf returns the number of limbs needed to hold scale fractional digits.
func rdxOf(scale int) int {
	return (scale + _DW - 1) / _DW
}

func (x *Number) intLen() int { return len(x.num) - x.rdx }

func (z *Number) swap(x *Number) { *z, *x = *x, *z }

func (z *Number) setZero(scale int) {
	z.num = z.num[:0]
	z.rdx = 0
	z.scale = scale
	z.neg = false
}

func (z *Number) setOne() {
	z.num = z.num.setUint64(1)
	z.rdx = 0
	z.scale = 0
	z.neg = false
}

// isOne reports whether |x| == 1 with no fractional limbs.
func (x *Number) isOne() bool {
	return len(x.num) == 1 && x.rdx == 0 && x.num[0] == 1
}

// clean normalizes z: no leading zero limbs, len >= rdx for non-zero
// values, and canonical zero.
func (z *Number) clean() {
	z.num = z.num.norm()
	if len(z.num) == 0 {
		z.rdx = 0
		z.neg = false
		return
	}
	if len(z.num) < z.rdx {
		z.num = z.num.grow(z.rdx)
	}
}

// Set sets z to x (with the same scale) and returns z.
func (z *Number) Set(x *Number) *Number {
	if z != x {
		z.num = z.num.set(x.num)
		z.rdx = x.rdx
		z.scale = x.scale
		z.neg = x.neg
	}
	return z
}

// Neg sets z to -x and returns z.
func (z *Number) Neg(x *Number) *Number {
	z.Set(x)
	z.neg = len(z.num) > 0 && !z.neg
	return z
}

// Abs sets z to |x| and returns z.
func (z *Number) Abs(x *Number) *Number {
	z.Set(x)
	z.neg = false
	return z
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x *Number) Sign() int {
	switch {
	case len(x.num) == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// IsZero reports whether x is zero, regardless of its scale.
func (x *Number) IsZero() bool { return len(x.num) == 0 }

// IsInt reports whether x has no non-zero fractional digit.
func (x *Number) IsInt() bool {
	for _, w := range x.num[:x.rdx] {
		if w != 0 {
			return false
		}
	}
	return true
}

// Scale returns the number of fractional digits of x.
func (x *Number) Scale() int { return x.scale }

// Len returns the number of significant digits of x: the digits of the
// integer part plus the scale. Leading zeros of a pure fraction are not
// counted. Zero reports its scale, or 1 if the scale is 0.
func (x *Number) Len() int {
	if x.IsZero() {
		if x.scale > 0 {
			return x.scale
		}
		return 1
	}
	if x.intLen() > 0 {
		return x.intDigits() + x.scale
	}
	// pure fraction: digits from the first non-zero one up to the scale
	n := len(x.num.norm())
	l := n*_DW - zeroDigits(x.num[n-1])
	if m := x.scale % _DW; m != 0 {
		l -= _DW - m
	}
	return l
}

// intDigits returns the number of digits of the integer part of x.
func (x *Number) intDigits() int {
	return nat(x.num[x.rdx:]).digits()
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Numbers that differ only by trailing fractional zeros compare equal.
func (x *Number) Cmp(y *Number) int {
	switch {
	case x == y:
		return 0
	case x.IsZero():
		return -y.Sign()
	case y.IsZero():
		return x.Sign()
	case x.neg != y.neg:
		if x.neg {
			return -1
		}
		return 1
	}
	c := cmpAbs(x, y)
	if x.neg {
		return -c
	}
	return c
}

// cmpAbs compares |x| and |y|.
func cmpAbs(x, y *Number) int {
	if xi, yi := x.intLen(), y.intLen(); xi != yi {
		if xi < yi {
			return -1
		}
		return 1
	}
	// align the limbs at the point
	xn, yn := x.num, y.num
	sign := 1
	if x.rdx < y.rdx {
		xn, yn = yn, xn
		sign = -1
	}
	d := len(xn) - len(yn)
	if c := cmp10VV(xn[d:], yn); c != 0 {
		return sign * c
	}
	for _, w := range xn[:d] {
		if w != 0 {
			return sign
		}
	}
	return 0
}

// Truncate removes places fractional digits from z and returns z. If places
// is larger than the scale of z, the scale becomes zero. A negative value
// extends z instead.
func (z *Number) Truncate(places int) *Number {
	if places < 0 {
		return z.Extend(-places)
	}
	if places > z.scale {
		places = z.scale
	}
	if places == 0 {
		return z
	}
	s := z.scale - places
	if !z.IsZero() {
		r := rdxOf(s)
		if d := z.rdx - r; d > 0 {
			n := copy(z.num, z.num[d:])
			z.num = z.num[:n]
		}
		z.rdx = r
		if m := s % _DW; m != 0 {
			p := Limb(pow10(_DW - m))
			z.num[0] -= z.num[0] % p
		}
	}
	z.scale = s
	z.clean()
	return z
}

// Extend adds places zero fractional digits to z and returns z. A negative
// value truncates z instead.
func (z *Number) Extend(places int) *Number {
	if places < 0 {
		return z.Truncate(-places)
	}
	if places > math.MaxInt-_DW-z.scale {
		allocFailed(places)
	}
	s := z.scale + places
	if r := rdxOf(s); !z.IsZero() && r > z.rdx {
		z.num = z.num.shlW(r - z.rdx)
		z.rdx = r
	}
	z.scale = s
	return z
}

// SetScale truncates or extends z to the given scale and returns z. A
// negative scale is treated as 0.
func (z *Number) SetScale(scale int) *Number {
	if scale < 0 {
		scale = 0
	}
	return z.Extend(scale - z.scale)
}

// retire sets the scale of z to scale, truncating or extending the stored
// fraction.
func (z *Number) retire(scale int) {
	z.SetScale(scale)
	z.clean()
}

// shiftLeft multiplies z by 10**places, decreasing its scale.
func (z *Number) shiftLeft(places int) {
	if places == 0 {
		return
	}
	s := z.scale - places
	if s < 0 {
		s = 0
	}
	if z.IsZero() {
		z.scale = s
		return
	}
	r := rdxOf(s)
	z.num = z.num.shift10(z.num, places+_DW*(r-z.rdx))
	z.rdx, z.scale = r, s
	z.clean()
}

// shiftRight divides z by 10**places, increasing its scale.
func (z *Number) shiftRight(places int) {
	if places == 0 {
		return
	}
	if places > math.MaxInt-_DW-z.scale {
		allocFailed(places)
	}
	s := z.scale + places
	if z.IsZero() {
		z.scale = s
		return
	}
	r := rdxOf(s)
	z.num = z.num.shift10(z.num, _DW*(r-z.rdx)-places)
	z.rdx, z.scale = r, s
	z.clean()
}

// Bits provides raw access to x by returning its little-endian limb slice
// and the number of limbs holding the fraction. The result shares the
// underlying array with x, which is never recycled by an Engine afterwards.
func (x *Number) Bits() (limbs []Limb, rdx int) {
	x.pooled = false
	return x.num, x.rdx
}

// SetBits sets z to the value of the little-endian limb slice, scaled down
// by scale fractional digits, with the given sign, and returns z. Digits
// past the scale are discarded. The result shares the underlying array
// with limbs. SetBits panics if a limb is not below 10**9.
func (z *Number) SetBits(limbs []Limb, scale int, neg bool) *Number {
	for _, w := range limbs {
		if w > _DMax {
			panic("bcnum: limb out of range")
		}
	}
	if scale < 0 {
		scale = 0
	}
	z.num = nat(limbs)
	z.pooled = false
	z.rdx = rdxOf(scale)
	z.scale = scale
	z.neg = neg
	if m := scale % _DW; m != 0 && len(z.num) > 0 {
		p := Limb(pow10(_DW - m))
		z.num[0] -= z.num[0] % p
	}
	z.clean()
	return z
}
