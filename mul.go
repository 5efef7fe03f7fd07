// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

// Mul sets z to the product x*y. The scale of the result is
//
//	min(x.Scale()+y.Scale(), max(scale, x.Scale(), y.Scale()))
func (e *Engine) Mul(z, x, y *Number, scale int) (err error) {
	defer e.recover(&err)
	e.init()
	checkScale(scale)
	e.commit(z, len(x.num)+len(y.num), func(t *Number) { e.mul(t, x, y, scale) })
	return nil
}

// mulScale returns the scale of a product.
func mulScale(x, y *Number, scale int) int {
	return min(x.scale+y.scale, max(scale, x.scale, y.scale))
}

// mul sets z = x*y. z must not alias x or y.
func (e *Engine) mul(z, x, y *Number, scale int) {
	scale = mulScale(x, y, scale)
	if x.IsZero() || y.IsZero() {
		z.setZero(scale)
		return
	}
	neg := x.neg != y.neg

	if x.rdx == 0 && y.rdx == 0 && (len(x.num) == 1 || len(y.num) == 1) {
		if len(y.num) != 1 {
			x, y = y, x
		}
		z.num = z.num.mulAddWW(x.num, uint64(y.num[0]), 0)
		z.rdx = 0
		z.scale = 0
		z.neg = neg
		z.clean()
		z.Extend(scale)
		return
	}

	// low zero limbs only shift the product
	xz, yz := x.num.lowZeros(), y.num.lowZeros()
	z.num = e.natMul(z.num, x.num[xz:], y.num[yz:]).shlW(xz + yz)
	z.rdx = x.rdx + y.rdx
	z.scale = z.rdx * _DW
	z.neg = neg
	z.clean()
	z.retire(scale)
}
