// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

// Sqrt sets z to the square root of x, truncated to max(scale, x.Scale())
// fractional digits. It fails with ErrNegative if x < 0.
func (e *Engine) Sqrt(z, x *Number, scale int) (err error) {
	defer e.recover(&err)
	e.init()
	checkScale(scale)
	e.commit(z, len(x.num)/2+rdxOf(scale)+1, func(t *Number) { e.sqrt(t, x, scale) })
	return nil
}

// sqrt computes the square root with Newton's iteration
//
//	x' = (x + a/x) * 0.5
//
// at a working scale slightly above the requested one. z must not alias x.
func (e *Engine) sqrt(z, a *Number, scale int) {
	scale = max(scale, a.scale)
	switch {
	case a.IsZero():
		z.setZero(scale)
		return
	case a.neg:
		raise(&ErrNegative, "square root of %s", a)
	case a.isOne():
		z.setOne()
		z.Extend(scale)
		return
	}

	var hbuf [1]Limb
	half := viewOver(hbuf[:])
	half.num = append(half.num, _DB/2)
	half.rdx, half.scale = 1, 1

	ws := scale + _DW + 2
	x0 := e.scratch(len(a.num)/2 + rdxOf(ws) + 1)
	defer e.release(x0)
	x1 := e.scratch(len(x0.num))
	defer e.release(x1)
	f := e.scratch(len(x0.num))
	defer e.release(f)
	fp := e.scratch(len(x0.num))
	defer e.release(fp)

	// initial guess from the number of integer digits
	x0.setOne()
	if p := a.intDigits(); p > 0 {
		if p&1 != 0 {
			x0.num[0] = 2
		} else {
			x0.num[0] = 6
		}
		p -= 2 - p&1
		x0.shiftLeft(p / 2)
	}

	for i := 0; ; i++ {
		e.check()
		e.div(f, a, x0, ws)
		e.add(fp, x0, f, false)
		e.mul(x1, fp, &half, ws)
		c := x1.Cmp(x0)
		if c == 0 || i > 0 && c > 0 {
			// converged, or the truncated iterates started to oscillate
			break
		}
		x0.swap(x1)
	}

	z.Set(x0)
	if z.scale > scale {
		z.Truncate(z.scale - scale)
	}
	z.clean()
}
