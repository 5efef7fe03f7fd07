// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

// Places sets z to x with exactly n fractional digits, truncating or
// extending as needed. n must be a non-negative integer.
func (e *Engine) Places(z, x, n *Number) (err error) {
	defer e.recover(&err)
	e.init()
	p := intArg(n)
	e.commit(z, len(x.num), func(t *Number) {
		t.Set(x)
		t.SetScale(p)
		t.clean()
	})
	return nil
}

// LShift sets z to x * 10**n. n must be a non-negative integer. The scale
// decreases by n, down to 0.
func (e *Engine) LShift(z, x, n *Number) (err error) {
	defer e.recover(&err)
	e.init()
	p := intArg(n)
	e.commit(z, len(x.num), func(t *Number) {
		t.Set(x)
		t.shiftLeft(p)
	})
	return nil
}

// RShift sets z to x / 10**n. n must be a non-negative integer. The scale
// increases by n.
func (e *Engine) RShift(z, x, n *Number) (err error) {
	defer e.recover(&err)
	e.init()
	p := intArg(n)
	e.commit(z, len(x.num), func(t *Number) {
		t.Set(x)
		t.shiftRight(p)
	})
	return nil
}
