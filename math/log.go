// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/db47h/bcnum"
	"github.com/db47h/bcnum/context"
)

// Log sets z to the natural logarithm of x truncated to the scale of c and
// returns z. It fails with ErrNegative if x < 0 and with an Error if x is
// zero.
func Log(c *context.Context, z, x *bcnum.Number) *bcnum.Number {
	switch x.Sign() {
	case -1:
		return c.Do(z, func() error {
			return Error.Wrap(bcnum.ErrNegative.New("logarithm of %s", x))
		})
	case 0:
		return c.Do(z, func() error { return Error.New("logarithm of zero") })
	}
	// each square root taken to bring x close to 1 doubles the error of the
	// result.
	ws := c.Scale() + guard + digits(x.Len()) + 2
	return apply(c, z, ws, func(w *context.Context) (*bcnum.Number, error) {
		return ln(w, x)
	})
}

// ln computes the natural logarithm of x > 0 at the scale of w using
//
//	ln(x) = 2^k × ln(x^(1/2^k))
//	ln(y) = 2 × atanh((y-1)/(y+1))
func ln(w *context.Context, x *bcnum.Number) (*bcnum.Number, error) {
	y := w.New().Set(x)
	f := w.New().Set(two)
	for y.Cmp(two) >= 0 || y.Cmp(half) <= 0 {
		w.Sqrt(y, y)
		w.Add(f, f, f)
		if err := w.Err(); err != nil {
			return nil, err
		}
	}
	if ws := w.Scale(); y.Scale() > ws {
		y.SetScale(ws)
	}

	// atanh(n) = n + n³/3 + n⁵/5 + ...
	var (
		n = w.Div(w.New(), w.Sub(w.New(), y, one), w.Add(w.New(), y, one))
		v = w.New().Set(n)
		m = w.Mul(w.New(), n, n)
		i = w.New().Set(one)
		t = w.New()
	)
	for {
		w.Add(i, i, two)
		w.Mul(n, n, m)
		w.Div(t, n, i)
		if err := w.Err(); err != nil {
			return nil, err
		}
		if t.IsZero() {
			break
		}
		w.Add(v, v, t)
	}
	return w.Mul(v, v, f), nil
}
