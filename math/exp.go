// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/db47h/bcnum"
	"github.com/db47h/bcnum/context"
)

// maxExpArg bounds the integer part of the argument of Exp.
const maxExpArg = 1 << 24

// Exp sets z to e**x truncated to the scale of c and returns z. It fails
// with ErrOverflow if |x| is too large.
func Exp(c *context.Context, z, x *bcnum.Number) *bcnum.Number {
	n, err := x.Int64()
	if err == nil && (n > maxExpArg || n < -maxExpArg) {
		err = bcnum.ErrOverflow.New("exponent %s too large", x)
	}
	if err != nil {
		return c.Do(z, func() error { return Error.Wrap(err) })
	}
	if n < 0 {
		n = -n
	}
	// e**x has about 0.44×|x| integer digits.
	ws := c.Scale() + guard + int(n*44/100) + 1
	return apply(c, z, ws, func(w *context.Context) (*bcnum.Number, error) {
		return expm(w, x)
	})
}

// expm computes e**x at the scale of w.
func expm(w *context.Context, x *bcnum.Number) (*bcnum.Number, error) {
	if x.IsZero() {
		return one, nil
	}
	neg := x.Sign() < 0
	y := w.Abs(w.New(), x)

	// bring y below 1, adding one digit of scale per halving
	m := 0
	for y.Cmp(one) > 0 {
		w.SetScale(w.Scale() + 1)
		w.Div(y, y, two)
		m++
	}
	if ws := w.Scale(); y.Scale() > ws {
		y.SetScale(ws)
	}

	// v = 1 + y + y²/2! + y³/3! + ...
	var (
		v = w.Add(w.New(), one, y)
		a = w.New().Set(y)
		d = w.New().Set(one)
		i = w.New().Set(one)
		t = w.New()
	)
	for {
		w.Add(i, i, one)
		w.Mul(a, a, y)
		w.Mul(d, d, i)
		w.Div(t, a, d)
		if err := w.Err(); err != nil {
			return nil, err
		}
		if t.IsZero() {
			break
		}
		w.Add(v, v, t)
	}

	square(w, v, v, m)
	if neg {
		w.Inv(v, v)
	}
	return v, nil
}
