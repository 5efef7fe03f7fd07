// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"sync"

	"github.com/db47h/bcnum"
	"github.com/db47h/bcnum/context"
)

// _pi holds the most precise value of π computed so far. A truncated value
// of π truncates to the value of π at any lower scale.
var _pi struct {
	sync.Mutex
	v *bcnum.Number
}

// Pi sets z to π truncated to the scale of c and returns z.
func Pi(c *context.Context, z *bcnum.Number) *bcnum.Number {
	scale := c.Scale()
	return apply(c, z, scale+guard, func(w *context.Context) (*bcnum.Number, error) {
		_pi.Lock()
		defer _pi.Unlock()
		if _pi.v != nil && _pi.v.Scale() >= scale {
			return _pi.v, nil
		}
		r, err := pi(w)
		if err != nil {
			return nil, err
		}
		_pi.v = new(bcnum.Number).Set(r).SetScale(scale)
		return _pi.v, nil
	})
}

// pi computes π with the Gauss-Legendre algorithm at the scale of w.
func pi(w *context.Context) (*bcnum.Number, error) {
	var (
		ws = w.Scale()
		a  = w.New().Set(one)
		b  = w.Sqrt(w.New(), half)
		t  = w.New().Set(quarter)
		p  = w.New().Set(one)
		u  = w.New()
		z  = w.New()
		// a and b agree to about half the working digits when the result
		// has converged.
		eps = epsilon(w, w.New(), ws-guard/2)
	)

	for {
		u.Set(a)                       // a_n
		w.Mul(a, w.Add(z, a, b), half) // a_n+1
		w.Sqrt(b, w.Mul(z, u, b))      // b_n+1
		w.Sub(u, u, a)
		w.Sub(t, t, w.Mul(z, w.Mul(z, u, u), p)) // t - p×(a_n - a_n+1)²
		if err := w.Err(); err != nil {
			return nil, err
		}
		if w.Abs(z, w.Sub(z, a, b)).Cmp(eps) <= 0 {
			break
		}
		w.Add(p, p, p)
	}
	w.Add(z, a, b)
	w.Mul(z, z, z)
	w.Add(t, t, t)
	w.Add(t, t, t)
	return w.Div(z, z, t), nil
}
