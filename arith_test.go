// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"math/rand"
	"reflect"
	"strconv"
	"testing"
)

var rnd = rand.New(rand.NewSource(0xbc))

func rnd10W() Limb {
	return Limb(rnd.Uint64() % _DB)
}

func rnd10V(n int) nat {
	v := make(nat, n)
	for i := range v {
		v[i] = rnd10W()
	}
	return v
}

// rndNat returns a normalized random nat of n limbs.
func rndNat(n int) nat {
	v := rnd10V(n)
	if n > 0 && v[n-1] == 0 {
		v[n-1] = 1
	}
	return v
}

func TestAdd10VW(t *testing.T) {
	td := []struct {
		i nat
		x Limb
		o nat
		c Limb
	}{
		{nat{_DMax - 1, _DMax}, 2, nat{}, 1},
		{nat{_DMax - 1, _DMax}, 1, nat{_DMax, _DMax}, 0},
		{nat{_DMax - 1, _DMax - 1}, 2, nat{0, _DMax}, 0},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := nat(nil).set(d.i)
			c := add10VW(z, z, d.x)
			z = z.norm()
			if !reflect.DeepEqual(z, d.o) || c != d.c {
				t.Fatalf("add10VW failed: expected z = %v, c = %d, got z = %v, c = %v", d.o, d.c, z, c)
			}
		})
	}
}

func TestSub10VW(t *testing.T) {
	td := []struct {
		i nat
		x Limb
		o nat
		c Limb
	}{
		{nat{0, 0}, 1, nat{_DMax, _DMax}, 1},
		{nat{1, 1}, 2, nat{_DMax, 0}, 0},
		{nat{5, 7}, 5, nat{0, 7}, 0},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := nat(nil).set(d.i)
			c := sub10VW(z, z, d.x)
			if !reflect.DeepEqual(z, d.o) || c != d.c {
				t.Fatalf("sub10VW failed: expected z = %v, c = %d, got z = %v, c = %v", d.o, d.c, z, c)
			}
		})
	}
}

func TestNeg10V(t *testing.T) {
	x := rnd10V(10)
	z := make(nat, len(x))
	b := neg10V(z, x, 0)
	// x + (-x) must wrap to zero with a carry
	s := make(nat, len(x))
	c := add10VV(s, x, z)
	if len(x.norm()) != 0 && (b != 1 || c != 1 || len(s.norm()) != 0) {
		t.Fatalf("neg10V: x = %v, -x = %v, b = %d, sum = %v, c = %d", x, z, b, s, c)
	}
}

func TestMag(t *testing.T) {
	for i := 0; i < 10000; i++ {
		n := rnd.Uint64() >> uint(rnd.Intn(64))
		d := 0
		for m := n; m != 0; m /= 10 {
			d++
		}
		if dd := mag(n); dd != d {
			t.Fatalf("mag(%d) = %d, expected %d", n, dd, d)
		}
	}
}

func TestShl10VU(t *testing.T) {
	for s := 0; s < _DW; s++ {
		x := rnd10V(8)
		z := make(nat, len(x))
		c := shl10VU(z, x, s)
		q := make(nat, len(x))
		r := shr10VU(q, z, s)
		// shifting back must restore x minus its top s digits, which are c
		top := Limb(uint64(x[len(x)-1]) / pow10(_DW-s))
		if s == 0 {
			top = 0
		}
		want := nat(nil).set(x)
		want[len(want)-1] -= Limb(uint64(top) * pow10(_DW-s))
		if c != top || r != 0 || q.norm().cmp(want.norm()) != 0 {
			t.Fatalf("shl10VU(%v, %d) = %v, %d; shr10VU = %v, %d", x, s, z, c, q, r)
		}
	}
}

func TestDiv10VWW(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := rnd10V(4)
		y := rnd10W() | 1
		z := make(nat, len(x))
		r := div10VWW(z, 0, x, y)
		// check z*y + r == x
		p := make(nat, len(x))
		c := mulAdd10VWW(p, z, uint64(y), r)
		if c != 0 || !reflect.DeepEqual(p, x) {
			t.Fatalf("div10VWW(%v, %d) = %v, %d", x, y, z, r)
		}
	}
}
