// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math_test

import (
	"strconv"
	"testing"

	"github.com/db47h/bcnum"
	"github.com/db47h/bcnum/context"
	"github.com/db47h/bcnum/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pi100 = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679"

func num(t *testing.T, s string) *bcnum.Number {
	t.Helper()
	var e bcnum.Engine
	z := new(bcnum.Number)
	require.NoError(t, e.Parse(z, s, 10))
	return z
}

func TestPi(t *testing.T) {
	for i, scale := range []int{50, 0, 5, 100, 20} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c := context.New(nil, scale)
			z := math.Pi(c, c.New())
			require.NoError(t, c.Err())
			want := pi100[:len(pi100)-100+scale]
			if scale == 0 {
				want = "3"
			}
			assert.Equal(t, want, z.String())
			assert.Equal(t, scale, z.Scale())
		})
	}
}

func TestExp(t *testing.T) {
	for i, tt := range []struct {
		x     string
		scale int
		want  string
	}{
		{"0", 5, "1.00000"},
		{"1", 50, "2.71828182845904523536028747135266249775724709369995"},
		{"-1", 20, "0.36787944117144232159"},
		{"10", 20, "22026.46579480671651695790"},
		{"0.5", 30, "1.648721270700128146848650787814"},
		{"-20", 30, "0.000000002061153622438557827965"},
		{"2.5", 0, "12"},
		{"100", 10, "26881171418161354484126255515800135873611118.7737419224"},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c := context.New(nil, tt.scale)
			x := num(t, tt.x)
			z := math.Exp(c, c.New(), x)
			require.NoError(t, c.Err())
			assert.Equal(t, tt.want, z.String())
			assert.Equal(t, tt.x, x.String(), "argument modified")
		})
	}
}

func TestLog(t *testing.T) {
	for i, tt := range []struct {
		x     string
		scale int
		want  string
	}{
		{"2", 50, "0.69314718055994530941723212145817656807550013436025"},
		{"0.5", 20, "-0.69314718055994530941"},
		{"10", 30, "2.302585092994045684017991454684"},
		{"1", 10, "0"},
		{"1000000", 20, "13.81551055796427410410"},
		{"0.001", 25, "-6.9077552789821370520539743"},
		{"2.718281828", 15, "0.999999999831126"},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			c := context.New(nil, tt.scale)
			z := math.Log(c, c.New(), num(t, tt.x))
			require.NoError(t, c.Err())
			assert.Equal(t, tt.want, z.String())
		})
	}
}

func TestLogExp(t *testing.T) {
	c := context.New(nil, 30)
	tol := num(t, "0.000000000000000000000000001")
	for _, s := range []string{"0.1", "1.5", "-3.25", "7", "42.42"} {
		x := num(t, s)
		z := math.Log(c, c.New(), math.Exp(c, c.New(), x))
		require.NoError(t, c.Err(), s)
		d := c.Abs(c.New(), c.Sub(c.New(), z, x))
		assert.LessOrEqual(t, d.Cmp(tol), 0, "ln(exp(%s)) = %s", s, z)
	}
}

func TestErrors(t *testing.T) {
	c := context.New(nil, 10)
	z := c.NewInt64(7)

	math.Log(c, z, num(t, "-2"))
	err := c.Err()
	assert.True(t, math.Error.Has(err), "%v", err)
	assert.True(t, bcnum.ErrNegative.Has(err), "%v", err)
	assert.Equal(t, "7", z.String())

	math.Log(c, z, c.New())
	assert.True(t, math.Error.Has(c.Err()))

	math.Exp(c, z, num(t, "100000000"))
	assert.True(t, bcnum.ErrOverflow.Has(c.Err()))
	math.Exp(c, z, num(t, "123456789012345678901234567890"))
	assert.True(t, bcnum.ErrOverflow.Has(c.Err()))

	// sticky
	c.Div(z, z, c.New())
	math.Pi(c, z)
	math.Exp(c, z, z)
	assert.Equal(t, "7", z.String())
	assert.True(t, bcnum.ErrDivideByZero.Has(c.Err()))
}

func TestInterrupt(t *testing.T) {
	e := bcnum.New(bcnum.Config{})
	c := context.New(e, 2000)
	e.Interrupt()
	math.Log(c, c.New(), num(t, "3"))
	assert.True(t, bcnum.ErrInterrupted.Has(c.Err()))
}

func BenchmarkExp(b *testing.B) {
	for _, scale := range []int{100, 1000} {
		b.Run(strconv.Itoa(scale), func(b *testing.B) {
			c := context.New(nil, scale)
			x, z := c.NewString("3.73"), c.New()
			for i := 0; i < b.N; i++ {
				math.Exp(c, z, x)
			}
		})
	}
}

func BenchmarkLog(b *testing.B) {
	for _, scale := range []int{100, 1000} {
		b.Run(strconv.Itoa(scale), func(b *testing.B) {
			c := context.New(nil, scale)
			x, z := c.NewString("3.73"), c.New()
			for i := 0; i < b.N; i++ {
				math.Log(c, z, x)
			}
		})
	}
}
