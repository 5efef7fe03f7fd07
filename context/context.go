// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides bc style evaluation contexts for Numbers.
//
// A Context carries the three registers of a bc session: the scale used by
// operations that need one, the input base used to read numbers and the
// output base used to print them. It wraps a *bcnum.Engine that performs
// the actual arithmetic.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *bcnum.Number
//
// create a new bcnum.Number set to the value of x.
//
// Operators that set a receiver z to function of other arguments like:
//
//	func (c *Context) UnaryOp(z, x *bcnum.Number) *bcnum.Number
//	func (c *Context) BinaryOp(z, x, y *bcnum.Number) *bcnum.Number
//
// set z to the result of the operation at c's scale and return z.
//
// A Context catches errors: if an operation fails, z is left untouched and
// further operations with the context are no-ops (they simply return the
// receiver z) until (*Context).Err is called to check for errors. This
// allows chaining a sequence of operations and checking for errors once.
package context

import (
	"strings"

	"github.com/db47h/bcnum"
)

// Default registers of a new Context.
const (
	DefaultScale = 0
	DefaultBase  = 10
)

// A Context is a wrapper around an Engine that keeps track of the scale and
// bases of a computation, and of its first error.
type Context struct {
	e     *bcnum.Engine
	scale int
	ibase int
	obase int
	err   error
}

// New creates a new context using engine e with the given scale and
// decimal input and output bases. If e is nil, a new Engine with the
// default configuration is used.
func New(e *bcnum.Engine, scale int) *Context {
	if e == nil {
		e = new(bcnum.Engine)
	}
	c := &Context{e: e, ibase: DefaultBase, obase: DefaultBase}
	return c.SetScale(scale)
}

// Derive returns a new context sharing c's engine and bases, with the
// given scale and no error.
func (c *Context) Derive(scale int) *Context {
	d := &Context{e: c.e, ibase: c.ibase, obase: c.obase}
	return d.SetScale(scale)
}

// Engine returns the engine of c.
func (c *Context) Engine() *bcnum.Engine {
	return c.e
}

// Scale returns the scale of c.
func (c *Context) Scale() int {
	return c.scale
}

// SetScale sets c's scale and returns c. A negative scale is set to 0.
func (c *Context) SetScale(scale int) *Context {
	c.scale = max(scale, 0)
	return c
}

// Ibase returns the input base of c.
func (c *Context) Ibase() int {
	return c.ibase
}

// SetIbase sets c's input base and returns c. The base is clamped to
// [bcnum.MinBase, bcnum.MaxInBase].
func (c *Context) SetIbase(base int) *Context {
	c.ibase = min(max(base, bcnum.MinBase), bcnum.MaxInBase)
	return c
}

// Obase returns the output base of c.
func (c *Context) Obase() int {
	return c.obase
}

// SetObase sets c's output base and returns c. The base is clamped to
// [bcnum.MinBase, bcnum.MaxOutBase].
func (c *Context) SetObase(base int) *Context {
	c.obase = min(max(base, bcnum.MinBase), bcnum.MaxOutBase)
	return c
}

// Err returns the first error encountered since the last call to Err and
// clears the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// Do runs f unless c is in an error state and records the error it returns.
// It returns z. Do lets other packages build operations that follow the
// error handling rules of c.
func (c *Context) Do(z *bcnum.Number, f func() error) *bcnum.Number {
	if c.err != nil {
		return z
	}
	if err := f(); err != nil {
		c.err = err
	}
	return z
}

// New returns a new bcnum.Number with value 0.
func (c *Context) New() *bcnum.Number {
	return new(bcnum.Number)
}

// NewInt64 returns a new *bcnum.Number set to the value of x.
func (c *Context) NewInt64(x int64) *bcnum.Number {
	return c.New().SetInt64(x)
}

// NewString returns a new *bcnum.Number set to the value of s read in c's
// input base. If s is not a valid number, the returned value is 0 and the
// error is recorded.
func (c *Context) NewString(s string) *bcnum.Number {
	z := c.New()
	return c.Do(z, func() error { return c.e.Parse(z, s, c.ibase) })
}

// Add sets z to the sum x+y and returns z.
func (c *Context) Add(z, x, y *bcnum.Number) *bcnum.Number {
	return c.Do(z, func() error { return c.e.Add(z, x, y, c.scale) })
}

// Sub sets z to the difference x-y and returns z.
func (c *Context) Sub(z, x, y *bcnum.Number) *bcnum.Number {
	return c.Do(z, func() error { return c.e.Sub(z, x, y, c.scale) })
}

// Mul sets z to the product x×y and returns z.
func (c *Context) Mul(z, x, y *bcnum.Number) *bcnum.Number {
	return c.Do(z, func() error { return c.e.Mul(z, x, y, c.scale) })
}

// Div sets z to the quotient x/y truncated to c's scale and returns z.
func (c *Context) Div(z, x, y *bcnum.Number) *bcnum.Number {
	return c.Do(z, func() error { return c.e.Div(z, x, y, c.scale) })
}

// Rem sets z to the remainder of x/y at c's scale and returns z.
func (c *Context) Rem(z, x, y *bcnum.Number) *bcnum.Number {
	return c.Do(z, func() error { return c.e.Rem(z, x, y, c.scale) })
}

// Pow sets z to x**y and returns z.
func (c *Context) Pow(z, x, y *bcnum.Number) *bcnum.Number {
	return c.Do(z, func() error { return c.e.Pow(z, x, y, c.scale) })
}

// Sqrt sets z to the square root of x and returns z.
func (c *Context) Sqrt(z, x *bcnum.Number) *bcnum.Number {
	return c.Do(z, func() error { return c.e.Sqrt(z, x, c.scale) })
}

// ModExp sets z to x**y mod m and returns z.
func (c *Context) ModExp(z, x, y, m *bcnum.Number) *bcnum.Number {
	return c.Do(z, func() error { return c.e.ModExp(z, x, y, m) })
}

// Inv sets z to 1/x and returns z.
func (c *Context) Inv(z, x *bcnum.Number) *bcnum.Number {
	return c.Do(z, func() error { return c.e.Inv(z, x, c.scale) })
}

// Neg sets z to -x and returns z.
func (c *Context) Neg(z, x *bcnum.Number) *bcnum.Number {
	if c.err != nil {
		return z
	}
	return z.Neg(x)
}

// Abs sets z to |x| and returns z.
func (c *Context) Abs(z, x *bcnum.Number) *bcnum.Number {
	if c.err != nil {
		return z
	}
	return z.Abs(x)
}

// Text returns the representation of x in c's output base. If c is in an
// error state or printing fails, it returns an empty string.
func (c *Context) Text(x *bcnum.Number) string {
	var sb strings.Builder
	c.Do(x, func() error { return c.e.Print(&sb, x, c.obase) })
	if c.err != nil {
		return ""
	}
	return sb.String()
}
