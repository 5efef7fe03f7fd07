// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bcnum implements the arbitrary-precision decimal arithmetic of POSIX
bc: signed numbers with a fixed number of digits after the point, the scale.

Numbers are stored in a little-endian slice of limbs of 9 decimal digits
each. All arithmetic is performed directly in base 10**9 without conversion
to/from binary. The integer part is unbounded and results are truncated, never
rounded, to the scale the operation asks for.

The zero value for a Number corresponds to 0 with a scale of 0. Thus, new
values can be declared in the usual ways and denote 0 without further
initialization:

	x := new(bcnum.Number) // x is a *Number of value 0

Arithmetic is performed by an Engine, which owns a pool of buffers, per-base
conversion constants and an interrupt flag. The zero value of an Engine is
ready to use:

	var e bcnum.Engine
	x, y := new(bcnum.Number), new(bcnum.Number)
	e.Parse(x, "1", 10)
	e.Parse(y, "3", 10)
	e.Div(x, x, y, 5) // x = 0.33333

Operations are represented as methods of the form:

	func (e *Engine) Unary(z, x *Number, scale int) error     // z = unary x
	func (e *Engine) Binary(z, x, y *Number, scale int) error // z = x binary y

The result z may be one of the operands. If an operation fails, z is left
untouched and the returned error belongs to one of the error classes of the
package, for instance:

	if err := e.Div(z, x, zero, 0); bcnum.ErrDivideByZero.Has(err) {
		...
	}

The scale of a result follows the rules of bc: sums keep the largest operand
scale, products at most the sum of the operand scales, and quotients the
requested scale. Each operation documents its own rule.

Methods that cannot fail, such as comparisons, predicates and scale changes,
are methods of Number:

	func (x *Number) Cmp(y *Number) int
	func (z *Number) Truncate(places int) *Number

Conversions between strings and numbers support input bases 2 to 36 and
output bases 2 to 10**9, as well as scientific and engineering notation.

The context package wraps an Engine with the scale and bases of a bc session
and defers error checks; the math package builds π, e**x and ln(x) on top of
it.
*/
package bcnum
