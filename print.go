// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Number to string conversion.

package bcnum

import (
	"io"
	"strings"

	"fortio.org/safecast"
)

// Output base limits.
const (
	MinBase     = 2
	MaxOutBase  = _DB
	MaxInBase   = 36
	streamBase  = 256
	hexMaxBase  = 16
	hexDigitSet = "0123456789ABCDEF"
)

// baseConst holds the conversion constants of an output base: pow is the
// largest power of the base that fits a limb, exp its exponent and rem is
// _DB - pow.
type baseConst struct {
	pow, exp, rem uint64
}

func (e *Engine) baseConst(base uint32) *baseConst {
	if c, ok := e.bases.Get(base); ok {
		return c
	}
	c := &baseConst{pow: 1}
	for c.pow*uint64(base) <= _DB {
		c.pow *= uint64(base)
		c.exp++
	}
	c.rem = _DB - c.pow
	e.bases.Add(base, c)
	e.log.Debug("base constants", "base", base, "pow", c.pow, "exp", c.exp)
	return c
}

// fold rewrites the limbs of x, in place, as digits in base c.pow.
func (c *baseConst) fold(x nat) nat {
	for i := 0; i < len(x); i++ {
		x = c.fixup(x, i)
	}
	pow := Limb(c.pow)
	for i := 0; i < len(x); i++ {
		if x[i] >= pow {
			if i+1 == len(x) {
				x = append(x, 0)
			}
			x[i+1] += x[i] / pow
			x[i] %= pow
		}
	}
	return x
}

// fixup folds x[idx:] from the top, moving the excess of each limb over
// c.pow down one position.
func (c *baseConst) fixup(x nat, idx int) nat {
	a := x[idx:]
	l := len(a)
	if l < 2 {
		return x
	}
	for i := l - 1; i > 0; i-- {
		acc := uint64(a[i])*c.rem + uint64(a[i-1])
		a[i-1] = Limb(acc % c.pow)
		acc = acc/c.pow + uint64(a[i])
		if acc >= _DB {
			if i == l-1 {
				x = append(x, 0)
				a = x[idx:]
				l++
			}
			a[i+1] += Limb(acc / _DB)
			acc %= _DB
		}
		a[i] = Limb(acc)
	}
	return x
}

// printer writes to a byte sink, raising write errors.
type printer struct {
	w io.ByteWriter
}

func (p printer) put(c byte) {
	if err := p.w.WriteByte(c); err != nil {
		panic(raised{Error.Wrap(err)})
	}
}

// digitFunc prints a single digit of the output base. radix is set for the
// first fractional digit.
type digitFunc func(p printer, d uint64, width int, radix bool)

func hexDigit(p printer, d uint64, _ int, radix bool) {
	if radix {
		p.put('.')
	}
	p.put(hexDigitSet[d])
}

// groupDigit prints a digit of a base larger than 16 as a space separated
// group of decimal digits.
func groupDigit(p printer, d uint64, width int, radix bool) {
	if radix {
		p.put('.')
	} else {
		p.put(' ')
	}
	for i := width - 1; i >= 0; i-- {
		p.put(byte('0' + d/pow10(i)%10))
	}
}

func rawDigit(p printer, d uint64, _ int, _ bool) {
	p.put(byte(d))
}

// Print writes x to w in the given base, 2 <= base <= 10**9.
//
// Bases up to 16 use the digits 0-9A-F. Larger bases print each digit as a
// space separated, zero padded, decimal number. In bases other than 10 the
// fraction is printed with as many digits as needed to represent the scale
// of x.
func (e *Engine) Print(w io.ByteWriter, x *Number, base int) (err error) {
	defer e.recover(&err)
	e.init()
	b := checkBase(base, MaxOutBase)
	e.print(printer{w}, x, b)
	return nil
}

// Text returns the representation of x in the given base.
func (e *Engine) Text(x *Number, base int) (string, error) {
	var sb strings.Builder
	if err := e.Print(&sb, x, base); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// String returns the decimal representation of x.
func (x *Number) String() string {
	var sb strings.Builder
	printDecimal(printer{&sb}, x, false)
	return sb.String()
}

func checkBase(base, maxBase int) uint32 {
	if base < MinBase || base > maxBase {
		raise(&ErrBase, "%d not in [%d, %d]", base, MinBase, maxBase)
	}
	b, err := safecast.Conv[uint32](base)
	if err != nil {
		raise(&ErrBase, "%d", base)
	}
	return b
}

func (e *Engine) print(p printer, x *Number, base uint32) {
	switch {
	case x.IsZero():
		p.put('0')
	case base == 10:
		printDecimal(p, x, e.cfg.OmitLeadingZero)
	default:
		if x.neg {
			p.put('-')
		}
		if base <= hexMaxBase {
			e.printNum(p, x, base, 1, hexDigit)
		} else {
			e.printNum(p, x, base, mag(uint64(base-1)), groupDigit)
		}
	}
}

// printDecimal prints the limbs of x directly, with exactly x.scale
// fractional digits.
func printDecimal(p printer, x *Number, omitLeadingZero bool) {
	if x.IsZero() {
		p.put('0')
		return
	}
	if x.neg {
		p.put('-')
	}
	ip := nat(x.num[x.rdx:])
	if len(ip) == 0 {
		if !omitLeadingZero {
			p.put('0')
		}
	} else {
		top := len(ip) - 1
		putLimb(p, ip[top], mag(uint64(ip[top])))
		for i := top - 1; i >= 0; i-- {
			putLimb(p, ip[i], _DW)
		}
	}
	if x.scale == 0 {
		return
	}
	p.put('.')
	n := x.scale
	for i := x.rdx - 1; i >= 0 && n > 0; i-- {
		d := min(n, _DW)
		putLimb(p, x.num[i]/Limb(pow10(_DW-d)), d)
		n -= d
	}
}

// putLimb prints the n low digits of w, zero padded.
func putLimb(p printer, w Limb, n int) {
	for i := n - 1; i >= 0; i-- {
		p.put(byte('0' + w/Limb(pow10(i))%10))
	}
}

// printNum prints |x| in base b: the integer part by folding its limbs
// into base b**exp chunks, the fraction by repeated multiplication.
func (e *Engine) printNum(p printer, x *Number, b uint32, width int, put digitFunc) {
	base := uint64(b)
	bc := e.baseConst(b)

	ip := e.getNat(x.intLen())
	defer e.putNat(ip)
	copy(ip, x.num[x.rdx:])
	if bc.rem != 0 {
		ip = bc.fold(ip)
	}

	var digs []uint64
	for i, w := range ip {
		acc := uint64(w)
		for j := uint64(0); j < bc.exp && (i < len(ip)-1 || acc != 0); j++ {
			if j != bc.exp-1 {
				digs = append(digs, acc%base)
				acc /= base
			} else {
				digs = append(digs, acc)
				acc = 0
			}
		}
		e.check()
	}
	if len(digs) == 0 && !e.cfg.OmitLeadingZero {
		put(p, 0, width, false)
	}
	for i := len(digs) - 1; i >= 0; i-- {
		put(p, digs[i], width, false)
	}

	if x.scale == 0 {
		return
	}

	f := e.scratch(x.rdx + 2)
	defer e.release(f)
	f.num = f.num.set(x.num[:x.rdx]).norm()
	f.rdx, f.scale = x.rdx, x.scale
	f.clean()
	pw := e.getNat(1)
	defer e.putNat(pw)
	pw = pw.setUint64(1)

	radix := true
	for pw.digits() <= x.scale {
		e.check()
		var d uint64
		if !f.IsZero() {
			f.num = f.num.mulAddWW(f.num, base, 0)
			f.clean()
			d, _ = nat(f.num[f.rdx:]).uint64()
			f.num = f.num[:f.rdx]
			f.clean()
		}
		put(p, d, width, radix)
		radix = false
		pw = pw.mulAddWW(pw, base, 0)
	}
}

// PrintExp writes x to w in decimal scientific notation, or engineering
// notation if eng is set: one significant digit before the point (one to
// three in engineering notation), followed by e and the exponent.
func (e *Engine) PrintExp(w io.ByteWriter, x *Number, eng bool) (err error) {
	defer e.recover(&err)
	e.init()
	p := printer{w}
	if x.IsZero() {
		p.put('0')
		return nil
	}
	t := e.scratch(len(x.num) + 1)
	defer e.release(t)
	t.Set(x)

	frac := x.intLen() == 0
	var places int
	if frac {
		idx := len(x.num.norm()) - 1
		places = 1 + zeroDigits(x.num[idx]) + (x.rdx-idx-1)*_DW
		if m := places % 3; eng && m != 0 {
			places += 3 - m
		}
		t.shiftLeft(places)
	} else {
		places = x.intDigits() - 1
		if eng {
			places -= places % 3
		}
		t.shiftRight(places)
	}
	printDecimal(p, t, e.cfg.OmitLeadingZero)
	p.put('e')
	if places == 0 {
		p.put('0')
		return nil
	}
	if frac {
		p.put('-')
	}
	var buf [3]Limb
	exp := viewOver(buf[:])
	exp.num = exp.num.setUint64(uint64(places))
	printDecimal(p, &exp, false)
	return nil
}

// Stream writes the integer part of |x| to w as raw bytes, most significant
// first, as if printed in base 256.
func (e *Engine) Stream(w io.ByteWriter, x *Number) (err error) {
	defer e.recover(&err)
	e.init()
	p := printer{w}
	ip := nat(x.num[x.rdx:])
	if len(ip) == 0 {
		p.put(0)
		return nil
	}
	t := Number{num: ip}
	e.printNum(p, &t, streamBase, 1, rawDigit)
	return nil
}
