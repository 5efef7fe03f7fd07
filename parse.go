// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string to Number conversion.

package bcnum

import "strings"

// Parse sets z to the value of s in the given base, 2 <= base <= 36.
//
// s consists of an optional minus sign followed by digits 0-9 and
// upper-case letters A-Z with at most one point. The scale of the result
// is the number of digits after the point. A string of a single digit is
// always read in base 36, so that A is ten whatever the base.
//
// A letter whose value is not below the base is read as base-1 unless the
// engine is configured with StrictDigits, in which case it is an error, as
// is any digit not below the base. In base 10 letters read as 9.
func (e *Engine) Parse(z *Number, s string, base int) (err error) {
	defer e.recover(&err)
	e.init()
	b := checkBase(base, MaxInBase)
	e.commit(z, len(s)/_DW+1, func(t *Number) { e.parse(t, s, b) })
	return nil
}

func validNumber(s string) bool {
	point := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			if point {
				return false
			}
			point = true
		case c >= '0' && c <= '9', c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}

func (e *Engine) parse(z *Number, s string, base uint32) {
	src := s
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if s == "" || !validNumber(s) {
		raise(&ErrBadString, "%q", src)
	}
	switch {
	case len(s) == 1 && s != ".":
		z.SetUint64(uint64(digitValue(s[0])))
	case base == 10:
		if e.cfg.StrictDigits && strings.ContainsFunc(s, isLetter) {
			raise(&ErrBadString, "%q: letter in base 10", src)
		}
		parseDecimal(z, s)
	default:
		e.parseBase(z, s, base, src)
	}
	z.neg = neg && !z.IsZero()
}

func isLetter(r rune) bool { return r >= 'A' && r <= 'Z' }

// digitValue returns the value of a digit character in base 36.
func digitValue(c byte) Limb {
	if c >= 'A' {
		return Limb(c-'A') + 10
	}
	return Limb(c - '0')
}

// parseDecimal places the digits of s directly into limbs by their
// position relative to the point.
func parseDecimal(z *Number, s string) {
	s = strings.TrimLeft(s, "0")
	scale := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		scale = len(s) - i - 1
	}
	if strings.Trim(s, "0.") == "" {
		z.setZero(scale)
		return
	}
	nd := len(s)
	if strings.Contains(s, ".") {
		nd--
	}
	// pad the fraction to whole limbs
	pad := 0
	if m := scale % _DW; m != 0 {
		pad = _DW - m
	}
	z.num = z.num.make((nd + pad + _DW - 1) / _DW)
	clear(z.num)
	exp := pad
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c == '.' {
			continue
		}
		d := Limb(9)
		if c <= '9' {
			d = Limb(c - '0')
		}
		z.num[exp/_DW] += d * Limb(pow10(exp%_DW))
		exp++
	}
	z.rdx = rdxOf(scale)
	z.scale = scale
	z.neg = false
	z.clean()
}

// parseBase accumulates the integer part as n = n*base + digit and the
// fraction as an integer over a power of the base, divided at twice the
// number of fractional digits and then truncated.
func (e *Engine) parseBase(z *Number, s string, base uint32, src string) {
	if strings.Trim(s, "0.") == "" {
		z.setZero(0)
		return
	}
	digit := func(c byte) Limb {
		d := digitValue(c)
		if d >= Limb(base) {
			if e.cfg.StrictDigits {
				raise(&ErrBadString, "%q: digit %c not in base %d", src, c, base)
			}
			if c >= 'A' {
				d = Limb(base) - 1
			}
		}
		return d
	}

	b := uint64(base)
	i := 0
	z.setZero(0)
	for ; i < len(s) && s[i] != '.'; i++ {
		z.num = z.num.mulAddWW(z.num, b, digit(s[i]))
	}
	if i == len(s) {
		return
	}

	// fraction
	num := e.scratch(len(s) / _DW)
	defer e.release(num)
	den := e.scratch(len(s) / _DW)
	defer e.release(den)
	q := e.scratch(0)
	defer e.release(q)
	t := e.scratch(len(z.num) + 1)
	defer e.release(t)

	den.num = den.num.setUint64(1)
	digs := 0
	for i++; i < len(s); i++ {
		e.check()
		num.num = num.num.mulAddWW(num.num, b, digit(s[i]))
		den.num = den.num.mulAddWW(den.num, b, 0)
		digs++
	}
	e.div(q, num, den, 2*digs)
	q.Truncate(digs)
	e.add(t, z, q, false)
	z.swap(t)
	if z.IsZero() {
		z.setZero(0)
	} else if z.scale < digs {
		z.Extend(digs - z.scale)
	}
}
