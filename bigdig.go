// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements conversions between Numbers and native integers.

package bcnum

import (
	"math"

	"fortio.org/safecast"
)

// Uint64 returns the integer part of x as a uint64. The fraction is
// ignored. It fails with ErrNegative if x is negative and ErrOverflow if
// the integer part does not fit.
func (x *Number) Uint64() (uint64, error) {
	if x.neg {
		return 0, Error.Wrap(ErrNegative.New("%s", x))
	}
	v, ok := nat(x.num[x.rdx:]).uint64()
	if !ok {
		return 0, Error.Wrap(ErrOverflow.New("%s does not fit a uint64", x))
	}
	return v, nil
}

// Int64 returns the integer part of x as an int64. It fails with
// ErrOverflow if the integer part does not fit.
func (x *Number) Int64() (int64, error) {
	u, ok := nat(x.num[x.rdx:]).uint64()
	if ok && x.neg && u == 1<<63 {
		return math.MinInt64, nil
	}
	v, err := safecast.Conv[int64](u)
	if !ok || err != nil {
		return 0, Error.Wrap(ErrOverflow.New("%s does not fit an int64", x))
	}
	if x.neg {
		v = -v
	}
	return v, nil
}

// SetUint64 sets z to v with a scale of 0 and returns z.
func (z *Number) SetUint64(v uint64) *Number {
	z.num = z.num.setUint64(v)
	z.rdx = 0
	z.scale = 0
	z.neg = false
	return z
}

// SetInt64 sets z to v with a scale of 0 and returns z.
func (z *Number) SetInt64(v int64) *Number {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	z.SetUint64(u)
	z.neg = neg
	return z
}

// bigdig returns |x| as a uint64, raising ErrOverflow if it does not fit.
func bigdig(x *Number) uint64 {
	v, ok := nat(x.num[x.rdx:]).uint64()
	if !ok {
		raise(&ErrOverflow, "%s does not fit a uint64", x)
	}
	return v
}

// intArg returns the value of the integer Number x as an int, raising the
// matching error if it is not a non-negative integer or too large.
func intArg(x *Number) int {
	if !x.IsInt() {
		raise(&ErrNonInteger, "%s", x)
	}
	if x.neg {
		raise(&ErrNegative, "%s", x)
	}
	v, err := safecast.Conv[int](bigdig(x))
	if err != nil {
		raise(&ErrOverflow, "%s does not fit an int", x)
	}
	return v
}
