// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"bytes"
	"errors"
	"math/big"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	td := []struct {
		s     string
		base  int
		out   string
		scale int
	}{
		{"123.456", 10, "123.456", 3},
		{".5", 10, "0.5", 1},
		{"-0.000", 10, "0", 3},
		{"00012.3400", 10, "12.3400", 4},
		{"1A", 10, "19", 0},
		{"Z", 10, "35", 0},
		{"-A", 10, "-10", 0},
		{".", 10, "0", 0},
		{"123456789012345678901234567890.123456789012345678901", 10, "123456789012345678901234567890.123456789012345678901", 21},
		{"FF", 16, "255", 0},
		{"1.8", 16, "1.5", 1},
		{"-10.1", 2, "-2.5", 1},
		{"0.1", 3, "0.3", 1},
		{"12", 2, "4", 0},
		{"1G", 16, "31", 0},
		{"000", 16, "0", 0},
		{"ZZ", 36, "1295", 0},
		{"10000000000000000", 16, "18446744073709551616", 0},
	}
	var e Engine
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := new(Number)
			require.NoError(t, e.Parse(z, d.s, d.base))
			assert.Equal(t, d.out, z.String())
			assert.Equal(t, d.scale, z.Scale())
		})
	}
}

func TestParseErrors(t *testing.T) {
	var e Engine
	z := mustParse("3")
	for _, s := range []string{"", "-", "1..2", "+1", "1-2", "ff", "1 2", "0x10", "--1"} {
		err := e.Parse(z, s, 10)
		assert.True(t, ErrBadString.Has(err), "%q: %v", s, err)
	}
	assert.True(t, ErrBase.Has(e.Parse(z, "1", 37)))
	assert.True(t, ErrBase.Has(e.Parse(z, "1", 1)))
	assert.Equal(t, "3", z.String())
}

func TestParseStrict(t *testing.T) {
	e := New(Config{StrictDigits: true})
	z := new(Number)
	assert.True(t, ErrBadString.Has(e.Parse(z, "12", 2)))
	assert.True(t, ErrBadString.Has(e.Parse(z, "1A", 10)))
	assert.True(t, ErrBadString.Has(e.Parse(z, "1G", 16)))
	require.NoError(t, e.Parse(z, "A", 2))
	assert.Equal(t, "10", z.String())
	require.NoError(t, e.Parse(z, "1F", 16))
	assert.Equal(t, "31", z.String())
}

func TestPrint(t *testing.T) {
	td := []struct {
		x    string
		base int
		out  string
	}{
		{"255", 16, "FF"},
		{"255", 2, "11111111"},
		{"0", 16, "0"},
		{"-10", 16, "-A"},
		{"1000000000", 16, "3B9ACA00"},
		{"1024", 100, " 10 24"},
		{"123", 1000000000, " 000000123"},
		{"0.5", 2, "0.1000"},
		{"-0.5", 2, "-0.1000"},
		{"1.5", 16, "1.8"},
		{"0.5", 10, "0.5"},
		{"-123.456", 10, "-123.456"},
		{"18446744073709551616", 16, "10000000000000000"},
		{"1000000000000000000000000000000", 8, "1447626234640431647336510000000000"},
	}
	var e Engine
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s, err := e.Text(mustParse(d.x), d.base)
			require.NoError(t, err)
			assert.Equal(t, d.out, s)
		})
	}
	_, err := e.Text(new(Number), 1)
	assert.True(t, ErrBase.Has(err))
	_, err = e.Text(new(Number), MaxOutBase+1)
	assert.True(t, ErrBase.Has(err))
}

func TestPrintOmitLeadingZero(t *testing.T) {
	e := New(Config{OmitLeadingZero: true})
	for _, d := range []struct {
		x    string
		base int
		out  string
	}{
		{"0.5", 10, ".5"},
		{"-0.25", 10, "-.25"},
		{"0", 10, "0"},
		{"0.5", 2, ".1000"},
		{"3.5", 10, "3.5"},
	} {
		s, err := e.Text(mustParse(d.x), d.base)
		require.NoError(t, err)
		assert.Equal(t, d.out, s)
	}
}

// Integers must survive a print/parse round trip in every input base that
// uses single character digits.
func TestBaseRoundTrip(t *testing.T) {
	var e Engine
	z := new(Number)
	for base := 2; base <= 16; base++ {
		for i := 0; i < 20; i++ {
			x := mustParse(rndDigits(rnd.Intn(50) + 2))
			if i&1 != 0 {
				x.Neg(x)
			}
			s, err := e.Text(x, base)
			require.NoError(t, err)
			b, _ := new(big.Int).SetString(x.String(), 10)
			require.Equal(t, strings.ToUpper(b.Text(base)), s)
			require.NoError(t, e.Parse(z, s, base))
			require.Equal(t, 0, z.Cmp(x), "base %d: %s -> %s -> %s", base, x, s, z)
		}
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	var e Engine
	z := new(Number)
	for i := 0; i < 200; i++ {
		x := rndNumber()
		s := x.String()
		require.NoError(t, e.Parse(z, s, 10))
		require.Equal(t, s, z.String())
		require.Equal(t, x.Scale(), z.Scale())
	}
}

func TestPrintExp(t *testing.T) {
	td := []struct {
		x   string
		sci string
		eng string
	}{
		{"1234", "1.234e3", "1.234e3"},
		{"12345", "1.2345e4", "12.345e3"},
		{"0.00123", "1.23e-3", "1.23e-3"},
		{"0.0123", "1.23e-2", "12.3e-3"},
		{"0.5", "5e-1", "500e-3"},
		{"5", "5e0", "5e0"},
		{"1.5", "1.5e0", "1.5e0"},
		{"-250", "-2.50e2", "-250e0"},
		{"0", "0", "0"},
		{"0.0000000000012", "1.2e-12", "1.2e-12"},
	}
	var e Engine
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			var sb strings.Builder
			require.NoError(t, e.PrintExp(&sb, mustParse(d.x), false))
			assert.Equal(t, d.sci, sb.String())
			sb.Reset()
			require.NoError(t, e.PrintExp(&sb, mustParse(d.x), true))
			assert.Equal(t, d.eng, sb.String())
		})
	}
}

func TestStream(t *testing.T) {
	td := []struct {
		x   string
		out []byte
	}{
		{"16706", []byte("AB")},
		{"1000000000.7", []byte{0x3b, 0x9a, 0xca, 0x00}},
		{"0", []byte{0}},
		{"0.5", []byte{0}},
		{"-72", []byte("H")},
		{"65536", []byte{1, 0, 0}},
	}
	var e Engine
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, e.Stream(&buf, mustParse(d.x)))
			assert.Equal(t, d.out, buf.Bytes())
		})
	}
}

var errSink = errors.New("sink full")

type failWriter struct{ n int }

func (w *failWriter) WriteByte(byte) error {
	if w.n == 0 {
		return errSink
	}
	w.n--
	return nil
}

func TestPrintWriteError(t *testing.T) {
	var e Engine
	err := e.Print(&failWriter{n: 3}, mustParse("123456"), 16)
	assert.ErrorIs(t, err, errSink)
	assert.True(t, Error.Has(err))
	err = e.PrintExp(&failWriter{n: 1}, mustParse("123456"), false)
	assert.ErrorIs(t, err, errSink)
}

func TestBaseConstCache(t *testing.T) {
	e := New(Config{BaseCacheSize: 2})
	for _, b := range []uint32{2, 3, 16, 2} {
		c := e.baseConst(b)
		assert.LessOrEqual(t, c.pow, uint64(_DB))
		assert.Greater(t, c.pow*uint64(b), uint64(_DB))
		assert.Equal(t, _DB-c.pow, c.rem)
	}
	assert.Equal(t, 2, e.bases.Len())
	assert.Equal(t, uint64(1000000000), e.baseConst(10).pow)
	assert.Equal(t, uint64(0), e.baseConst(1000).rem)
}
