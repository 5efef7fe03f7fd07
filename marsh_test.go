// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

var marshTests = []string{
	"0",
	"0.000",
	"1",
	"-1",
	"123.456",
	"-0.000000000001",
	"123456789012345678901234567890.123456789012345678901",
	"1000000000",
}

func requireSame(t *testing.T, want, got *Number) {
	t.Helper()
	require.Equal(t, 0, want.Cmp(got), "want %s, got %s", want, got)
	require.Equal(t, want.Scale(), got.Scale())
	require.Equal(t, want.String(), got.String())
}

func TestNumberBinary(t *testing.T) {
	for _, s := range marshTests {
		x := mustParse(s)
		buf, err := x.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, numberBinaryVersion, buf[0])
		z := mustParse("42")
		require.NoError(t, z.UnmarshalBinary(buf))
		requireSame(t, x, z)
	}
	z := mustParse("42")
	require.NoError(t, z.UnmarshalBinary(nil))
	assert.True(t, z.IsZero())

	assert.Error(t, z.UnmarshalBinary([]byte{2, 0, 0, 0, 0, 0}))
	assert.Error(t, z.UnmarshalBinary([]byte{1, 0, 0, 0, 0, 0, 1}))
	err := z.UnmarshalBinary([]byte{1, 0, 0, 0, 0, 0, 0x3b, 0x9a, 0xca, 0x00})
	assert.True(t, ErrBadString.Has(err), "%v", err)
}

func TestNumberText(t *testing.T) {
	for _, s := range marshTests {
		x := mustParse(s)
		text, err := x.MarshalText()
		require.NoError(t, err)
		z := new(Number)
		require.NoError(t, z.UnmarshalText(text))
		requireSame(t, x, z)
	}
	var x *Number
	text, err := x.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "<nil>", string(text))
	assert.Error(t, new(Number).UnmarshalText([]byte("1..2")))
}

func TestNumberUnmarshalText(t *testing.T) {
	for i, tt := range []struct {
		in, want string
	}{
		{"-0.050", "-0.050"},
		{"-0", "0"},
		{"-.000", "0"},
		{"000123.4", "123.4"},
		{"A", "10"},
		{"1A", "19"},
		{"123456789012345678901.000000000000000001", "123456789012345678901.000000000000000001"},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := mustParse("42")
			require.NoError(t, z.UnmarshalText([]byte(tt.in)))
			assert.Equal(t, tt.want, z.String())
			requireSame(t, mustParse(tt.in), z)
		})
	}
	for _, in := range []string{"", "-", "--1", "1-", "1.2.3", "a", " 1"} {
		z := mustParse("42")
		err := z.UnmarshalText([]byte(in))
		assert.True(t, ErrBadString.Has(err), "%q: %v", in, err)
		assert.Equal(t, "42", z.String())
	}
}

func TestNumberJSON(t *testing.T) {
	type payload struct {
		Amount *Number `json:"amount"`
	}
	b, err := json.Marshal(payload{mustParse("-12.50")})
	require.NoError(t, err)
	assert.Equal(t, `{"amount":"-12.50"}`, string(b))
	var p payload
	require.NoError(t, json.Unmarshal(b, &p))
	requireSame(t, mustParse("-12.50"), p.Amount)
}

func TestNumberMsgpack(t *testing.T) {
	for _, s := range marshTests {
		x := mustParse(s)
		b, err := msgpack.Marshal(x)
		require.NoError(t, err)
		z := mustParse("42")
		require.NoError(t, msgpack.Unmarshal(b, z))
		requireSame(t, x, z)
	}

	type record struct {
		Name  string
		Value *Number
	}
	b, err := msgpack.Marshal(record{"pi", mustParse("3.14159")})
	require.NoError(t, err)
	var r record
	require.NoError(t, msgpack.Unmarshal(b, &r))
	assert.Equal(t, "pi", r.Name)
	requireSame(t, mustParse("3.14159"), r.Value)

	b, err = msgpack.Marshal([]interface{}{false, -1, []uint32{}})
	require.NoError(t, err)
	assert.True(t, ErrScale.Has(msgpack.Unmarshal(b, new(Number))))
	b, err = msgpack.Marshal([]interface{}{false, 0})
	require.NoError(t, err)
	assert.Error(t, msgpack.Unmarshal(b, new(Number)))
}
