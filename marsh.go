// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Numbers.

package bcnum

import (
	"encoding/binary"
	"fmt"
	"strings"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// Binary codec version. Permits backward-compatible changes to the
// encoding.
const numberBinaryVersion byte = 1

var (
	_ msgpack.CustomEncoder = (*Number)(nil)
	_ msgpack.CustomDecoder = (*Number)(nil)
)

// MarshalBinary implements the encoding.BinaryMarshaler interface.
//
// The layout is a version byte, a flags byte (bit 0 is the sign), the
// scale as a big-endian uint32, then the limbs, least significant first,
// as big-endian uint32s.
func (x *Number) MarshalBinary() ([]byte, error) {
	scale, err := safecast.Conv[uint32](x.scale)
	if err != nil {
		return nil, Error.Wrap(ErrOverflow.New("scale %d", x.scale))
	}
	buf := make([]byte, 6+4*len(x.num))
	buf[0] = numberBinaryVersion
	if x.neg {
		buf[1] = 1
	}
	binary.BigEndian.PutUint32(buf[2:], scale)
	for i, w := range x.num {
		binary.BigEndian.PutUint32(buf[6+4*i:], uint32(w))
	}
	return buf, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (z *Number) UnmarshalBinary(buf []byte) error {
	if len(buf) == 0 {
		*z = Number{}
		return nil
	}
	if buf[0] != numberBinaryVersion {
		return fmt.Errorf("Number.UnmarshalBinary: encoding version %d not supported", buf[0])
	}
	if len(buf) < 6 || (len(buf)-6)%4 != 0 {
		return fmt.Errorf("Number.UnmarshalBinary: invalid length %d", len(buf))
	}
	scale, err := safecast.Conv[int](binary.BigEndian.Uint32(buf[2:]))
	if err != nil {
		return Error.Wrap(ErrOverflow.New("scale"))
	}
	limbs := make([]Limb, (len(buf)-6)/4)
	for i := range limbs {
		limbs[i] = Limb(binary.BigEndian.Uint32(buf[6+4*i:]))
	}
	return z.setLimbs(limbs, scale, buf[1]&1 != 0)
}

// setLimbs is SetBits with an error instead of a panic for limbs out of
// range.
func (z *Number) setLimbs(limbs []Limb, scale int, neg bool) error {
	for _, w := range limbs {
		if w > _DMax {
			return Error.Wrap(ErrBadString.New("limb %d out of range", w))
		}
	}
	z.SetBits(limbs, scale, neg)
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The number
// is marshaled in decimal with its full scale.
func (x *Number) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return []byte(x.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Text is read as by Parse in base 10 without engine state: an Engine
// only matters there for non-decimal bases and strict digits.
func (z *Number) UnmarshalText(text []byte) error {
	s := string(text)
	digits := strings.TrimPrefix(s, "-")
	if digits == "" || !validNumber(digits) {
		err := Error.Wrap(ErrBadString.New("%q", s))
		return fmt.Errorf("bcnum: cannot unmarshal %q into a *bcnum.Number (%w)", text, err)
	}
	var t Number
	if len(digits) == 1 && digits != "." {
		t.num = t.num.setUint64(uint64(digitValue(digits[0])))
	} else {
		parseDecimal(&t, digits)
	}
	t.neg = len(digits) < len(s) && !t.IsZero()
	*z = t
	return nil
}

// EncodeMsgpack implements the msgpack.CustomEncoder interface. A Number
// is encoded as an array of its sign, scale and limbs.
func (x *Number) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(3); err != nil {
		return err
	}
	if err := enc.EncodeBool(x.neg); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(x.scale)); err != nil {
		return err
	}
	if err := enc.EncodeArrayLen(len(x.num)); err != nil {
		return err
	}
	for _, w := range x.num {
		if err := enc.EncodeUint(uint64(w)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack implements the msgpack.CustomDecoder interface.
func (z *Number) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 3 {
		return Error.New("msgpack: expected an array of 3 elements, got %d", n)
	}
	neg, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	scale, err := dec.DecodeInt()
	if err != nil {
		return err
	}
	if scale < 0 {
		return Error.Wrap(ErrScale.New("%d", scale))
	}
	n, err = dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n < 0 {
		n = 0
	}
	limbs := make([]Limb, n)
	for i := range limbs {
		w, err := dec.DecodeUint32()
		if err != nil {
			return err
		}
		limbs[i] = Limb(w)
	}
	return z.setLimbs(limbs, scale, neg)
}
