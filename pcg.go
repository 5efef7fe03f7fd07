// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"crypto/rand"
	"encoding/binary"
	"math/bits"
)

// PCG-XSL-RR 128/64 multiplier.
const (
	pcgMulHi = 0x2360ED051FC65DA4
	pcgMulLo = 0x4385DF649FCCF645
)

// RNG is a PCG-XSL-RR 128/64 pseudo random number generator: a 128 bits
// linear congruential state with a 128 bits odd increment, and 64 bits
// outputs made of the xor of the state halves rotated by its top six bits.
//
// The zero value is an unseeded generator that seeds itself from the
// system entropy source on first use. RNG implements the Source interface
// of math/rand/v2.
type RNG struct {
	hi, lo   uint64 // state
	ihi, ilo uint64 // increment, always odd
	seeded   bool
}

// NewRNG returns a generator seeded with the given state and increment
// words.
func NewRNG(s1, s2, i1, i2 uint64) *RNG {
	r := new(RNG)
	r.Seed(s1, s2, i1, i2)
	return r
}

// Seed sets the state of r to s2*2**64 + s1 and its increment to
// (i2*2**64 + i1)*2 + 1. The top bit of i2 is lost.
func (r *RNG) Seed(s1, s2, i1, i2 uint64) {
	r.lo, r.hi = s1, s2
	r.ilo = i1<<1 | 1
	r.ihi = i2<<1 | i1>>63
	r.seeded = true
}

// State returns the words that would reseed r to its current state, as
// passed to Seed.
func (r *RNG) State() (s1, s2, i1, i2 uint64) {
	r.ensureSeeded()
	return r.lo, r.hi, r.ilo>>1 | r.ihi<<63, r.ihi >> 1
}

func (r *RNG) ensureSeeded() {
	if r.seeded {
		return
	}
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err) // crypto/rand.Read does not fail on supported platforms
	}
	r.Seed(binary.LittleEndian.Uint64(b[:]), binary.LittleEndian.Uint64(b[8:]),
		binary.LittleEndian.Uint64(b[16:]), binary.LittleEndian.Uint64(b[24:]))
}

func (r *RNG) step() {
	hi, lo := bits.Mul64(r.lo, pcgMulLo)
	hi += r.hi*pcgMulLo + r.lo*pcgMulHi
	var c uint64
	r.lo, c = bits.Add64(lo, r.ilo, 0)
	r.hi, _ = bits.Add64(hi, r.ihi, c)
}

// Uint64 advances the generator and returns 64 random bits.
func (r *RNG) Uint64() uint64 {
	r.ensureSeeded()
	r.step()
	return bits.RotateLeft64(r.hi^r.lo, -int(r.hi>>58))
}

// Bounded returns a uniform random number in [0, bound). bound must not be
// zero.
func (r *RNG) Bounded(bound uint64) uint64 {
	threshold := -bound % bound
	for {
		if v := r.Uint64(); v >= threshold {
			return v % bound
		}
	}
}
