// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import (
	"log/slog"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Default configuration values.
const (
	DefaultKaratsubaLen  = 32
	DefaultPoolSize      = 16
	DefaultBaseCacheSize = 8
)

// Config holds the tunables of an Engine. Zero fields take their default
// values.
type Config struct {
	// KaratsubaLen is the operand length, in limbs, from which
	// multiplication switches from the schoolbook method to Karatsuba.
	KaratsubaLen int
	// PoolSize is the number of default capacity buffers kept for reuse.
	PoolSize int
	// BaseCacheSize is the number of output bases whose conversion
	// constants are memoized.
	BaseCacheSize int
	// OmitLeadingZero suppresses the 0 before the point of pure fractions.
	OmitLeadingZero bool
	// StrictDigits rejects digits not below the input base instead of
	// clamping them to base-1.
	StrictDigits bool
	// Logger receives debug and diagnostic messages. Defaults to a
	// discarding logger.
	Logger *slog.Logger
}

// An Engine owns the resources shared by the arithmetic operations: a pool
// of number buffers, the per base conversion constants and the interrupt
// flag. Every operation on Numbers is a method of Engine and is a recovery
// boundary: errors raised anywhere in the computation are returned and the
// destination is left untouched.
//
// An Engine must not be used concurrently from several goroutines, with
// the exception of Interrupt. The zero value is an Engine with the default
// configuration.
type Engine struct {
	cfg     Config
	log     *slog.Logger
	pool    []nat
	bases   *lru.Cache[uint32, *baseConst]
	pending atomic.Bool
	ready   bool
}

// New returns a new Engine with the given configuration.
func New(cfg Config) *Engine {
	e := &Engine{cfg: cfg}
	e.init()
	return e
}

func (e *Engine) init() {
	if e.ready {
		return
	}
	c := &e.cfg
	if c.KaratsubaLen <= 0 {
		c.KaratsubaLen = DefaultKaratsubaLen
	}
	if c.KaratsubaLen < 2 {
		c.KaratsubaLen = 2
	}
	if c.PoolSize <= 0 {
		c.PoolSize = DefaultPoolSize
	}
	if c.BaseCacheSize <= 0 {
		c.BaseCacheSize = DefaultBaseCacheSize
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	e.log = c.Logger
	bases, err := lru.New[uint32, *baseConst](c.BaseCacheSize)
	if err != nil {
		panic(err) // size is positive
	}
	e.bases = bases
	e.ready = true
}

// Config returns the effective configuration of e.
func (e *Engine) Config() Config {
	e.init()
	return e.cfg
}

// New returns a zero Number with room for at least hint limbs. Numbers
// returned by New should be given back with Free once no longer needed.
func (e *Engine) New(hint int) *Number {
	e.init()
	return e.scratch(hint)
}

// Free releases the storage of x to the engine's pool. x must not be used
// afterwards.
func (e *Engine) Free(x *Number) {
	e.init()
	e.release(x)
}

func (e *Engine) scratch(hint int) *Number {
	if hint < 0 {
		hint = 0
	}
	return &Number{num: e.getNat(hint)[:0], pooled: true}
}

// release returns the storage of x to the pool if the engine allocated it.
// Storage set by the caller, through SetBits or a zero Number grown by an
// operation, is dropped.
func (e *Engine) release(x *Number) {
	if x == nil {
		return
	}
	if x.pooled {
		e.putNat(x.num)
	}
	*x = Number{}
}

// getNat returns a nat of len n. The contents may not be zero.
func (e *Engine) getNat(n int) nat {
	if n <= _DefCap {
		if l := len(e.pool); l > 0 {
			z := e.pool[l-1]
			e.pool = e.pool[:l-1]
			return z[:n]
		}
		return make(nat, n, _DefCap)
	}
	if n >= 1<<16 {
		e.log.Debug("large buffer", "limbs", n)
	}
	return nat(nil).make(n)
}

func (e *Engine) putNat(x nat) {
	if cap(x) == _DefCap && len(e.pool) < e.cfg.PoolSize {
		e.pool = append(e.pool, x[:0])
	}
}

// Interrupt requests that the computation in progress stops at its next
// safe point with ErrInterrupted. It is safe to call from any goroutine,
// typically a signal handler.
func (e *Engine) Interrupt() {
	e.pending.Store(true)
}

// check is a safe point. An interrupt requested after the last safe point
// of an operation stays pending until the first one of the next.
func (e *Engine) check() {
	if e.pending.CompareAndSwap(true, false) {
		e.log.Warn("computation interrupted")
		panic(raised{Error.Wrap(ErrInterrupted.New("computation stopped"))})
	}
}

// recover converts raised errors into a returned error. Fatal errors and
// foreign panics are propagated.
func (e *Engine) recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	switch p := r.(type) {
	case raised:
		*err = p.err
	case fatal:
		e.log.Error("fatal error", "err", p.err)
		panic(p)
	default:
		panic(r)
	}
}

// commit computes a result into a scratch number with f, then swaps it
// into z. z is left unchanged if f raises an error. Nothing raises after
// the swap.
func (e *Engine) commit(z *Number, hint int, f func(t *Number)) {
	t := e.scratch(hint)
	defer e.release(t)
	f(t)
	e.check()
	z.swap(t)
}

func checkScale(scale int) {
	if scale < 0 {
		raise(&ErrScale, "%d", scale)
	}
}
