// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcnum

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("bcnum")

// Error classes. Use the class Has method to test an error, e.g.:
//
//	if bcnum.ErrDivideByZero.Has(err) { ... }
var (
	ErrDivideByZero = errs.Class("divide by zero")
	ErrNegative     = errs.Class("negative number")
	ErrNonInteger   = errs.Class("non-integer number")
	ErrOverflow     = errs.Class("number cannot fit")
	ErrAllocation   = errs.Class("could not allocate memory")
	ErrBadString    = errs.Class("bad number string")
	ErrBase         = errs.Class("invalid base")
	ErrInterrupted  = errs.Class("interrupted")
	ErrScale        = errs.Class("invalid scale")
)

// raised is the carrier for errors raised deep inside the kernels. It is
// turned back into a returned error at the Engine entry points.
type raised struct{ err error }

// fatal wraps errors that must never be returned to the caller.
type fatal struct{ err error }

func (f fatal) Error() string { return f.err.Error() }
func (f fatal) Unwrap() error { return f.err }

func raise(class *errs.Class, format string, args ...interface{}) {
	panic(raised{Error.Wrap(class.New(format, args...))})
}

// allocFailed panics with a fatal allocation error.
func allocFailed(n int) {
	panic(fatal{Error.Wrap(ErrAllocation.New("%d limbs", n))})
}
