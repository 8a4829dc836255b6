// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package xerr is the shared error-reporting helper used by every coder
// package in ctxzip. It generalizes the Error/errRecover pair found in
// dsnet/compress's bzip2 package (bzip2/common.go) so each coder does not
// need to redeclare it.
package xerr

import "fmt"

// Error is the wrapper type for errors reported by the core coders.
type Error string

func (e Error) Error() string { return string(e) }

// Malformed builds an error for a bitstream that ends mid-symbol, mid-tree,
// mid-header, or with an inconsistent declared length.
func Malformed(format string, args ...interface{}) error {
	return Error("ctxzip: malformed input: " + fmt.Sprintf(format, args...))
}

// Throw panics with err so that a deferred Recover can turn it back into a
// returned error without unwinding through every call frame by hand.
func Throw(err error) {
	panic(err)
}

// Throwf is a convenience wrapper around Throw(Malformed(...)).
func Throwf(format string, args ...interface{}) {
	panic(Malformed(format, args...))
}

// Recover is meant to be deferred at the top of an encode/decode call:
//
//	func Decode(buf []byte) (out []byte, err error) {
//		defer xerr.Recover(&err)
//		...
//	}
//
// A panic with a plain error value is captured into *err; a runtime.Error
// panic (index out of range, nil dereference, etc.) is a bug and is
// re-panicked rather than swallowed.
func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtimeError:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// runtimeError matches the unexported runtime.Error interface.
type runtimeError interface {
	error
	RuntimeError()
}
