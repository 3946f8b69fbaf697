// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"errors"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// kinds of errors
var (
	// ErrConfiguration indicates a wrong assignment of laws to points (overlap, gap, sizes)
	ErrConfiguration = errors.New("msolid: configuration error")

	// ErrValidation indicates material parameters outside their valid domain
	ErrValidation = errors.New("msolid: validation error")

	// ErrDomain indicates a deformation gradient (or derived tensor) outside the domain of the law
	ErrDomain = errors.New("msolid: domain error")

	// ErrState indicates an operation called out of order (e.g. commit without evaluation)
	ErrState = errors.New("msolid: state error")
)

// Error holds an error of a given kind, possibly related to one point
//  Kind  -- one of ErrConfiguration, ErrValidation, ErrDomain or ErrState
//  Index -- index of the offending point; -1 if not related to a specific point
//  Err   -- cause; may be nil
type Error struct {
	Kind  error
	Index int
	Err   error
	msg   string
}

// newError returns a new *Error with a formatted message
func newError(kind error, index int, cause error, msg string, prms ...interface{}) *Error {
	return &Error{Kind: kind, Index: index, Err: cause, msg: chk.Err(msg, prms...).Error()}
}

// Error returns the message
func (o *Error) Error() string {
	l := o.Kind.Error()
	if o.Index >= 0 {
		l += io.Sf(": point %d", o.Index)
	}
	if o.msg != "" {
		l += ": " + o.msg
	}
	if o.Err != nil {
		l += ": " + o.Err.Error()
	}
	return l
}

// Is reports whether target is the kind of this error
func (o *Error) Is(target error) bool {
	return target == o.Kind
}

// Unwrap returns the cause
func (o *Error) Unwrap() error {
	return o.Err
}
