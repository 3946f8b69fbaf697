// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosimo/ten"
)

// Point implements one material point with its own history
type Point struct {
	Law   Law    // constitutive law
	Prms  Params // material parameters
	State State  // committed history
	trial Trial  // last trial
	ok    bool   // trial is available for an increment
}

// NewPoint returns a new point at the undeformed configuration
func NewPoint(law Law, prms dbf.Params) (o *Point, err error) {
	if law != Elastic && law != LinearHardening {
		return nil, newError(ErrConfiguration, -1, nil, "law %v cannot be assigned", law)
	}
	o = &Point{Law: law, State: *NewState()}
	if err = o.Prms.Init(law, prms); err != nil {
		return nil, newError(ErrValidation, -1, err, "")
	}
	return
}

// SetDefGrad evaluates the point at the trial deformation gradient F.
// The committed history is not modified; calling it again with the same F gives the same results.
//  tangent -- also compute the consistent tangent
func (o *Point) SetDefGrad(F *ten.Tensor2, tangent bool) (err error) {
	o.ok = false
	if o.Law != Elastic && o.Law != LinearHardening {
		return newError(ErrConfiguration, -1, nil, "point has not been assigned")
	}
	o.trial, err = Update(o.Law, &o.Prms, &o.State, F, tangent)
	if err != nil {
		return newError(ErrDomain, -1, err, "")
	}
	o.ok = true
	return
}

// DefGrad returns the last trial deformation gradient
func (o *Point) DefGrad() ten.Tensor2 { return o.trial.F }

// Stress returns the Cauchy stress at the last trial
func (o *Point) Stress() ten.Tensor2 { return o.trial.Sig }

// Kirchhoff returns the Kirchhoff stress at the last trial
func (o *Point) Kirchhoff() ten.Tensor2 { return o.trial.Tau }

// Tangent returns the consistent tangent at the last trial
func (o *Point) Tangent() ten.Tensor4 { return o.trial.C }

// Epsp returns the committed equivalent plastic strain
func (o *Point) Epsp() float64 { return o.State.Epsp }

// Loading returns true if the last trial involved plastic loading
func (o *Point) Loading() bool { return o.trial.Loading() }

// Increment commits the last trial to the history
func (o *Point) Increment() (err error) {
	if !o.ok {
		return newError(ErrState, -1, nil, "increment requires a successful SetDefGrad since creation or the last increment")
	}
	o.State.F = o.trial.F
	o.State.Be = o.trial.Be
	o.State.Epsp = o.trial.Epsp
	o.ok = false
	return
}
