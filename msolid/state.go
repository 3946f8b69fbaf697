// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosimo/ten"
)

// SymTol is the tolerance, relative to its norm, for the symmetry of the elastic tensor of a state
var SymTol = 1e-10

// State holds the history of one material point, as committed by the last increment
type State struct {
	Be   ten.Tensor2 // elastic left Cauchy-Green tensor (symmetric positive-definite)
	Epsp float64     // accumulated equivalent plastic strain
	F    ten.Tensor2 // deformation gradient at the last increment
}

// NewState allocates a state at the undeformed configuration: Be = F = I and Epsp = 0
func NewState() *State {
	return &State{Be: ten.I2(), F: ten.I2()}
}

// Set copies states
func (o *State) Set(other *State) {
	o.Be = other.Be
	o.Epsp = other.Epsp
	o.F = other.F
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := new(State)
	other.Set(o)
	return other
}

// Check checks whether this state could have been produced by an increment
func (o *State) Check() (err error) {
	if !(o.Epsp >= 0) {
		return newError(ErrValidation, -1, nil, "epsp = %g must be non-negative", o.Epsp)
	}
	if _, err = ten.DetTol(&o.F, ten.DetZero); err != nil {
		return newError(ErrDomain, -1, err, "invalid deformation gradient")
	}
	if !(ten.Det(&o.F) > 0) {
		return newError(ErrDomain, -1, nil, "det(F) = %g must be positive", ten.Det(&o.F))
	}
	tol := SymTol * ten.Norm(&o.Be)
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if math.Abs(o.Be[i][j]-o.Be[j][i]) > tol {
				return newError(ErrDomain, -1, nil, "elastic tensor is not symmetric: Be[%d][%d] = %g and Be[%d][%d] = %g", i, j, o.Be[i][j], j, i, o.Be[j][i])
			}
		}
	}
	if _, err = ten.Log(&o.Be); err != nil {
		return newError(ErrDomain, -1, err, "invalid elastic tensor")
	}
	return
}
