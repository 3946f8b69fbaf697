// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/gosimo/ten"
)

// path kinds
const (
	PathIsochoric  = "isochoric"  // F = diag(1+γ, 1/(1+γ), 1)
	PathShear      = "shear"      // F = I + γ e0⊗e1
	PathVolumetric = "volumetric" // F = (1+γ) I
	PathList       = "list"       // given deformation gradients
)

// Path holds a sequence of deformation gradients applied to all points
type Path struct {
	Kind string        // kind of path
	Gam  []float64     // γ: path parameter of each increment (nil for lists)
	F    []ten.Tensor2 // deformation gradients
}

// Size returns the number of increments
func (o *Path) Size() int { return len(o.F) }

// Set sets a path of a given kind with ninc increments from γ = 0 to γ = gmax
func (o *Path) Set(kind string, gmax float64, ninc int) (err error) {
	if ninc < 2 {
		return chk.Err("path: number of increments must be at least 2. ninc = %d is invalid", ninc)
	}
	var fcn func(γ float64) ten.Tensor2
	switch kind {
	case PathIsochoric:
		if !(gmax > -1) {
			return chk.Err("path: isochoric path requires γ > -1. gmax = %g is invalid", gmax)
		}
		fcn = func(γ float64) (F ten.Tensor2) {
			F[0][0], F[1][1], F[2][2] = 1+γ, 1/(1+γ), 1
			return
		}
	case PathShear:
		fcn = func(γ float64) (F ten.Tensor2) {
			F = ten.I2()
			F[0][1] = γ
			return
		}
	case PathVolumetric:
		if !(gmax > -1) {
			return chk.Err("path: volumetric path requires γ > -1. gmax = %g is invalid", gmax)
		}
		fcn = func(γ float64) (F ten.Tensor2) {
			F[0][0], F[1][1], F[2][2] = 1+γ, 1+γ, 1+γ
			return
		}
	default:
		return chk.Err("path: kind %q is not available. options: %q, %q, %q", kind, PathIsochoric, PathShear, PathVolumetric)
	}
	o.Kind = kind
	o.Gam = utl.LinSpace(0, gmax, ninc)
	o.F = make([]ten.Tensor2, ninc)
	for i, γ := range o.Gam {
		o.F[i] = fcn(γ)
	}
	return
}

// SetList sets a path with given deformation gradients
func (o *Path) SetList(F []ten.Tensor2) (err error) {
	if len(F) < 1 {
		return chk.Err("path: list of deformation gradients must not be empty")
	}
	for i := range F {
		if _, err = ten.DetTol(&F[i], ten.DetZero); err != nil {
			return chk.Err("path: deformation gradient %d is invalid: %v", i, err)
		}
	}
	o.Kind = PathList
	o.Gam = nil
	o.F = make([]ten.Tensor2, len(F))
	copy(o.F, F)
	return
}
