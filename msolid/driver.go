// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"fmt"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosimo/ten"
)

// Driver runs a path of deformation gradients through an array of points
type Driver struct {

	// input
	Arr *Array // points

	// settings
	Start   int  // first increment to run; e.g. after restoring a checkpoint
	Verbose bool // print a summary at each increment

	// check consistent tangent
	TstC *testing.T // if != nil, do check consistent tangent
	TolC float64    // tolerance for the relative linearisation error
	HC   float64    // size of the perturbation
	VerC bool       // verbose check of C

	// output
	Out func(inc int) error // if != nil, called after each commit

	// results
	Eps  []ten.Tensor2   // logarithmic strain at each increment
	Sig  [][]ten.Tensor2 // [ninc][npoints] Cauchy stresses
	Epsp [][]float64     // [ninc][npoints] equivalent plastic strains
}

// direction of perturbation used when checking tangents
var checkDF = ten.Tensor2{
	{0.3, -0.7, 0.2},
	{0.5, 0.1, -0.4},
	{-0.6, 0.8, 0.9},
}

// Init initialises driver
func (o *Driver) Init(arr *Array) (err error) {
	if arr == nil {
		return chk.Err("driver: array of points must be given")
	}
	o.Arr = arr
	o.TolC = 1e-4
	o.HC = 1e-6
	o.VerC = chk.Verbose
	return
}

// Run runs all increments of path, committing after each one
func (o *Driver) Run(pth *Path) (err error) {

	// check
	ninc := pth.Size()
	if o.Start < 0 || o.Start >= ninc {
		return chk.Err("driver: first increment (%d) must be in [0, %d)", o.Start, ninc)
	}

	// allocate results arrays
	n := o.Arr.Size()
	o.Eps = make([]ten.Tensor2, ninc)
	o.Sig = make([][]ten.Tensor2, ninc)
	o.Epsp = make([][]float64, ninc)

	// run
	F := make([]ten.Tensor2, n)
	for inc := o.Start; inc < ninc; inc++ {

		// update
		for i := 0; i < n; i++ {
			F[i] = pth.F[inc]
		}
		err = o.Arr.SetDefGrad(F, false)
		if err != nil {
			return fmt.Errorf("driver: increment %d failed: %w", inc, err)
		}

		// check consistent tangent
		if o.TstC != nil {
			o.checkTangent(inc, &pth.F[inc])
		}
		o.Sig[inc] = make([]ten.Tensor2, n)
		copy(o.Sig[inc], o.Arr.Stress())
		o.Eps[inc], err = ten.Strain(&pth.F[inc])
		if err != nil {
			return fmt.Errorf("driver: cannot compute strain at increment %d: %w", inc, err)
		}
		err = o.Arr.Commit()
		if err != nil {
			return
		}
		o.Epsp[inc] = o.Arr.PlasticStrain()

		// message
		if o.Verbose {
			io.Pf("%4d : εeq = %12.6f\n", inc, ten.Epseq(&o.Eps[inc]))
		}

		// output
		if o.Out != nil {
			err = o.Out(inc)
			if err != nil {
				return
			}
		}
	}
	return
}

// checkTangent compares the tangent of every point with a numerical linearisation
func (o *Driver) checkTangent(inc int, F *ten.Tensor2) {
	for i := 0; i < o.Arr.Size(); i++ {
		p := o.Arr.Point(i)
		η, err := LinearisationError(p, F, &checkDF, o.HC)
		if err != nil {
			o.TstC.Errorf("check of tangent failed: increment %d, point %d: %v\n", inc, i, err)
			return
		}
		if o.VerC {
			io.Pf("%4d %4d : η = %v\n", inc, i, η)
		}
		if η > o.TolC {
			o.TstC.Errorf("check of tangent failed: increment %d, point %d: η = %g > %g\n", inc, i, η, o.TolC)
			return
		}
	}
}

// LinearisationError evaluates p at F and at F + h·dF and returns the relative error of the
// increment of Kirchhoff stress predicted with the consistent tangent
//  η = ‖Δτ - Δτpred‖ / ‖Δτ‖  with  Δτpred = J C·L + L·τ  and  L = h dF·F⁻¹
//  Note: p is left evaluated at F
func LinearisationError(p *Point, F, dF *ten.Tensor2, h float64) (η float64, err error) {

	// perturbed state
	Fp := ten.Add(1, F, h, dF)
	if err = p.SetDefGrad(&Fp, false); err != nil {
		return
	}
	tau1 := p.Kirchhoff()

	// reference state
	if err = p.SetDefGrad(F, true); err != nil {
		return
	}
	tau0 := p.Kirchhoff()
	C := p.Tangent()
	J := ten.Det(F)

	// prediction
	Fi, _, err := ten.Inv(F, ten.DetZero)
	if err != nil {
		return
	}
	dFh := ten.Scale(h, dF)
	L := ten.Dot(&dFh, &Fi)
	CL := ten.A4MulB2(&C, &L)
	Ltau := ten.Dot(&L, &tau0)
	pred := ten.Add(J, &CL, 1, &Ltau)

	// error
	dtau := ten.Add(1, &tau1, -1, &tau0)
	diff := ten.Add(1, &dtau, -1, &pred)
	den := ten.Norm(&dtau)
	if den < math.SmallestNonzeroFloat64 {
		return ten.Norm(&diff), nil
	}
	return ten.Norm(&diff) / den, nil
}
