// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"runtime"
	"sync"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosimo/ten"
)

// Array holds a collection of independent material points, each one with its own law and parameters.
// Data is stored as one slice per quantity, all indexed by the point number.
//
//  Usage: Assign every point exactly once; then, for each increment, call Evaluate (as many times
//  as needed) followed by Commit.
//
//  Note: the methods of Array must not be called concurrently
type Array struct {

	// settings
	Nworkers int  // number of goroutines used by Evaluate and Commit; default = runtime.NumCPU()
	Verbose  bool // print a summary at each commit

	// assignment
	law  []Law    // law of each point
	prms []Params // parameters of each point
	done bool     // all points have been assigned

	// committed history
	be   []ten.Tensor2 // elastic left Cauchy-Green tensors
	epsp []float64     // equivalent plastic strains
	fold []ten.Tensor2 // deformation gradients at last commit

	// last trial
	f       []ten.Tensor2 // trial deformation gradients
	sig     []ten.Tensor2 // Cauchy stresses
	c       []ten.Tensor4 // tangents
	beNew   []ten.Tensor2 // elastic tensors to be committed
	epspNew []float64     // plastic strains to be committed
	dgam    []float64     // increments of plastic multiplier
	trial   bool          // the last evaluation succeeded and was not committed yet
	evaled  bool          // the last evaluation succeeded
	hasC    bool          // the last evaluation succeeded and computed tangents
}

// NewArray allocates an array with n points at the undeformed configuration
func NewArray(n int) (o *Array) {
	o = new(Array)
	o.Nworkers = runtime.NumCPU()
	o.law = make([]Law, n)
	o.prms = make([]Params, n)
	o.be = make([]ten.Tensor2, n)
	o.epsp = make([]float64, n)
	o.fold = make([]ten.Tensor2, n)
	o.f = make([]ten.Tensor2, n)
	o.sig = make([]ten.Tensor2, n)
	o.c = make([]ten.Tensor4, n)
	o.beNew = make([]ten.Tensor2, n)
	o.epspNew = make([]float64, n)
	o.dgam = make([]float64, n)
	I := ten.I2()
	for i := 0; i < n; i++ {
		o.be[i] = I
		o.fold[i] = I
		o.f[i] = I
	}
	return
}

// Size returns the number of points
func (o *Array) Size() int { return len(o.law) }

// Assign sets law and parameters of the points selected by mask
func (o *Array) Assign(mask []bool, law Law, prms dbf.Params) (err error) {
	var p Params
	if err = o.checkAssign(mask, law); err != nil {
		return
	}
	if err = p.Init(law, prms); err != nil {
		return newError(ErrValidation, -1, err, "")
	}
	if err = o.checkOverlap(mask); err != nil {
		return
	}
	for i, sel := range mask {
		if sel {
			o.law[i] = law
			o.prms[i] = p
		}
	}
	return
}

// AssignIdx sets law of the points selected by mask; point i gets the parameters table[idx[i]]
func (o *Array) AssignIdx(mask []bool, idx []int, law Law, table []Params) (err error) {
	if err = o.checkAssign(mask, law); err != nil {
		return
	}
	if len(idx) != len(mask) {
		return newError(ErrConfiguration, -1, nil, "number of indices (%d) must equal the number of points (%d)", len(idx), len(mask))
	}
	for k, p := range table {
		if err = p.Check(law); err != nil {
			return newError(ErrValidation, -1, err, "parameters set %d", k)
		}
	}
	for i, sel := range mask {
		if sel && (idx[i] < 0 || idx[i] >= len(table)) {
			return newError(ErrConfiguration, i, nil, "index of parameters set (%d) is out of range [0, %d)", idx[i], len(table))
		}
	}
	if err = o.checkOverlap(mask); err != nil {
		return
	}
	for i, sel := range mask {
		if sel {
			o.law[i] = law
			o.prms[i] = table[idx[i]]
		}
	}
	return
}

// Evaluate evaluates all points at the trial deformation gradients F (one per point).
// The history is not modified.
//  Note: the returned slices belong to Array and are overwritten by the next evaluation
func (o *Array) Evaluate(F []ten.Tensor2) (Sig []ten.Tensor2, C []ten.Tensor4, err error) {
	if err = o.SetDefGrad(F, true); err != nil {
		return
	}
	return o.sig, o.c, nil
}

// SetDefGrad evaluates all points at the trial deformation gradients F (one per point)
//  tangent -- also compute the consistent tangents
func (o *Array) SetDefGrad(F []ten.Tensor2, tangent bool) (err error) {
	o.trial, o.evaled, o.hasC = false, false, false
	if len(F) != len(o.law) {
		return newError(ErrConfiguration, -1, nil, "number of deformation gradients (%d) must equal the number of points (%d)", len(F), len(o.law))
	}
	if err = o.checkCoverage(); err != nil {
		return
	}
	idx, err := o.parallel(func(i int) error {
		s := State{Be: o.be[i], Epsp: o.epsp[i], F: o.fold[i]}
		res, e := Update(o.law[i], &o.prms[i], &s, &F[i], tangent)
		if e != nil {
			return e
		}
		o.f[i] = res.F
		o.sig[i] = res.Sig
		if tangent {
			o.c[i] = res.C
		}
		o.beNew[i] = res.Be
		o.epspNew[i] = res.Epsp
		o.dgam[i] = res.Dgam
		return nil
	})
	if err != nil {
		return newError(ErrDomain, idx, err, "")
	}
	o.trial, o.evaled, o.hasC = true, true, tangent
	return
}

// Commit advances the history of all points using the last evaluation.
// It fails (and nothing is committed) if there was no successful evaluation since the
// creation of the array or the last commit.
func (o *Array) Commit() (err error) {
	if !o.trial {
		return newError(ErrState, -1, nil, "commit requires a successful evaluation since creation or the last commit")
	}
	o.parallel(func(i int) error {
		o.fold[i] = o.f[i]
		o.be[i] = o.beNew[i]
		o.epsp[i] = o.epspNew[i]
		return nil
	})
	o.trial = false
	if o.Verbose {
		nload, emax := 0, 0.0
		for i, e := range o.epsp {
			if o.dgam[i] > 0 {
				nload++
			}
			if e > emax {
				emax = e
			}
		}
		io.Pf("msolid: commit: %d points, %d loading, max(epsp) = %g\n", len(o.law), nload, emax)
	}
	return
}

// Stress returns the Cauchy stresses of the last evaluation; nil if it failed or there was none
func (o *Array) Stress() []ten.Tensor2 {
	if !o.evaled {
		return nil
	}
	return o.sig
}

// Tangent returns the consistent tangents of the last evaluation; nil if it failed, there was
// none, or it was called without tangents
func (o *Array) Tangent() []ten.Tensor4 {
	if !o.hasC {
		return nil
	}
	return o.c
}

// DefGrad returns the deformation gradients of the last evaluation; nil if it failed or there was none
func (o *Array) DefGrad() []ten.Tensor2 {
	if !o.evaled {
		return nil
	}
	return o.f
}

// PlasticStrain returns a copy of the committed equivalent plastic strains
func (o *Array) PlasticStrain() (epsp []float64) {
	epsp = make([]float64, len(o.epsp))
	copy(epsp, o.epsp)
	return
}

// Loading returns which points were loading plastically at the last evaluation; nil if it
// failed or there was none
func (o *Array) Loading() (res []bool) {
	if !o.evaled {
		return nil
	}
	res = make([]bool, len(o.dgam))
	for i, d := range o.dgam {
		res[i] = d > 0
	}
	return
}

// Snapshot returns a copy of the committed history of all points
func (o *Array) Snapshot() (states []State) {
	states = make([]State, len(o.law))
	for i := range states {
		states[i] = State{Be: o.be[i], Epsp: o.epsp[i], F: o.fold[i]}
	}
	return
}

// Restore sets the committed history of all points (e.g. from a Snapshot).
// The last evaluation is discarded.
func (o *Array) Restore(states []State) (err error) {
	if len(states) != len(o.law) {
		return newError(ErrConfiguration, -1, nil, "number of states (%d) must equal the number of points (%d)", len(states), len(o.law))
	}
	for i := range states {
		if err = states[i].Check(); err != nil {
			if e, ok := err.(*Error); ok {
				e.Index = i
			}
			return
		}
	}
	o.trial, o.evaled, o.hasC = false, false, false
	for i := range states {
		o.be[i] = states[i].Be
		o.epsp[i] = states[i].Epsp
		o.fold[i] = states[i].F
	}
	return
}

// Type returns the law of each point
func (o *Array) Type() (res []Law) {
	res = make([]Law, len(o.law))
	copy(res, o.law)
	return
}

// IsElastic returns which points are Elastic
func (o *Array) IsElastic() []bool { return o.isLaw(Elastic) }

// IsPlastic returns which points are LinearHardening
func (o *Array) IsPlastic() []bool { return o.isLaw(LinearHardening) }

// K returns the bulk modulus of each point
func (o *Array) K() (res []float64) {
	res = make([]float64, len(o.prms))
	for i, p := range o.prms {
		res[i] = p.K
	}
	return
}

// G returns the shear modulus of each point
func (o *Array) G() (res []float64) {
	res = make([]float64, len(o.prms))
	for i, p := range o.prms {
		res[i] = p.G
	}
	return
}

// Params returns the parameters of point i
func (o *Array) Params(i int) Params { return o.prms[i] }

// Point returns a copy of point i with its committed history
func (o *Array) Point(i int) *Point {
	return &Point{
		Law:   o.law[i],
		Prms:  o.prms[i],
		State: State{Be: o.be[i], Epsp: o.epsp[i], F: o.fold[i]},
	}
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////

func (o *Array) isLaw(law Law) (res []bool) {
	res = make([]bool, len(o.law))
	for i, l := range o.law {
		res[i] = l == law
	}
	return
}

func (o *Array) checkAssign(mask []bool, law Law) error {
	if len(mask) != len(o.law) {
		return newError(ErrConfiguration, -1, nil, "size of mask (%d) must equal the number of points (%d)", len(mask), len(o.law))
	}
	if law != Elastic && law != LinearHardening {
		return newError(ErrConfiguration, -1, nil, "law %v cannot be assigned", law)
	}
	return nil
}

func (o *Array) checkOverlap(mask []bool) error {
	for i, sel := range mask {
		if sel && o.law[i] != Unset {
			return newError(ErrConfiguration, i, nil, "point is already assigned to law %v", o.law[i])
		}
	}
	return nil
}

func (o *Array) checkCoverage() error {
	if o.done {
		return nil
	}
	for i, l := range o.law {
		if l == Unset {
			return newError(ErrConfiguration, i, nil, "point has not been assigned")
		}
	}
	o.done = true
	return nil
}

// parallel runs fcn for all points. The range of points is split into contiguous chunks, one
// per goroutine. It returns the lowest index where fcn failed, if any
func (o *Array) parallel(fcn func(i int) error) (idx int, err error) {
	n := len(o.law)
	nw := o.Nworkers
	if nw > n {
		nw = n
	}
	if nw < 1 {
		nw = 1
	}
	size := (n + nw - 1) / nw
	first := make([]int, nw)
	errs := make([]error, nw)
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		start, end := w*size, (w+1)*size
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if e := fcn(i); e != nil {
					first[w], errs[w] = i, e
					return
				}
			}
		}(w, start, end)
	}
	wg.Wait()
	for w, e := range errs {
		if e != nil {
			return first[w], e
		}
	}
	return -1, nil
}
