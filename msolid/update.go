// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosimo/ten"
)

// Trial holds the results of evaluating a point at a trial deformation gradient
type Trial struct {
	F    ten.Tensor2 // trial deformation gradient
	Sig  ten.Tensor2 // Cauchy stress
	Tau  ten.Tensor2 // Kirchhoff stress
	C    ten.Tensor4 // consistent tangent (if computed)
	Be   ten.Tensor2 // elastic left Cauchy-Green tensor to be committed
	Epsp float64     // equivalent plastic strain to be committed
	Dgam float64     // Δγ: increment of plastic multiplier
}

// Loading returns true if the trial involved plastic loading
func (o *Trial) Loading() bool {
	return o.Dgam > 0
}

// Update evaluates the law for trial deformation gradient F starting from the committed state s.
// It is a pure function of its arguments.
//  tangent -- also compute the consistent tangent
func Update(law Law, prm *Params, s *State, F *ten.Tensor2, tangent bool) (res Trial, err error) {

	// check F
	J := ten.Det(F)
	if !(J > ten.DetZero) {
		err = fmt.Errorf("%w: det(F) = %g must be greater than %g", ten.ErrSingular, J, ten.DetZero)
		return
	}
	res.F = *F

	// relative deformation gradient and trial elastic tensor
	Fpi, _, err := ten.Inv(&s.F, ten.DetZero)
	if err != nil {
		return
	}
	Fd := ten.Dot(F, &Fpi)
	Be := ten.DotDotT(&Fd, &s.Be, &Fd)
	Be = ten.Sym(&Be)

	// logarithmic elastic strain
	lnBe, λ, vec, err := ten.LogEigen(&Be)
	if err != nil {
		return
	}

	// trial Kirchhoff stress: τ = ½ C4e:ln(Be)
	K, G := prm.K, prm.G
	trLnBe := ten.Trace(&lnBe)
	lnBed := ten.Dev(&lnBe)
	I := ten.I2()
	res.Tau = ten.Add(0.5*K*trLnBe, &I, G, &lnBed)
	res.Be = Be
	res.Epsp = s.Epsp

	// return mapping
	var N ten.Tensor2
	var taueq float64
	switch law {
	case Elastic:
	case LinearHardening:
		taud := ten.Dev(&res.Tau)
		taueq = math.Sqrt(1.5 * ten.Ddot2(&taud, &taud))
		if taueq > 0 {
			N = ten.Scale(1.5/taueq, &taud)
		}
		phi := taueq - (prm.Tauy0 + prm.H*s.Epsp)
		if phi > 0 {
			res.Dgam = phi / (prm.H + 3.0*G)
			res.Epsp = s.Epsp + res.Dgam
			res.Tau = ten.Add(1, &res.Tau, -2.0*res.Dgam*G, &N)
			lnBeNew := ten.Add(1, &lnBe, -2.0*res.Dgam, &N)
			res.Be, err = ten.Exp(&lnBeNew)
			if err != nil {
				return
			}
		}
	default:
		err = chk.Err("cannot update point with law %v", law)
		return
	}

	// Cauchy stress
	res.Sig = ten.Scale(1.0/J, &res.Tau)
	if !tangent {
		return
	}

	// dτ/dln(Be)
	II, I4s, I4d := ten.II(), ten.I4s(), ten.I4d()
	var dTau ten.Tensor4
	if res.Dgam > 0 {
		a0 := res.Dgam * G / taueq
		a1 := G / (prm.H + 3.0*G)
		NN := ten.Dyad(&N, &N)
		dTau = ten.Comb4([]float64{0.5*(K-2.0*G/3.0) + a0*G, (1.0 - 3.0*a0) * G, 2.0 * G * (a0 - a1)}, &II, &I4s, &NN)
	} else {
		dTau = ten.Comb4([]float64{0.5 * K, G}, &II, &I4d)
	}

	// material and geometric parts
	dLnBe := ten.DlogEig(&λ, &vec)
	dBe := dBedL(&Be)
	tmp := ten.A4DdotB4(&dLnBe, &dBe)
	Kmat := ten.A4DdotB4(&dTau, &tmp)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					res.C[i][j][k][l] = Kmat[i][j][k][l] / J
				}
			}
			for m := 0; m < 3; m++ {
				res.C[i][j][i][m] -= res.Sig[j][m]
			}
		}
	}
	return
}

// dBedL computes the derivative of Be w.r.t the velocity gradient: dBe = L·Be + Be·Lᵀ
//  dBe_ijkm = δjk Be_im + δik Be_jm
func dBedL(Be *ten.Tensor2) (D ten.Tensor4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for m := 0; m < 3; m++ {
				D[i][j][j][m] += Be[i][m]
				D[i][j][i][m] += Be[j][m]
			}
		}
	}
	return
}
