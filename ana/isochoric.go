// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosimo/ten"
)

// Isochoric implements the solution of finite-strain J2 elasto-plasticity with linear
// hardening for the isochoric path F = diag(1+γ, 1/(1+γ), 1), with γ monotonically increasing.
// The principal directions are fixed, hence the return mapping is exact for any increment size.
//  Note: Tauy0 < 0 means no yielding (elastic)
type Isochoric struct {
	K     float64 // bulk modulus (does not affect the solution)
	G     float64 // shear modulus
	Tauy0 float64 // initial yield stress
	H     float64 // hardening modulus
}

// DefGrad returns the deformation gradient
func (o Isochoric) DefGrad(γ float64) (F ten.Tensor2) {
	F[0][0], F[1][1], F[2][2] = 1+γ, 1/(1+γ), 1
	return
}

// Epseq returns the equivalent logarithmic strain
func (o Isochoric) Epseq(γ float64) float64 {
	return 2.0 * math.Abs(math.Log(1+γ)) / math.Sqrt(3.0)
}

// Epsp returns the equivalent plastic strain
func (o Isochoric) Epsp(γ float64) float64 {
	if o.Tauy0 < 0 {
		return 0
	}
	εeq := o.Epseq(γ)
	if 3.0*o.G*εeq <= o.Tauy0 {
		return 0
	}
	return (3.0*o.G*εeq - o.Tauy0) / (3.0*o.G + o.H)
}

// Sigeq returns the equivalent (von Mises) stress
func (o Isochoric) Sigeq(γ float64) float64 {
	return 3.0 * o.G * (o.Epseq(γ) - o.Epsp(γ))
}

// Stress returns the Cauchy stress tensor
func (o Isochoric) Stress(γ float64) (σ ten.Tensor2) {
	l := math.Log(1 + γ)
	if l == 0 {
		return
	}
	s := o.Sigeq(γ) / math.Sqrt(3.0)
	if l < 0 {
		s = -s
	}
	σ[0][0], σ[1][1] = s, -s
	return
}
