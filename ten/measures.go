// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import "math"

// Strain computes the logarithmic strain ε = ½ ln(F·Fᵀ)
func Strain(F *Tensor2) (ε Tensor2, err error) {
	B := Finger(F)
	L, err := Log(&B)
	if err != nil {
		return
	}
	ε = Scale(0.5, &L)
	return
}

// Epseq computes the equivalent strain sqrt(2/3 εd:εd)
func Epseq(ε *Tensor2) float64 {
	d := Dev(ε)
	return math.Sqrt(2.0 / 3.0 * Ddot2(&d, &d))
}

// Sigeq computes the equivalent (von Mises) stress sqrt(3/2 σd:σd)
func Sigeq(σ *Tensor2) float64 {
	d := Dev(σ)
	return math.Sqrt(1.5 * Ddot2(&d, &d))
}
