// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ten implements dense second and fourth order tensors in 3D Cartesian coordinates
//
//  Conventions:
//   Tensor2 A is stored row-major: A[i][j]
//   Tensor4 C is stored as C[i][j][k][l]
//   the double contraction A:B is A_ij B_ji (as in the tensor products of finite-strain codes)
//   the contraction C·L of a fourth order with a second order tensor is C_ijkl L_kl
package ten

import "errors"

// Tensor2 holds a second order tensor [3][3]
type Tensor2 [3][3]float64

// Tensor4 holds a fourth order tensor [3][3][3][3]
type Tensor4 [3][3][3][3]float64

// Vector holds the three components of a vector (or the eigenvalues of a Tensor2)
type Vector [3]float64

// tolerances
var (
	DetZero = 1e-14 // minimum |det(A)| accepted by Inv and DetTol
	EvTol   = 1e-6  // relative tolerance to consider two eigenvalues as repeated
)

// errors
var (
	ErrSingular            = errors.New("ten: singular tensor")
	ErrNotPositiveDefinite = errors.New("ten: tensor is not positive-definite")
	ErrEigen               = errors.New("ten: eigen-decomposition failed")
)

// I2 returns the second order identity
func I2() (I Tensor2) {
	I[0][0], I[1][1], I[2][2] = 1, 1, 1
	return
}

// II returns I⊗I: II_ijkl = δij δkl
func II() (C Tensor4) {
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			C[i][i][k][k] = 1
		}
	}
	return
}

// I4 returns the fourth order identity such that I4:A = A (I4_ijkl = δil δjk)
func I4() (C Tensor4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j][j][i] = 1
		}
	}
	return
}

// I4rt returns the right-transposed identity such that I4rt:A = Aᵀ (I4rt_ijkl = δik δjl)
func I4rt() (C Tensor4) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j][i][j] = 1
		}
	}
	return
}

// I4s returns the symmetric identity ½(I4 + I4rt)
func I4s() (C Tensor4) {
	a, b := I4(), I4rt()
	each4(func(i, j, k, l int) {
		C[i][j][k][l] = 0.5 * (a[i][j][k][l] + b[i][j][k][l])
	})
	return
}

// I4d returns the deviatoric projector I4s - II/3
func I4d() (C Tensor4) {
	s, ii := I4s(), II()
	each4(func(i, j, k, l int) {
		C[i][j][k][l] = s[i][j][k][l] - ii[i][j][k][l]/3.0
	})
	return
}

// each4 calls fcn for all indices of a fourth order tensor
func each4(fcn func(i, j, k, l int)) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					fcn(i, j, k, l)
				}
			}
		}
	}
}
