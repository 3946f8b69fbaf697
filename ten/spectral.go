// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/la"
)

// Eigen computes the eigenvalues λ and the eigenvectors of the symmetric part of A
//  vec -- eigenvectors stored as columns: vec[i][m] is component i of eigenvector m
func Eigen(A *Tensor2) (λ Vector, vec Tensor2, err error) {
	a := la.NewMatrix(3, 3)
	q := la.NewMatrix(3, 3)
	v := la.NewVector(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a.Set(i, j, 0.5*(A[i][j]+A[j][i]))
		}
	}
	if err = jacobi(q, v, a); err != nil {
		return
	}
	for m := 0; m < 3; m++ {
		λ[m] = v[m]
		if math.IsNaN(λ[m]) || math.IsInf(λ[m], 0) {
			err = fmt.Errorf("%w: eigenvalue %d is %g", ErrEigen, m, λ[m])
			return
		}
		for i := 0; i < 3; i++ {
			vec[i][m] = q.Get(i, m)
		}
	}
	return
}

// jacobi runs la.Jacobi, which panics when the rotations do not converge
func jacobi(q *la.Matrix, v la.Vector, a *la.Matrix) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrEigen, r)
		}
	}()
	la.Jacobi(q, v, a)
	return
}

// FromEigs recreates a tensor from its spectral decomposition: A = Σ λ_m v_m⊗v_m
func FromEigs(vec *Tensor2, λ *Vector) (A Tensor2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			A[i][j] = λ[0]*vec[i][0]*vec[j][0] + λ[1]*vec[i][1]*vec[j][1] + λ[2]*vec[i][2]*vec[j][2]
		}
	}
	return
}

// checkPositive fails if any eigenvalue is not positive
func checkPositive(λ *Vector) error {
	for m := 0; m < 3; m++ {
		if !(λ[m] > 0) {
			return fmt.Errorf("%w: eigenvalues = %v", ErrNotPositiveDefinite, *λ)
		}
	}
	return nil
}

// Log computes the logarithm of a symmetric positive-definite tensor
func Log(A *Tensor2) (L Tensor2, err error) {
	L, _, _, err = LogEigen(A)
	return
}

// LogEigen computes ln(A) and also returns the spectral decomposition of A,
// which can be given to DlogEig afterwards
func LogEigen(A *Tensor2) (L Tensor2, λ Vector, vec Tensor2, err error) {
	λ, vec, err = Eigen(A)
	if err != nil {
		return
	}
	if err = checkPositive(&λ); err != nil {
		return
	}
	var lnλ Vector
	for m := 0; m < 3; m++ {
		lnλ[m] = math.Log(λ[m])
	}
	L = FromEigs(&vec, &lnλ)
	return
}

// Exp computes the exponential of a symmetric tensor
func Exp(S *Tensor2) (E Tensor2, err error) {
	λ, vec, err := Eigen(S)
	if err != nil {
		return
	}
	var eλ Vector
	for m := 0; m < 3; m++ {
		eλ[m] = math.Exp(λ[m])
	}
	E = FromEigs(&vec, &eλ)
	return
}

// Dlog computes the derivative of the logarithm map at a symmetric positive-definite A
//  d(ln A)_ij = Dlog_ijkl dA_kl  for symmetric dA
func Dlog(A *Tensor2) (D Tensor4, err error) {
	λ, vec, err := Eigen(A)
	if err != nil {
		return
	}
	if err = checkPositive(&λ); err != nil {
		return
	}
	D = DlogEig(&λ, &vec)
	return
}

// DlogEig computes Dlog from a given spectral decomposition with positive eigenvalues
//  D_ijkl = Σ_mn g_mn v_im v_jn v_km v_ln
//  g_mn = (ln λn - ln λm) / (λn - λm)  or  2 / (λm + λn) for repeated eigenvalues
func DlogEig(λ *Vector, vec *Tensor2) (D Tensor4) {
	for m := 0; m < 3; m++ {
		for n := 0; n < 3; n++ {
			g := DividedLog(λ[m], λ[n])
			each4(func(i, j, k, l int) {
				D[i][j][k][l] += g * vec[i][m] * vec[j][n] * vec[k][m] * vec[l][n]
			})
		}
	}
	return
}

// DividedLog returns the divided difference of ln between a and b (positive values).
// Pairs closer than EvTol (relative) use the coincident limit
func DividedLog(a, b float64) float64 {
	if math.Abs(b-a) <= EvTol*math.Max(math.Abs(a), math.Abs(b)) {
		return 2.0 / (a + b)
	}
	return (math.Log(b) - math.Log(a)) / (b - a)
}
