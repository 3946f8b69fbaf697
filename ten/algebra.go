// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
)

// Trace returns tr(A)
func Trace(A *Tensor2) float64 {
	return A[0][0] + A[1][1] + A[2][2]
}

// Hydrostatic returns tr(A)/3
func Hydrostatic(A *Tensor2) float64 {
	return Trace(A) / 3.0
}

// Det returns det(A)
func Det(A *Tensor2) float64 {
	return (A[0][0]*A[1][1]*A[2][2] + A[0][1]*A[1][2]*A[2][0] + A[0][2]*A[1][0]*A[2][1]) -
		(A[0][2]*A[1][1]*A[2][0] + A[0][1]*A[1][0]*A[2][2] + A[0][0]*A[1][2]*A[2][1])
}

// DetTol returns det(A) or ErrSingular if |det(A)| < tol
func DetTol(A *Tensor2, tol float64) (det float64, err error) {
	det = Det(A)
	if math.Abs(det) < tol || math.IsNaN(det) {
		return det, fmt.Errorf("%w: |det(A)| = %g < %g", ErrSingular, math.Abs(det), tol)
	}
	return
}

// Inv computes the inverse of A. It fails with ErrSingular if |det(A)| < tol
func Inv(A *Tensor2, tol float64) (Ai Tensor2, det float64, err error) {
	det, err = DetTol(A, tol)
	if err != nil {
		return
	}
	Ai[0][0] = (A[1][1]*A[2][2] - A[1][2]*A[2][1]) / det
	Ai[0][1] = (A[0][2]*A[2][1] - A[0][1]*A[2][2]) / det
	Ai[0][2] = (A[0][1]*A[1][2] - A[0][2]*A[1][1]) / det
	Ai[1][0] = (A[1][2]*A[2][0] - A[1][0]*A[2][2]) / det
	Ai[1][1] = (A[0][0]*A[2][2] - A[0][2]*A[2][0]) / det
	Ai[1][2] = (A[0][2]*A[1][0] - A[0][0]*A[1][2]) / det
	Ai[2][0] = (A[1][0]*A[2][1] - A[1][1]*A[2][0]) / det
	Ai[2][1] = (A[0][1]*A[2][0] - A[0][0]*A[2][1]) / det
	Ai[2][2] = (A[0][0]*A[1][1] - A[0][1]*A[1][0]) / det
	return
}

// Dev returns the deviator A - tr(A)/3 I
func Dev(A *Tensor2) (D Tensor2) {
	m := Hydrostatic(A)
	D = *A
	for i := 0; i < 3; i++ {
		D[i][i] -= m
	}
	return
}

// Transpose returns Aᵀ
func Transpose(A *Tensor2) (B Tensor2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			B[i][j] = A[j][i]
		}
	}
	return
}

// Sym returns ½(A + Aᵀ)
func Sym(A *Tensor2) (B Tensor2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			B[i][j] = 0.5 * (A[i][j] + A[j][i])
		}
	}
	return
}

// Add returns α A + β B
func Add(α float64, A *Tensor2, β float64, B *Tensor2) (C Tensor2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = α*A[i][j] + β*B[i][j]
		}
	}
	return
}

// Scale returns α A
func Scale(α float64, A *Tensor2) (B Tensor2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			B[i][j] = α * A[i][j]
		}
	}
	return
}

// Dot returns A·B
func Dot(A, B *Tensor2) (C Tensor2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = A[i][0]*B[0][j] + A[i][1]*B[1][j] + A[i][2]*B[2][j]
		}
	}
	return
}

// DotDotT returns A·B·Cᵀ
func DotDotT(A, B, C *Tensor2) (D Tensor2) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for h := 0; h < 3; h++ {
				for l := 0; l < 3; l++ {
					D[i][l] += A[i][j] * B[j][h] * C[l][h]
				}
			}
		}
	}
	return
}

// Ddot2 returns A:B = A_ij B_ji
func Ddot2(A, B *Tensor2) (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res += A[i][j] * B[j][i]
		}
	}
	return
}

// Norm returns the Frobenius norm sqrt(A_ij A_ij)
func Norm(A *Tensor2) float64 {
	var sum float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += A[i][j] * A[i][j]
		}
	}
	return math.Sqrt(sum)
}

// Dyad returns A⊗B: C_ijkl = A_ij B_kl
func Dyad(A, B *Tensor2) (C Tensor4) {
	each4(func(i, j, k, l int) {
		C[i][j][k][l] = A[i][j] * B[k][l]
	})
	return
}

// Comb4 returns Σ α_n C_n
func Comb4(α []float64, C ...*Tensor4) (D Tensor4) {
	if len(α) != len(C) {
		chk.Panic("Comb4: number of coefficients (%d) must equal the number of tensors (%d)", len(α), len(C))
	}
	for n, c := range C {
		a := α[n]
		each4(func(i, j, k, l int) {
			D[i][j][k][l] += a * c[i][j][k][l]
		})
	}
	return
}

// A4DotB2 returns C_ijkm = A_ijkl B_lm
func A4DotB2(A *Tensor4, B *Tensor2) (C Tensor4) {
	each4(func(i, j, k, l int) {
		for m := 0; m < 3; m++ {
			C[i][j][k][m] += A[i][j][k][l] * B[l][m]
		}
	})
	return
}

// A4DdotB4 returns C_ijmn = A_ijkl B_lkmn
func A4DdotB4(A, B *Tensor4) (C Tensor4) {
	each4(func(i, j, k, l int) {
		a := A[i][j][k][l]
		if a == 0 {
			return
		}
		for m := 0; m < 3; m++ {
			for n := 0; n < 3; n++ {
				C[i][j][m][n] += a * B[l][k][m][n]
			}
		}
	})
	return
}

// A4DdotB2 returns C_ij = A_ijkl B_lk
func A4DdotB2(A *Tensor4, B *Tensor2) (C Tensor2) {
	each4(func(i, j, k, l int) {
		C[i][j] += A[i][j][k][l] * B[l][k]
	})
	return
}

// A4MulB2 returns C_ij = A_ijkl B_kl
func A4MulB2(A *Tensor4, B *Tensor2) (C Tensor2) {
	each4(func(i, j, k, l int) {
		C[i][j] += A[i][j][k][l] * B[k][l]
	})
	return
}

// Finger returns the Finger tensor B = F·Fᵀ
func Finger(F *Tensor2) (B Tensor2) {
	B[0][0] = F[0][0]*F[0][0] + F[0][1]*F[0][1] + F[0][2]*F[0][2]
	B[0][1] = F[0][0]*F[1][0] + F[0][1]*F[1][1] + F[0][2]*F[1][2]
	B[0][2] = F[0][0]*F[2][0] + F[0][1]*F[2][1] + F[0][2]*F[2][2]
	B[1][1] = F[1][0]*F[1][0] + F[1][1]*F[1][1] + F[1][2]*F[1][2]
	B[1][2] = F[1][0]*F[2][0] + F[1][1]*F[2][1] + F[1][2]*F[2][2]
	B[2][2] = F[2][0]*F[2][0] + F[2][1]*F[2][1] + F[2][2]*F[2][2]
	B[1][0] = B[0][1]
	B[2][0] = B[0][2]
	B[2][1] = B[1][2]
	return
}
