// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_spectral01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectral01. eigen-decomposition")

	rnd := rand.New(rand.NewSource(1234))
	I := I2()
	for k := 0; k < 10; k++ {
		A := randSpd(rnd, 0.5)
		λ, vec, err := Eigen(&A)
		if err != nil {
			tst.Errorf("Eigen failed: %v\n", err)
			return
		}
		io.Pforan("λ = %v\n", λ)
		B := FromEigs(&vec, &λ)
		chk.Deep2(tst, "A = Σ λ v⊗v", 1e-13, deep2(&B), deep2(&A))
		vt := Transpose(&vec)
		vtv := Dot(&vt, &vec)
		chk.Deep2(tst, "vᵀ·v", 1e-13, deep2(&vtv), deep2(&I))
	}
}

func Test_spectral02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectral02. exp(log(A)) and log(exp(S))")

	rnd := rand.New(rand.NewSource(4321))
	for k := 0; k < 20; k++ {

		// SPD A
		A := randSpd(rnd, 0.1)
		L, err := Log(&A)
		if err != nil {
			tst.Errorf("Log failed: %v\n", err)
			return
		}
		E, err := Exp(&L)
		if err != nil {
			tst.Errorf("Exp failed: %v\n", err)
			return
		}
		chk.Deep2(tst, "exp(log(A))", 1e-10, deep2(&E), deep2(&A))

		// symmetric S
		var S Tensor2
		for i := 0; i < 3; i++ {
			for j := i; j < 3; j++ {
				S[i][j] = rnd.Float64()*2 - 1
				S[j][i] = S[i][j]
			}
		}
		E, err = Exp(&S)
		if err != nil {
			tst.Errorf("Exp failed: %v\n", err)
			return
		}
		L, err = Log(&E)
		if err != nil {
			tst.Errorf("Log failed: %v\n", err)
			return
		}
		chk.Deep2(tst, "log(exp(S))", 1e-10, deep2(&L), deep2(&S))
	}

	// diagonal
	A := Tensor2{{math.E, 0, 0}, {0, 1, 0}, {0, 0, math.E * math.E}}
	L, err := Log(&A)
	if err != nil {
		tst.Errorf("Log failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "log(diag)", 1e-14, deep2(&L), [][]float64{{1, 0, 0}, {0, 0, 0}, {0, 0, 2}})
}

func Test_spectral03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectral03. dlog versus numerical derivative")

	rnd := rand.New(rand.NewSource(7))
	As := []Tensor2{
		I2(),                                       // three repeated eigenvalues
		{{2, 0, 0}, {0, 2, 0}, {0, 0, 3}},          // two repeated eigenvalues
		{{1.7, 0.2, 0}, {0.2, 1.7, 0}, {0, 0, 1.5}}, // repeated after rotation
		randSpd(rnd, 0.5),
		randSpd(rnd, 0.2),
	}
	h := 1e-5
	for k, A := range As {
		D, err := Dlog(&A)
		if err != nil {
			tst.Errorf("Dlog failed: %v\n", err)
			return
		}
		for a := 0; a < 3; a++ {
			for b := a; b < 3; b++ {

				// symmetric perturbation direction
				var E Tensor2
				E[a][b] += 0.5
				E[b][a] += 0.5

				// numerical: central differences
				Ap := Add(1, &A, h, &E)
				Am := Add(1, &A, -h, &E)
				Lp, err := Log(&Ap)
				if err != nil {
					tst.Errorf("Log failed: %v\n", err)
					return
				}
				Lm, err := Log(&Am)
				if err != nil {
					tst.Errorf("Log failed: %v\n", err)
					return
				}
				num := Add(0.5/h, &Lp, -0.5/h, &Lm)
				ana := A4MulB2(&D, &E)
				chk.Deep2(tst, io.Sf("A%d: dlog·E%d%d", k, a, b), 1e-8, deep2(&ana), deep2(&num))
			}
		}
	}
}

func Test_spectral04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectral04. non positive-definite")

	A := Tensor2{{1, 0, 0}, {0, -1, 0}, {0, 0, 2}}
	_, err := Log(&A)
	if !errors.Is(err, ErrNotPositiveDefinite) {
		tst.Errorf("Log should have failed with ErrNotPositiveDefinite. err = %v\n", err)
		return
	}
	_, err = Dlog(&A)
	if !errors.Is(err, ErrNotPositiveDefinite) {
		tst.Errorf("Dlog should have failed with ErrNotPositiveDefinite. err = %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)

	// exp accepts any symmetric tensor
	E, err := Exp(&A)
	if err != nil {
		tst.Errorf("Exp failed: %v\n", err)
		return
	}
	chk.Float64(tst, "exp(-1)", 1e-15, E[1][1], math.Exp(-1))
}

func Test_spectral05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectral05. divided differences")

	chk.Float64(tst, "g(2,2)", 1e-17, DividedLog(2, 2), 0.5)
	chk.Float64(tst, "g(2,3)", 1e-15, DividedLog(2, 3), math.Log(1.5))
	chk.Float64(tst, "g(3,2)", 1e-15, DividedLog(3, 2), math.Log(1.5))
	a := 2.0
	b := a * (1 + 1e-9)
	chk.Float64(tst, "g(a,a+δ)", 1e-9, DividedLog(a, b), 1.0/a)
}

func Test_spectral06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spectral06. failure of eigen-decomposition")

	// panics inside the Jacobi solver become errors
	err := jacobi(nil, nil, nil)
	if !errors.Is(err, ErrEigen) {
		tst.Errorf("jacobi should have failed with ErrEigen. err = %v\n", err)
		return
	}
	io.Pforan("err = %v\n", err)

	// not a number
	A := Tensor2{{1, 0, 0}, {0, math.NaN(), 0}, {0, 0, 2}}
	_, _, err = Eigen(&A)
	if !errors.Is(err, ErrEigen) {
		tst.Errorf("Eigen should have failed with ErrEigen. err = %v\n", err)
		return
	}
	_, err = Log(&A)
	if !errors.Is(err, ErrEigen) {
		tst.Errorf("Log should have failed with ErrEigen. err = %v\n", err)
	}
}
