// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import (
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// deep2 returns a [][]float64 view of A
func deep2(A *Tensor2) [][]float64 {
	return [][]float64{A[0][:], A[1][:], A[2][:]}
}

// randSpd returns a random symmetric positive-definite tensor M·Mᵀ + α I
func randSpd(rnd *rand.Rand, α float64) (A Tensor2) {
	var M Tensor2
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			M[i][j] = rnd.Float64()*2 - 1
		}
	}
	I := I2()
	A = DotDotT(&M, &I, &M)
	for i := 0; i < 3; i++ {
		A[i][i] += α
	}
	return
}
