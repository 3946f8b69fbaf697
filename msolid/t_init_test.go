// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosimo/ten"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// deep2 returns a [][]float64 view of A
func deep2(A *ten.Tensor2) [][]float64 {
	return [][]float64{A[0][:], A[1][:], A[2][:]}
}

// allTrue returns a mask selecting all n points
func allTrue(n int) (mask []bool) {
	mask = make([]bool, n)
	for i := range mask {
		mask[i] = true
	}
	return
}

// hardPrms returns the parameters used in the tests with linear hardening
func hardPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "K", V: 10},
		&dbf.P{N: "G", V: 1},
		&dbf.P{N: "tauy0", V: 1},
		&dbf.P{N: "H", V: 1},
	}
}
