// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_params01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params01. parsing")

	var p Params
	err := p.Init(LinearHardening, hardPrms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	io.Pforan("p = %+v\n", p)
	chk.Float64(tst, "K", 1e-17, p.K, 10)
	chk.Float64(tst, "G", 1e-17, p.G, 1)
	chk.Float64(tst, "tauy0", 1e-17, p.Tauy0, 1)
	chk.Float64(tst, "H", 1e-17, p.H, 1)

	// E and ν
	E, ν := 1500.0, 0.25
	var q Params
	err = q.Init(Elastic, []*dbf.P{
		&dbf.P{N: "E", V: E},
		&dbf.P{N: "nu", V: ν},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "K", 1e-12, q.K, 1000)
	chk.Float64(tst, "G", 1e-12, q.G, 600)
	chk.Float64(tst, "E", 1e-12, Calc_E_from_KG(q.K, q.G), E)
	chk.Float64(tst, "ν", 1e-15, Calc_nu_from_KG(q.K, q.G), ν)

	// example
	var r Params
	err = r.Init(LinearHardening, r.GetPrms(LinearHardening))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "tauy0", 1e-17, r.Tauy0, 1)
}

func Test_params02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params02. invalid parameters")

	for i, prms := range []dbf.Params{
		{&dbf.P{N: "K", V: 0}, &dbf.P{N: "G", V: 1}},
		{&dbf.P{N: "K", V: 1}, &dbf.P{N: "G", V: -1}},
		{&dbf.P{N: "K", V: 1}, &dbf.P{N: "G", V: 1}, &dbf.P{N: "H", V: -1}},
		{&dbf.P{N: "K", V: 1}, &dbf.P{N: "G", V: 1}, &dbf.P{N: "tauy0", V: -1}},
		{&dbf.P{N: "K", V: 1}, &dbf.P{N: "G", V: 1}, &dbf.P{N: "phi", V: 30}},
		{&dbf.P{N: "E", V: 1}},
	} {
		var p Params
		err := p.Init(LinearHardening, prms)
		if err == nil {
			tst.Errorf("Init should have failed for set %d\n", i)
			return
		}
		io.Pforan("%d: err = %v\n", i, err)
	}

	// elastic ignores the hardening parameters validity
	var p Params
	err := p.Init(Elastic, []*dbf.P{&dbf.P{N: "K", V: 1}, &dbf.P{N: "G", V: 1}, &dbf.P{N: "H", V: -1}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// laws
	law, err := LawFromString("linear-hardening")
	if err != nil {
		tst.Errorf("LawFromString failed: %v\n", err)
		return
	}
	chk.String(tst, law.String(), "linear-hardening")
	chk.String(tst, Elastic.String(), "elastic")
	chk.String(tst, Unset.String(), "unset")
	if _, err = LawFromString("drucker-prager"); err == nil {
		tst.Errorf("LawFromString should have failed\n")
	}
}
