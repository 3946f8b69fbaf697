// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Law defines the constitutive law of one point
type Law int

// laws
const (
	Unset           Law = iota // no law assigned yet
	Elastic                    // finite-strain elasticity (no yielding)
	LinearHardening            // J2 elasto-plasticity with linear isotropic hardening
)

// String returns the name of the law
func (o Law) String() string {
	switch o {
	case Unset:
		return "unset"
	case Elastic:
		return "elastic"
	case LinearHardening:
		return "linear-hardening"
	}
	return io.Sf("law(%d)", int(o))
}

// LawFromString returns the law with the given name
func LawFromString(name string) (Law, error) {
	switch name {
	case "elastic":
		return Elastic, nil
	case "linear-hardening", "lin-hard":
		return LinearHardening, nil
	}
	return Unset, chk.Err("law named %q is not available. options: \"elastic\", \"linear-hardening\"", name)
}

// Params holds material parameters
type Params struct {
	K     float64 // bulk modulus
	G     float64 // shear modulus
	Tauy0 float64 // initial yield stress (LinearHardening only)
	H     float64 // hardening modulus (LinearHardening only)
}

// Init initialises parameters from a list of names and values
//  K, G  -- bulk and shear moduli; alternatively E and nu
//  tauy0 -- initial yield stress
//  H     -- hardening modulus
func (o *Params) Init(law Law, prms dbf.Params) (err error) {
	var E, ν float64
	var hasE, hasNu bool
	for _, p := range prms {
		switch p.N {
		case "K":
			o.K = p.V
		case "G":
			o.G = p.V
		case "E":
			E, hasE = p.V, true
		case "nu":
			ν, hasNu = p.V, true
		case "tauy0":
			o.Tauy0 = p.V
		case "H":
			o.H = p.V
		default:
			return chk.Err("%s: parameter named %q is incorrect", law, p.N)
		}
	}
	if hasE || hasNu {
		if !(hasE && hasNu) {
			return chk.Err("%s: E and nu must be given together", law)
		}
		o.K = Calc_K_from_Enu(E, ν)
		o.G = Calc_G_from_Enu(E, ν)
	}
	return o.Check(law)
}

// Check checks whether the parameters are valid for law
func (o Params) Check(law Law) (err error) {
	if !(o.K > 0) || math.IsInf(o.K, 0) {
		return chk.Err("%s: K = %g must be positive", law, o.K)
	}
	if !(o.G > 0) || math.IsInf(o.G, 0) {
		return chk.Err("%s: G = %g must be positive", law, o.G)
	}
	if law == LinearHardening {
		if !(o.Tauy0 >= 0) {
			return chk.Err("%s: tauy0 = %g must be non-negative", law, o.Tauy0)
		}
		if !(o.H >= 0) || math.IsInf(o.H, 0) {
			return chk.Err("%s: H = %g must be non-negative", law, o.H)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Params) GetPrms(law Law) dbf.Params {
	if law == LinearHardening {
		return []*dbf.P{
			&dbf.P{N: "K", V: 10},
			&dbf.P{N: "G", V: 1},
			&dbf.P{N: "tauy0", V: 1},
			&dbf.P{N: "H", V: 1},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "K", V: 10},
		&dbf.P{N: "G", V: 1},
	}
}

// Calc_K_from_Enu computes K from E and ν
func Calc_K_from_Enu(E, ν float64) float64 {
	return E / (3.0 * (1.0 - 2.0*ν))
}

// Calc_G_from_Enu computes G from E and ν
func Calc_G_from_Enu(E, ν float64) float64 {
	return E / (2.0 * (1.0 + ν))
}

// Calc_E_from_KG computes E from K and G
func Calc_E_from_KG(K, G float64) float64 {
	return 9.0 * K * G / (3.0*K + G)
}

// Calc_nu_from_KG computes ν from K and G
func Calc_nu_from_KG(K, G float64) float64 {
	return (3.0*K - 2.0*G) / (6.0*K + 2.0*G)
}
