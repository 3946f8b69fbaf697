// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.yaml) file
package inp

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosimo/msolid"
	"github.com/cpmech/gosimo/ten"
	"gopkg.in/yaml.v3"
)

// Material holds material data
type Material struct {
	Name    string             `yaml:"name"` // name of material
	LawName string             `yaml:"law"`  // "elastic" or "linear-hardening"
	Values  map[string]float64 `yaml:"prms"` // parameters; e.g. {K: 10, G: 1, tauy0: 1, H: 1}
}

// Assignment assigns a material to a set of points
type Assignment struct {
	Material string `yaml:"material"` // name of material
	Points   []int  `yaml:"points"`   // indices of points
	Range    []int  `yaml:"range"`    // [lo, hi) range of points; alternative to Points
}

// PathData holds data to generate the path of deformation gradients
type PathData struct {
	Kind string        `yaml:"kind"` // "isochoric", "shear", "volumetric" or "list"
	Gmax float64       `yaml:"gmax"` // final value of path parameter
	Ninc int           `yaml:"ninc"` // number of increments
	F    [][][]float64 `yaml:"F"`    // deformation gradients for "list" [ninc][3][3]
}

// Input holds all input data
type Input struct {

	// input
	Desc      string        `yaml:"desc"`      // description of simulation
	Workers   int           `yaml:"workers"`   // number of goroutines; 0 means number of CPUs
	Npoints   int           `yaml:"npoints"`   // number of material points
	Materials []*Material   `yaml:"materials"` // materials
	Assign    []*Assignment `yaml:"assign"`    // assignments
	PathData  PathData      `yaml:"path"`      // path

	// derived
	Key string // simulation key; e.g. mysim01.yaml => mysim01
	Dir string // directory of input file
}

// Read reads input data from a .yaml file
func Read(fn string) (o *Input, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("inp: cannot read input file %q:\n%v", fn, err)
	}
	o, err = Parse(b)
	if err != nil {
		return nil, chk.Err("inp: cannot parse input file %q:\n%v", fn, err)
	}
	o.Dir = filepath.Dir(fn)
	o.Key = io.FnKey(filepath.Base(fn))
	return
}

// Parse parses input data and checks it
func Parse(b []byte) (o *Input, err error) {
	o = new(Input)
	o.SetDefault()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err = dec.Decode(o); err != nil {
		return nil, err
	}
	if err = o.Check(); err != nil {
		return nil, err
	}
	return
}

// SetDefault sets default values
func (o *Input) SetDefault() {
	o.PathData.Kind = msolid.PathIsochoric
	o.PathData.Ninc = 11
}

// Check checks input data
func (o *Input) Check() (err error) {

	// points
	if o.Npoints < 1 {
		return chk.Err("number of points must be positive. npoints = %d is invalid", o.Npoints)
	}
	if o.Workers < 0 {
		return chk.Err("number of workers must be non-negative. workers = %d is invalid", o.Workers)
	}

	// materials
	if len(o.Materials) == 0 {
		return chk.Err("at least one material must be given")
	}
	names := make(map[string]bool)
	for _, mat := range o.Materials {
		if names[mat.Name] {
			return chk.Err("material named %q is repeated", mat.Name)
		}
		names[mat.Name] = true
		if _, err = mat.Law(); err != nil {
			return chk.Err("material %q: %v", mat.Name, err)
		}
	}

	// assignments
	if len(o.Assign) == 0 {
		return chk.Err("at least one assignment must be given")
	}
	for k, asg := range o.Assign {
		if !names[asg.Material] {
			return chk.Err("assignment %d: cannot find material named %q", k, asg.Material)
		}
		if len(asg.Points) > 0 && len(asg.Range) > 0 {
			return chk.Err("assignment %d: points and range cannot be given together", k)
		}
		if len(asg.Range) > 0 {
			if len(asg.Range) != 2 || asg.Range[0] < 0 || asg.Range[0] >= asg.Range[1] || asg.Range[1] > o.Npoints {
				return chk.Err("assignment %d: range %v is invalid. it must be [lo, hi) with 0 ≤ lo < hi ≤ %d", k, asg.Range, o.Npoints)
			}
			continue
		}
		if len(asg.Points) == 0 {
			return chk.Err("assignment %d: points or range must be given", k)
		}
		for _, i := range asg.Points {
			if i < 0 || i >= o.Npoints {
				return chk.Err("assignment %d: point %d is out of range [0, %d)", k, i, o.Npoints)
			}
		}
	}

	// path
	if o.PathData.Kind == msolid.PathList {
		if len(o.PathData.F) == 0 {
			return chk.Err("path: list of deformation gradients must be given")
		}
		for k, F := range o.PathData.F {
			if len(F) != 3 || len(F[0]) != 3 || len(F[1]) != 3 || len(F[2]) != 3 {
				return chk.Err("path: deformation gradient %d must be 3x3", k)
			}
		}
	}
	return
}

// GetMat returns the material named name; nil if not found
func (o *Input) GetMat(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Mask returns the mask of points of assignment k
func (o *Input) Mask(k int) (mask []bool) {
	mask = make([]bool, o.Npoints)
	asg := o.Assign[k]
	if len(asg.Range) == 2 {
		for i := asg.Range[0]; i < asg.Range[1]; i++ {
			mask[i] = true
		}
		return
	}
	for _, i := range asg.Points {
		mask[i] = true
	}
	return
}

// Array allocates the array of points and assigns all materials
func (o *Input) Array() (arr *msolid.Array, err error) {
	arr = msolid.NewArray(o.Npoints)
	if o.Workers > 0 {
		arr.Nworkers = o.Workers
	}
	for k, asg := range o.Assign {
		mat := o.GetMat(asg.Material)
		law, _ := mat.Law()
		if err = arr.Assign(o.Mask(k), law, mat.Prms()); err != nil {
			return nil, chk.Err("assignment %d (material %q):\n%v", k, mat.Name, err)
		}
	}
	return
}

// Path generates the path of deformation gradients
func (o *Input) Path() (pth *msolid.Path, err error) {
	pth = new(msolid.Path)
	if o.PathData.Kind == msolid.PathList {
		F := make([]ten.Tensor2, len(o.PathData.F))
		for k, f := range o.PathData.F {
			for i := 0; i < 3; i++ {
				copy(F[k][i][:], f[i])
			}
		}
		err = pth.SetList(F)
		return
	}
	err = pth.Set(o.PathData.Kind, o.PathData.Gmax, o.PathData.Ninc)
	return
}

// Law returns the law of material
func (o *Material) Law() (msolid.Law, error) {
	return msolid.LawFromString(o.LawName)
}

// Prms returns the parameters of material, sorted by name
func (o *Material) Prms() (prms dbf.Params) {
	keys := make([]string, 0, len(o.Values))
	for key := range o.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		prms = append(prms, &dbf.P{N: key, V: o.Values[key]})
	}
	return
}
