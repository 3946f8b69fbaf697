// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosimo/ckpt"
	"github.com/cpmech/gosimo/inp"
	"github.com/cpmech/gosimo/msolid"
	"github.com/cpmech/gosimo/ten"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/mattn/go-isatty"
)

// options holds command line options
type options struct {
	fn      string // input file
	ckpt    string // checkpoint file; empty means no checkpoints
	restart bool   // resume from the last checkpoint
	point   int    // point to print
	verbose bool   // show messages
}

func main() {

	// read input parameters
	var opt options
	flag.StringVar(&opt.ckpt, "ckpt", "", "checkpoint file")
	flag.BoolVar(&opt.restart, "restart", false, "resume from the last checkpoint (requires -ckpt)")
	flag.IntVar(&opt.point, "point", 0, "index of point to print")
	flag.BoolVar(&opt.verbose, "v", false, "show messages")
	flag.Usage = func() {
		io.Pf("usage: gosimo [-ckpt file] [-restart] [-point i] [-v] input.yaml\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opt.fn = flag.Arg(0)

	// run simulation
	if err := run(&opt); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

// run reads the input file and runs the simulation
func run(opt *options) (err error) {

	// input data
	in, err := inp.Read(opt.fn)
	if err != nil {
		return
	}
	if opt.point < 0 || opt.point >= in.Npoints {
		return chk.Err("point to print must be in [0, %d). point = %d is invalid", in.Npoints, opt.point)
	}
	arr, err := in.Array()
	if err != nil {
		return
	}
	pth, err := in.Path()
	if err != nil {
		return
	}

	// message
	if opt.verbose {
		io.Pf("\ngosimo -- finite strain J2 elasto-plasticity\n\n")
		io.Pf("%-22s = %s\n", "input file", opt.fn)
		io.Pf("%-22s = %s\n", "description", in.Desc)
		io.Pf("%-22s = %d\n", "number of points", arr.Size())
		io.Pf("%-22s = %d\n", "number of goroutines", arr.Nworkers)
		io.Pf("%-22s = %s (%d increments)\n", "path", pth.Kind, pth.Size())
		io.Pf("%-22s = %q\n\n", "checkpoint file", opt.ckpt)
	}

	// driver
	var drv msolid.Driver
	if err = drv.Init(arr); err != nil {
		return
	}

	// checkpoints
	var sto *ckpt.Store
	if opt.restart && opt.ckpt == "" {
		return chk.Err("restart requires a checkpoint file")
	}
	if opt.ckpt != "" {
		sto, err = ckpt.Open(opt.ckpt)
		if err != nil {
			return
		}
		defer sto.Close()
		if opt.restart {
			drv.Start, err = restore(sto, arr)
			if err != nil {
				return
			}
			if drv.Start >= pth.Size() {
				if opt.verbose {
					io.Pf("all %d increments have been run already\n", pth.Size())
				}
				return
			}
		} else if err = sto.Truncate(-1); err != nil {
			return
		}
	}

	// output
	header(drv.Start)
	drv.Out = func(inc int) error {
		sig := drv.Sig[inc][opt.point]
		io.Pf("%5d %14.6e %14.6e %14.6e\n", inc, ten.Epseq(&drv.Eps[inc]), ten.Sigeq(&sig), drv.Epsp[inc][opt.point])
		if sto != nil {
			return sto.Save(inc, arr.Snapshot())
		}
		return nil
	}

	// run
	return drv.Run(pth)
}

// restore restores the last checkpoint into arr and returns the next increment to be run
func restore(sto *ckpt.Store, arr *msolid.Array) (start int, err error) {
	last, ok, err := sto.Last()
	if err != nil || !ok {
		return
	}
	snap, err := sto.Load(last)
	if err != nil {
		return
	}
	if err = arr.Restore(snap); err != nil {
		return
	}
	return last + 1, sto.Truncate(last)
}

// header prints the header of the table of results
func header(start int) {
	l := io.Sf("%5s %14s %14s %14s", "inc", "epseq", "sigeq", "epsp")
	if start > 0 {
		l += io.Sf("   (restarted at %d)", start)
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		io.Pforan("%s\n", l)
		return
	}
	io.Pf("%s\n", l)
}
