// SPDX-License-Identifier: MIT

// Command checkattack generates random key-exchange instances, attacks each
// one and prints the success rate.
//
// Usage:
//
//	checkattack -count 100 -size 5 -d_bound 5 -c_bound 1000 -p_bound 100 -t_bound 100
//
// Every trial prints "<index> OK|FAILED|INCORRECT"; with -v the instance of
// every unsuccessful trial follows. -json and -html write full reports.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/katalvlaran/tropix/report"
	"github.com/katalvlaran/tropix/trials"
)

func main() {
	log.SetFlags(0)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("checkattack: %v", err)
	}
}

// options holds the parsed command line.
type options struct {
	cfg      trials.Config
	seed     string
	jsonPath string
	htmlPath string
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	def := trials.DefaultConfig()
	o := &options{cfg: def}

	fs := flag.NewFlagSet("checkattack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.cfg.Count, "count", def.Count, "Number of tests")
	fs.IntVar(&o.cfg.Size, "size", def.Size, "Size of matrices")
	fs.IntVar(&o.cfg.DBound, "d_bound", def.DBound, "Bound for degrees of polynomials")
	fs.Int64Var(&o.cfg.CBound, "c_bound", def.CBound, "Upper bound for coefficients")
	fs.IntVar(&o.cfg.PBound, "p_bound", def.PBound, "Upper bound for degree of p")
	fs.IntVar(&o.cfg.TBound, "t_bound", def.TBound, "Upper bound for degree of t")
	fs.Float64Var(&o.cfg.SparseRate, "sparse", def.SparseRate, "Fraction of zeroed coefficients in secret polynomials")
	fs.StringVar(&o.seed, "seed", string(def.Seed), "Master seed of the experiment")
	fs.IntVar(&o.cfg.Workers, "workers", runtime.NumCPU(), "Number of concurrent trials")
	fs.StringVar(&o.jsonPath, "json", "", "Write the JSON report to this file")
	fs.StringVar(&o.htmlPath, "html", "", "Write the HTML report to this file")
	fs.BoolVar(&o.verbose, "v", false, "Print the instance of every unsuccessful trial")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	o.cfg.Seed = []byte(o.seed)
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	o, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	o.cfg.OnRecord = func(r trials.Record) {
		fmt.Fprintf(stdout, "%d %s\n", r.Index, r.Verdict)
		if o.verbose && r.Verdict != trials.OK {
			printInstance(stdout, r)
		}
	}
	sum, err := trials.Run(ctx, o.cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "failed = %d incorrect = %d success rate = %g\n",
		sum.Failed, sum.Incorrect, sum.SuccessRate())

	if o.jsonPath != "" {
		if err := writeFile(o.jsonPath, func(w io.Writer) error { return report.WriteJSON(w, sum) }); err != nil {
			return err
		}
		log.Printf("JSON report: %s", o.jsonPath)
	}
	if o.htmlPath != "" {
		title := fmt.Sprintf("checkattack n=%d c_bound=%d d_bound=%d", o.cfg.Size, o.cfg.CBound, o.cfg.DBound)
		if err := writeFile(o.htmlPath, func(w io.Writer) error { return report.WriteHTML(w, sum, title) }); err != nil {
			return err
		}
		log.Printf("HTML report: %s", o.htmlPath)
	}
	return nil
}

func printInstance(w io.Writer, r trials.Record) {
	in := r.Instance
	if in == nil {
		return
	}
	fmt.Fprintf(w, "M =\n%vN =\n%vX =\n%v", in.M, in.N, in.X)
	fmt.Fprintf(w, "p = %v\nt = %v\nq = %v\nr = %v\n", in.P, in.T, in.Q, in.R)
	fmt.Fprintf(w, "fingerprint = %s\n", r.Fingerprint)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
