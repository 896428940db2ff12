// Command labfit fits a straight line to measurement data and reports the
// parameters with their uncertainties, the chi-square of the fit and the
// residual of every point.
//
// Usage:
//
//	labfit [flags]
//
// Without flags it fits the four-point demonstration data set with
// weighted least squares.
//
// Examples:
//
//	labfit
//	labfit -x 1,2,3,4,5 -y 2.1,3.9,6.2,7.8,10.1 -weighted=false
//	labfit -yerr .1,.2,.1,.3 -corrected
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-uncertainty/fit"
)

type options struct {
	x, y, yerr []float64
	weighted   bool
	corrected  bool
}

func main() {
	fs := flag.NewFlagSet("labfit", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: labfit [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Fits y = m*x + c and prints the parameters, chi-square and residuals.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  labfit\n")
		fmt.Fprintf(os.Stderr, "  labfit -x 1,2,3,4,5 -y 2.1,3.9,6.2,7.8,10.1 -weighted=false\n")
		fmt.Fprintf(os.Stderr, "  labfit -yerr .1,.2,.1,.3 -corrected\n")
	}

	opts, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	x := fs.String("x", "1,2,3,4", "comma-separated x values")
	y := fs.String("y", "1,2,3,4", "comma-separated y values")
	yerr := fs.String("yerr", ".2,.3,.4,.5", "comma-separated y uncertainties (weighted fit)")
	weighted := fs.Bool("weighted", true, "use weighted least squares")
	corrected := fs.Bool("corrected", false, "accumulate the weighted y sum as Σw·y")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	var (
		opts options
		err  error
	)

	if opts.x, err = parseList(*x); err != nil {
		return options{}, fmt.Errorf("-x: %w", err)
	}

	if opts.y, err = parseList(*y); err != nil {
		return options{}, fmt.Errorf("-y: %w", err)
	}

	opts.weighted = *weighted
	opts.corrected = *corrected

	if opts.weighted {
		if opts.yerr, err = parseList(*yerr); err != nil {
			return options{}, fmt.Errorf("-yerr: %w", err)
		}
	}

	return opts, nil
}

func parseList(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty list")
	}

	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))

	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}

		out[i] = v
	}

	return out, nil
}

func run(w io.Writer, opts options) error {
	var (
		line fit.Line
		err  error
	)

	if opts.weighted {
		var fitOpts []fit.Option
		if opts.corrected {
			fitOpts = append(fitOpts, fit.WithCorrectedWeightedSums())
		}

		line, err = fit.WeightedLeastSquares(opts.x, opts.y, opts.yerr, fitOpts...)
	} else {
		line, err = fit.LeastSquares(opts.x, opts.y)
	}

	if err != nil {
		return err
	}

	best := line.Predict(opts.x)

	residuals, err := fit.Residuals(opts.y, best)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "m: %.6g +/- %.6g\nc: %.6g +/- %.6g\n",
		line.Slope, line.SlopeErr, line.Intercept, line.InterceptErr); err != nil {
		return err
	}

	if chi2, err := fit.ChiSquare(opts.y, best); err == nil {
		if _, err := fmt.Fprintf(w, "chi2: %.6g\n", chi2); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(os.Stderr, "warning: chi-square unavailable: %v\n", err)
	}

	if r2, err := fit.RSquared(opts.y, best); err == nil {
		if _, err := fmt.Fprintf(w, "r2: %.6g\n", r2); err != nil {
			return err
		}
	}

	return printPoints(w, opts, best, residuals)
}

func printPoints(w io.Writer, opts options, best, residuals []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "\nx\ty\tyerr\tfit\tresidual\n-\t-\t----\t---\t--------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for i := range opts.x {
		yerr := "-"
		if opts.yerr != nil {
			yerr = strconv.FormatFloat(opts.yerr[i], 'g', -1, 64)
		}

		if _, err := fmt.Fprintf(tw, "%g\t%g\t%s\t%.6g\t%.6g\n",
			opts.x[i], opts.y[i], yerr, best[i], residuals[i]); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
