// cmapstress runs random sew/unsew sequences over a combinatorial map and
// checks every invariant of the attribute engine along the way.
//
// Settings are resolved as flags > CMAP_* environment > --profile YAML file >
// built-in defaults. The exit status is non-zero when a check fails.
//
// Usage:
//
//	cmapstress [--profile file.yaml] [--seed N] [--steps N] [--dim N] [--log-level debug|info|warn|error] [--json]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/cmap/stress"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		profilePath string
		seed        int64
		steps, dim  int
		logLevel    string
		asJSON      bool
	)

	flagSet := pflag.NewFlagSet("cmapstress", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&profilePath, "profile", "", "YAML profile file")
	flagSet.Int64Var(&seed, "seed", 0, "random seed (overrides profile)")
	flagSet.IntVar(&steps, "steps", 0, "number of sew/unsew attempts (overrides profile)")
	flagSet.IntVar(&dim, "dim", 0, "map dimension (overrides profile)")
	flagSet.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flagSet.BoolVar(&asJSON, "json", false, "print the report as JSON")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	profile, err := stress.LoadProfile(profilePath)
	if err != nil {
		return err
	}
	if flagSet.Changed("seed") {
		profile.Seed = seed
	}
	if flagSet.Changed("steps") {
		profile.Steps = steps
	}
	if flagSet.Changed("dim") {
		profile.Dimension = dim
		// Drop attribute dimensions the new dimension no longer has.
		var kept []int
		for _, i := range profile.AttributeDims {
			if i <= dim {
				kept = append(kept, i)
			}
		}
		if len(kept) == 0 && len(profile.AttributeDims) > 0 {
			return fmt.Errorf("--dim %d leaves none of the profile's attribute dimensions: %w",
				dim, stress.ErrInvalidProfile)
		}
		profile.AttributeDims = kept
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, runErr := stress.Run(ctx, profile, logger)
	if report != nil {
		if err = printReport(stdout, report, asJSON); err != nil {
			return err
		}
	}
	return runErr
}

func printReport(w io.Writer, r *stress.Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "seed %d, dimension %d, %d darts\n", r.Profile.Seed, r.Profile.Dimension, r.Darts)
	fmt.Fprintf(&b, "steps %d: %d sews, %d unsews, %d rejected, %d checks\n",
		r.Steps, r.Sews, r.Unsews, r.Rejected, r.Checks)
	for i := 0; i <= r.Profile.Dimension; i++ {
		if r.Merges[i]+r.Splits[i]+r.Reclaimed[i] == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %d-attributes: %d merges, %d splits, %d reclaimed\n",
			i, r.Merges[i], r.Splits[i], r.Reclaimed[i])
	}
	fmt.Fprintf(&b, "cells %v\n", r.Cells)
	fmt.Fprintf(&b, "fingerprint %s (%s)\n", r.Fingerprint, r.Elapsed)
	_, err := io.WriteString(w, b.String())
	return err
}
