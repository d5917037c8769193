// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"fillmore-labs.com/constguard/internal/config"
	"fillmore-labs.com/constguard/preferconst"
)

// ErrIssues is returned when the analysis found convertible declarations.
var ErrIssues = errors.New("issues found")

type app struct {
	linter   *preferconst.Linter
	behavior config.Behavior
	styles   styles
	out      io.Writer
	log      *slog.Logger
}

//nolint:funlen // flag wiring
func newRootCmd() *cobra.Command {
	var (
		configPath             string
		destructuring          string
		ignoreReadBeforeAssign bool
		allowedCallees         []string
		showDiff               bool
		write                  bool
		watch                  bool
		noColor                bool
		verbose                bool
	)

	cmd := &cobra.Command{
		Use:   "constguard [flags] file...",
		Short: "Report let declarations that are never reassigned",
		Long: `constguard analyzes JavaScript sources and reports let declarations
whose bindings are never reassigned, suggesting const instead.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}

			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			cfg := config.Default()

			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}

				cfg = loaded
			}

			if cmd.Flags().Changed("destructuring") {
				mode, err := config.ParseMode(destructuring)
				if err != nil {
					return err
				}

				cfg.Destructuring = mode
			}

			if cmd.Flags().Changed("ignore-read-before-assign") {
				cfg.IgnoreReadBeforeAssign = ignoreReadBeforeAssign
			}

			if cmd.Flags().Changed("allowed-callees") {
				cfg.AllowedCallees = allowedCallees
			}

			behavior := config.DefaultBehavior()
			behavior.Set(config.ShowDiff, showDiff)
			behavior.Set(config.ApplyFixes, write)
			behavior.Set(config.WatchFiles, watch)

			out := cmd.OutOrStdout()
			if noColor || !terminalOutput(out) {
				behavior.Disable(config.ColorOutput)
			}

			opts := preferconst.Options{
				preferconst.WithDestructuring(preferconst.DestructuringMode(cfg.Destructuring.String())),
				preferconst.WithIgnoreReadBeforeAssign(cfg.IgnoreReadBeforeAssign),
				preferconst.WithAllowedCallees(cfg.AllowedCallees),
			}

			log.LogAttrs(cmd.Context(), slog.LevelDebug, "configured", opts.LogAttr())

			a := &app{
				linter:   preferconst.New(opts),
				behavior: behavior,
				styles:   newStyles(behavior.Enabled(config.ColorOutput)),
				out:      out,
				log:      log,
			}

			if behavior.Enabled(config.WatchFiles) {
				return a.watch(cmd.Context(), args)
			}

			return a.runOnce(cmd.Context(), args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "configuration file")
	flags.StringVar(&destructuring, "destructuring", "any", `destructuring mode, "any" or "all"`)
	flags.BoolVar(&ignoreReadBeforeAssign, "ignore-read-before-assign", false,
		"ignore variables read before their first assignment")
	flags.StringSliceVar(&allowedCallees, "allowed-callees", nil,
		"callees whose results may stay let")
	flags.BoolVarP(&showDiff, "diff", "d", false, "print a unified diff of the planned fixes")
	flags.BoolVarP(&write, "write", "w", false, "apply fixes in place")
	flags.BoolVar(&watch, "watch", false, "watch files and re-analyze on change")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	return cmd
}

func terminalOutput(out io.Writer) bool {
	f, ok := out.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// runOnce analyzes every file once. It returns [ErrIssues] when reports
// remain after fixing.
func (a *app) runOnce(ctx context.Context, paths []string) error {
	issues := 0

	for _, path := range paths {
		n, err := a.checkFile(ctx, path)
		if err != nil {
			return err
		}

		issues += n
	}

	if issues > 0 {
		fmt.Fprintf(a.out, "%d issue(s)\n", issues)

		return ErrIssues
	}

	return nil
}

// checkFile analyzes one file, prints its diagnostics and applies the
// requested fix behavior. It returns the number of reports.
func (a *app) checkFile(ctx context.Context, path string) (int, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	diags, err := a.linter.LintSource(ctx, path, src)
	if err != nil {
		return 0, err
	}

	a.printDiagnostics(diags)

	if len(diags) == 0 {
		return 0, nil
	}

	fixed := preferconst.Apply(src, diags)

	if a.behavior.Enabled(config.ShowDiff) && string(fixed) != string(src) {
		if err := a.printDiff(path, src, fixed); err != nil {
			return 0, err
		}
	}

	if a.behavior.Enabled(config.ApplyFixes) && string(fixed) != string(src) {
		if err := writeFile(path, fixed); err != nil {
			return 0, err
		}

		a.log.LogAttrs(ctx, slog.LevelDebug, "rewrote file", slog.String("path", path))
	}

	return len(diags), nil
}

// writeFile replaces the contents of path, keeping its permission bits.
func writeFile(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
