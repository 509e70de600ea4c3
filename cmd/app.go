// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the command definitions of the cbviz tools.
package cmd

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cogentcore.org/cbviz/base/logx"
	"cogentcore.org/cbviz/colorspace"
	"cogentcore.org/cbviz/config"
)

// App is the main app type that handles the logic of the cbviz commands.
// Flags are bound to the fields of its [config.Config], so that they
// override the values loaded from a config file.
type App struct {
	*config.Config

	// out is where command results are printed.
	out *termenv.Output
}

// NewApp returns a new [App] using the given config and printing to w
// (os.Stdout if nil).
func NewApp(cfg *config.Config, w io.Writer) *App {
	if cfg == nil {
		cfg = config.New()
	}
	if w == nil {
		w = os.Stdout
	}
	return &App{Config: cfg, out: termenv.NewOutput(w)}
}

// setLevel sets the user logging level from the verbosity flags.
func (a *App) setLevel(cmd *cobra.Command, args []string) {
	logx.UserLevel = logx.LevelFromFlags(a.Debug, a.Verbose, false)
}

// addVerbosityFlags adds the flags shared by every cbviz binary.
func (a *App) addVerbosityFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&a.Verbose, "verbose", "v", a.Verbose, "log informational messages")
	pf.BoolVar(&a.Debug, "debug", a.Debug, "log debugging messages")
	pf.IntVarP(&a.Workers, "workers", "j", a.Workers, "goroutines per image conversion (0 for GOMAXPROCS)")
}

// addSelectionFlags adds the flags that choose the simulated deficiencies.
func (a *App) addSelectionFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&a.Severity, "severity", "s", a.Severity, "[0-100]: severity of the deficiency, 0 being none and 100 being complete")
	fs.StringSliceVarP(&a.Types, "type", "t", a.Types, "comma separated deficiencies, each starting with protan, deuteran, tritan, or mono")
	fs.BoolVarP(&a.All, "all", "a", a.All, "simulate every deficiency at the severity and at full strength (or 50 when the severity is 100)")
	fs.StringVar(&a.MonochromeScaling, "monochrome-scaling", a.MonochromeScaling, "how severity scales monochrome chroma: literal or retain")
}

// resolveSelection lets a selection flag replace a selection that came
// from the config file.
func (a *App) resolveSelection(cmd *cobra.Command) {
	fs := cmd.Flags()
	types, all := fs.Changed("type"), fs.Changed("all")
	switch {
	case all && !types:
		a.Types = nil
	case types && !all:
		a.All = false
	}
}

// exactArgs is [cobra.ExactArgs] reporting an [colorspace.InvalidArgumentError].
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &colorspace.InvalidArgumentError{Arg: "arguments", Value: args, Reason: err.Error()}
		}
		return nil
	}
}

// flagError reports flag parsing errors as [colorspace.InvalidArgumentError].
func flagError(cmd *cobra.Command, err error) error {
	return &colorspace.InvalidArgumentError{Arg: "flags", Value: cmd.CommandPath(), Reason: err.Error()}
}
