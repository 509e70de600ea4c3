// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the cbviz commands.
// Values come from `default:` tags, then from an optional cbviz.toml or
// cbviz.yaml file, and finally from command line flags.
package config

import (
	"github.com/mitchellh/go-homedir"

	"cogentcore.org/cbviz/cli"
	"cogentcore.org/cbviz/colorspace"
)

// AppName is the name used for config files and the config directory.
const AppName = "cbviz"

// Config is the configuration shared by the cbviz commands.
type Config struct {

	// Includes are other config files read before this one,
	// so that this file overrides their values.
	Includes []string `toml:"includes" yaml:"includes"`

	// Severity is the severity of the simulated deficiencies, 0-100.
	Severity int `toml:"severity" yaml:"severity" default:"100"`

	// Types are the deficiency kinds to simulate.
	Types []string `toml:"types" yaml:"types"`

	// All simulates every kind at Severity and its complement.
	All bool `toml:"all" yaml:"all"`

	// Epsilon is the pass threshold of the test command, as a fraction
	// of the maximal lightness difference.
	Epsilon float32 `toml:"epsilon" yaml:"epsilon" default:"0.1"`

	// Quiet suppresses the per transform results of the test command.
	Quiet bool `toml:"quiet" yaml:"quiet"`

	// IndividualPlots writes one figure per transform.
	IndividualPlots bool `toml:"individual_plots" yaml:"individual_plots"`

	// NoOriginal leaves the original image out of combined figures.
	NoOriginal bool `toml:"no_original" yaml:"no_original"`

	// DPI is the figure resolution in dots per inch.
	DPI int `toml:"dpi" yaml:"dpi" default:"300"`

	// Diagnostics is a directory for the test command to write
	// difference heatmaps to; none are written when empty.
	Diagnostics string `toml:"diagnostics" yaml:"diagnostics"`

	// Metric is the color difference reported alongside the test results.
	Metric string `toml:"metric" yaml:"metric" default:"cam02-ucs"`

	// MonochromeScaling is how monochrome severity scales chroma:
	// literal or retain.
	MonochromeScaling string `toml:"monochrome_scaling" yaml:"monochrome_scaling" default:"literal"`

	// Workers bounds the goroutines used per conversion; 0 means GOMAXPROCS.
	Workers int `toml:"workers" yaml:"workers"`

	// Watch reruns the simulate command whenever the input file changes.
	Watch bool `toml:"watch" yaml:"watch"`

	// Verbose logs informational messages.
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// Debug logs debugging messages.
	Debug bool `toml:"debug" yaml:"debug"`
}

func (c *Config) IncludesPtr() *[]string { return &c.Includes }

// New returns a new [Config] with default values.
func New() *Config {
	c := &Config{}
	cli.SetFromDefaults(c)
	return c
}

// Load returns the [Config] read from the config file found with
// [cli.DefaultOptions], or the defaults if there is none, along with
// the path of the file used.
func Load() (*Config, string, error) {
	return LoadFrom(cli.DefaultOptions(AppName))
}

// LoadFrom is [Load] with the given options.
func LoadFrom(opts *cli.Options) (*Config, string, error) {
	c := &Config{}
	file, err := cli.Open(opts, c)
	if err != nil {
		return nil, file, err
	}
	// the diagnostics directory may be given relative to the home directory
	if c.Diagnostics, err = homedir.Expand(c.Diagnostics); err != nil {
		return nil, file, err
	}
	return c, file, nil
}

// Validate checks the values that the transforms themselves do not.
func (c *Config) Validate() error {
	if c.Severity < 0 || c.Severity > 100 {
		return &colorspace.InvalidArgumentError{Arg: "severity", Value: c.Severity, Reason: "must be in [0, 100]"}
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return &colorspace.InvalidArgumentError{Arg: "epsilon", Value: c.Epsilon, Reason: "must be in [0, 1]"}
	}
	if c.DPI <= 0 {
		return &colorspace.InvalidArgumentError{Arg: "dpi", Value: c.DPI, Reason: "must be positive"}
	}
	if c.Workers < 0 {
		return &colorspace.InvalidArgumentError{Arg: "workers", Value: c.Workers, Reason: "must not be negative"}
	}
	if _, err := colorspace.ParseMetric(c.Metric); err != nil {
		return err
	}
	if _, err := colorspace.ParseMonochromeScaling(c.MonochromeScaling); err != nil {
		return err
	}
	return nil
}

// Selection returns the requested deficiency kinds.
func (c *Config) Selection() colorspace.Selection {
	return colorspace.Selection{Types: c.Types, All: c.All}
}

// TransformOptions returns the [colorspace.Option]s configured here.
func (c *Config) TransformOptions() ([]colorspace.Option, error) {
	ms, err := colorspace.ParseMonochromeScaling(c.MonochromeScaling)
	if err != nil {
		return nil, err
	}
	return []colorspace.Option{colorspace.WithScaling(ms), colorspace.WithTransformWorkers(c.Workers)}, nil
}

// Transforms validates the config and returns the selected set of transforms.
func (c *Config) Transforms() ([]*colorspace.Transform, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts, err := c.TransformOptions()
	if err != nil {
		return nil, err
	}
	return colorspace.GenerateSelection(c.Selection(), c.Severity, opts...)
}
