// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/cbviz/cli"
	"cogentcore.org/cbviz/colorspace"
)

func TestNew(t *testing.T) {
	c := New()
	assert.Equal(t, 100, c.Severity)
	assert.Equal(t, float32(0.1), c.Epsilon)
	assert.Equal(t, 300, c.DPI)
	assert.Equal(t, "cam02-ucs", c.Metric)
	assert.Equal(t, "literal", c.MonochromeScaling)
	assert.Nil(t, c.Types)
	assert.False(t, c.All)
	assert.NoError(t, c.Validate())
}

func testOptions(dir string) *cli.Options {
	return &cli.Options{AppName: AppName, ConfigEnv: "CBVIZ_TEST_CONFIG", ConfigFiles: []string{"cbviz.toml", "cbviz.yaml"}, IncludePaths: []string{dir}}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	data := "severity = 40\ntypes = [\"protan\", \"mono\"]\nmonochrome_scaling = \"retain\"\ndpi = 150\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cbviz.toml"), []byte(data), 0666))
	c, file, err := LoadFrom(testOptions(dir))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cbviz.toml"), file)
	assert.Equal(t, 40, c.Severity)
	assert.Equal(t, []string{"protan", "mono"}, c.Types)
	assert.Equal(t, 150, c.DPI)
	assert.Equal(t, float32(0.1), c.Epsilon)

	set, err := c.Transforms()
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Equal(t, "Protanomaly", set[0].Name)
	assert.Equal(t, colorspace.ScaleRetain, set[1].Scaling)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cbviz.yaml"), []byte("all: true\nepsilon: 0.5\n"), 0666))
	c, _, err := LoadFrom(testOptions(dir))
	require.NoError(t, err)
	assert.True(t, c.All)
	assert.Equal(t, float32(0.5), c.Epsilon)
	set, err := c.Transforms()
	require.NoError(t, err)
	assert.Len(t, set, 8)
}

func TestLoadHomeDiagnostics(t *testing.T) {
	dir := t.TempDir()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	defer func() { homedir.DisableCache = false }()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cbviz.toml"), []byte("diagnostics = \"~/diag\"\n"), 0666))
	c, _, err := LoadFrom(testOptions(dir))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "diag"), c.Diagnostics)
}

func TestLoadNone(t *testing.T) {
	c, file, err := LoadFrom(testOptions(t.TempDir()))
	require.NoError(t, err)
	assert.Equal(t, "", file)
	assert.Equal(t, New(), c)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		arg string
		set func(c *Config)
	}{
		{"severity", func(c *Config) { c.Severity = 101 }},
		{"severity", func(c *Config) { c.Severity = -1 }},
		{"epsilon", func(c *Config) { c.Epsilon = 1.5 }},
		{"dpi", func(c *Config) { c.DPI = 0 }},
		{"workers", func(c *Config) { c.Workers = -2 }},
		{"metric", func(c *Config) { c.Metric = "euclid" }},
		{"monochrome scaling", func(c *Config) { c.MonochromeScaling = "half" }},
	}
	for _, test := range tests {
		c := New()
		test.set(c)
		err := c.Validate()
		var ia *colorspace.InvalidArgumentError
		if assert.ErrorAs(t, err, &ia, test.arg) {
			assert.Equal(t, test.arg, ia.Arg)
		}
	}
}

func TestTransformsSelection(t *testing.T) {
	c := New()
	_, err := c.Transforms()
	var ia *colorspace.InvalidArgumentError
	require.ErrorAs(t, err, &ia)
	assert.Equal(t, "selection", ia.Arg)

	c.Types = []string{"tritan"}
	c.All = true
	_, err = c.Transforms()
	require.ErrorAs(t, err, &ia)
	assert.Equal(t, "selection", ia.Arg)

	c.All = false
	c.Types = []string{"tritanopia,deuteranomaly,tritan"}
	set, err := c.Transforms()
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Equal(t, colorspace.Tritan, set[0].Kind)
	assert.Equal(t, colorspace.Deuteran, set[1].Kind)
}
