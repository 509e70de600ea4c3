// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Severity int      `toml:"severity"`
	Types    []string `toml:"types"`
	Epsilon  float32  `toml:"epsilon"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	s := &settings{Severity: 60, Types: []string{"protan", "mono"}, Epsilon: 0.25}
	require.NoError(t, Save(s, fn))

	o := &settings{}
	require.NoError(t, Open(o, fn))
	assert.Equal(t, s, o)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, Save(&settings{Severity: 10, Epsilon: 0.5}, a))
	require.NoError(t, Save(&settings{Severity: 90, Epsilon: 0.5}, b))

	o := &settings{}
	require.NoError(t, OpenFiles(o, a, b))
	assert.Equal(t, 90, o.Severity)

	assert.Error(t, OpenFiles(o, filepath.Join(dir, "missing.toml")))
	assert.Error(t, ReadBytes(o, []byte("severity = ")))
}
