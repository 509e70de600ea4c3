// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Severity int      `yaml:"severity"`
	Types    []string `yaml:"types"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.yaml")
	s := &settings{Severity: 40, Types: []string{"deuteran"}}
	require.NoError(t, Save(s, fn))

	o := &settings{}
	require.NoError(t, Open(o, fn))
	assert.Equal(t, s, o)
}

func TestReadEmpty(t *testing.T) {
	o := &settings{Severity: 7}
	require.NoError(t, Read(o, strings.NewReader("")))
	assert.Equal(t, 7, o.Severity)
}
