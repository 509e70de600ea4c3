// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesOnPaths(t *testing.T) {
	d1 := t.TempDir()
	d2 := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(d2, "cbviz.toml"), []byte("severity = 50\n"), 0666))
	require.NoError(t, os.Mkdir(filepath.Join(d1, "cbviz.yaml"), 0750))

	res := FindFilesOnPaths([]string{"", d1, d2}, "cbviz.toml", "cbviz.yaml")
	require.Len(t, res, 1)
	assert.Equal(t, "cbviz.toml", filepath.Base(res[0]))
	assert.True(t, filepath.IsAbs(res[0]))

	ok, err := FileExists(filepath.Join(d1, "missing.toml"))
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSplitExt(t *testing.T) {
	base, ext := SplitExt("out/fig.png")
	assert.Equal(t, "out/fig", base)
	assert.Equal(t, "png", ext)

	base, ext = SplitExt("out/fig")
	assert.Equal(t, "out/fig", base)
	assert.Equal(t, "", ext)
}
