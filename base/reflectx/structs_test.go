// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type plotOptions struct {
	DPI   int     `default:"300"`
	Scale float32 `default:"1.5"`
}

type options struct {
	Name    string   `default:"cbviz"`
	Enabled bool     `default:"true"`
	Kinds   []string `default:"protan, tritan"`
	Count   uint8    `default:"7"`
	NoTag   string
	Plot    plotOptions
	hidden  int `default:"3"`
}

func TestSetFromDefaultTags(t *testing.T) {
	o := &options{NoTag: "kept"}
	assert.NoError(t, SetFromDefaultTags(o))
	assert.Equal(t, "cbviz", o.Name)
	assert.True(t, o.Enabled)
	assert.Equal(t, []string{"protan", "tritan"}, o.Kinds)
	assert.Equal(t, uint8(7), o.Count)
	assert.Equal(t, "kept", o.NoTag)
	assert.Equal(t, 300, o.Plot.DPI)
	assert.Equal(t, float32(1.5), o.Plot.Scale)
	assert.Equal(t, 0, o.hidden)

	assert.NoError(t, SetFromDefaultTags(nil))
	assert.Error(t, SetFromDefaultTags(&struct {
		Bad int `default:"many"`
	}{}))
	assert.Error(t, SetFromDefaultTags(3))
}
