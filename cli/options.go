// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Options are the options for [Open].
type Options struct {

	// AppName is the name of the app, used for the user config
	// directory and the config file names.
	AppName string

	// ConfigEnv is the environment variable holding an explicit
	// config file path, which takes the place of the search.
	ConfigEnv string

	// ConfigFiles are the config file names to look for on
	// IncludePaths; the first one found is used.
	ConfigFiles []string

	// IncludePaths are the directories searched for config files
	// and their includes, in order.
	IncludePaths []string
}

// DefaultOptions returns default options for the given app name:
// <app>.toml or <app>.yaml in the current directory or the user
// config directory, overridden by the <APP>_CONFIG environment variable.
func DefaultOptions(appName string) *Options {
	opts := &Options{
		AppName:      appName,
		ConfigEnv:    strings.ToUpper(appName) + "_CONFIG",
		ConfigFiles:  []string{appName + ".toml", appName + ".yaml", appName + ".yml"},
		IncludePaths: []string{"."},
	}
	if dir, err := os.UserConfigDir(); err == nil {
		opts.IncludePaths = append(opts.IncludePaths, filepath.Join(dir, appName))
	}
	return opts
}
