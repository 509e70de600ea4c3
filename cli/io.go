// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/cbviz/base/fsx"
	"cogentcore.org/cbviz/base/iox/tomlx"
	"cogentcore.org/cbviz/base/iox/yamlx"
)

// openFiles reads the config struct from the given files in order,
// decoding each as YAML or TOML according to its extension.
func openFiles(cfg any, files ...string) error {
	for _, fn := range files {
		var err error
		switch strings.ToLower(filepath.Ext(fn)) {
		case ".yaml", ".yml":
			err = yamlx.Open(cfg, fn)
		default:
			err = tomlx.Open(cfg, fn)
		}
		if err != nil {
			return fmt.Errorf("reading config file %q: %w", fn, err)
		}
	}
	return nil
}

// Find returns the config file to load: the path in the
// [Options.ConfigEnv] environment variable when set (with a leading ~
// expanded to the home directory), else the first of
// [Options.ConfigFiles] found on [Options.IncludePaths], else "".
func Find(opts *Options) string {
	if opts.ConfigEnv != "" {
		if fn := os.Getenv(opts.ConfigEnv); fn != "" {
			if exp, err := homedir.Expand(fn); err == nil {
				fn = exp
			}
			return fn
		}
	}
	for _, path := range opts.IncludePaths {
		if files := fsx.FindFilesOnPaths([]string{path}, opts.ConfigFiles...); len(files) > 0 {
			return files[0]
		}
	}
	return ""
}

// Open sets cfg from its `default:` tags and then from the config file
// given by [Find], if any, returning the file that was used.
func Open(opts *Options, cfg any) (string, error) {
	if err := SetFromDefaults(cfg); err != nil {
		return "", err
	}
	file := Find(opts)
	if file == "" {
		return "", nil
	}
	if err := openWithIncludes(opts, cfg, file); err != nil {
		return file, err
	}
	slog.Debug("loaded config", "file", file)
	return file, nil
}

// openWithIncludes reads the config struct from the given config file,
// looking on [Options.IncludePaths] for its includes.
// It opens any Includes specified in the given config file in the natural
// include order so that includers overwrite included settings.
// It is equivalent to [openFiles] if there are no Includes. It returns an error if
// any of the include files cannot be found next to file or on
// [Options.IncludePaths].
func openWithIncludes(opts *Options, cfg any, file string) error {
	if ok, err := fsx.FileExists(file); !ok {
		if err == nil {
			err = fmt.Errorf("config file %q not found", file)
		}
		return err
	}
	if err := openFiles(cfg, file); err != nil {
		return err
	}
	incfg, ok := cfg.(Includer)
	if !ok {
		return nil
	}
	local := *opts
	local.IncludePaths = append([]string{filepath.Dir(file)}, opts.IncludePaths...)
	opts = &local
	incs, err := includeStack(opts, incfg)
	if err != nil {
		return err
	}
	if len(incs) == 0 {
		return nil
	}
	for i := len(incs) - 1; i >= 0; i-- {
		if err := openFiles(cfg, findInclude(opts, incs[i])); err != nil {
			return err
		}
	}
	// reopen original
	if err := openFiles(cfg, file); err != nil {
		return err
	}
	*incfg.IncludesPtr() = incs
	return nil
}
