// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"path/filepath"
	"reflect"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/cbviz/base/errors"
	"cogentcore.org/cbviz/base/fsx"
	"cogentcore.org/cbviz/base/reflectx"
)

// Includer facilitates processing include files in config objects.
type Includer interface {
	// IncludesPtr returns a pointer to the Includes []string field containing file(s) to include
	// before processing the current config file.
	IncludesPtr() *[]string
}

// includeStack returns the stack of include files in the natural
// order in which they are encountered (nil if none).
// Files should then be read in reverse order of the slice.
// It returns an error if any of the include files cannot be found on
// [Options.IncludePaths]. It does not alter cfg.
func includeStack(opts *Options, cfg Includer) ([]string, error) {
	clone := reflect.New(reflectx.NonPointerType(reflect.TypeOf(cfg))).Interface().(Includer)
	*clone.IncludesPtr() = *cfg.IncludesPtr()
	return includeStackImpl(opts, clone, nil, map[string]bool{})
}

// includeStackImpl implements includeStack, operating on the cloned cfg.
// seen guards against include cycles.
func includeStackImpl(opts *Options, clone Includer, includes []string, seen map[string]bool) ([]string, error) {
	incs := *clone.IncludesPtr()
	if len(incs) == 0 {
		return includes, nil
	}
	for i := len(incs) - 1; i >= 0; i-- {
		includes = append(includes, incs[i]) // reverse order so later overwrite earlier
	}
	var errs []error
	for _, inc := range incs {
		if seen[inc] {
			errs = append(errs, fmt.Errorf("include cycle at %q", inc))
			continue
		}
		seen[inc] = true
		file := findInclude(opts, inc)
		if file == "" {
			errs = append(errs, fmt.Errorf("include file %q not found", inc))
			continue
		}
		*clone.IncludesPtr() = nil
		if err := openFiles(clone, file); err != nil {
			errs = append(errs, err)
			continue
		}
		var err error
		includes, err = includeStackImpl(opts, clone, includes, seen)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return includes, errors.Join(errs...)
}

// findInclude returns the path of the given include file, or "" if it
// does not exist. A leading ~ is expanded to the home directory, and
// relative names are looked up on [Options.IncludePaths].
func findInclude(opts *Options, inc string) string {
	if exp, err := homedir.Expand(inc); err == nil {
		inc = exp
	}
	if filepath.IsAbs(inc) {
		if ok, _ := fsx.FileExists(inc); ok {
			return inc
		}
		return ""
	}
	if files := fsx.FindFilesOnPaths(opts.IncludePaths, inc); len(files) > 0 {
		return files[0]
	}
	return ""
}
