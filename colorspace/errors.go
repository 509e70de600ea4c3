// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// InvalidArgumentError is returned when a user supplied value
// (deficiency kind, selection, severity, epsilon, channel, metric)
// is not acceptable.
type InvalidArgumentError struct {
	// Arg is the name of the offending argument.
	Arg string

	// Value is the rejected value.
	Value any

	// Reason describes what is wrong with the value.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Arg, e.Value, e.Reason)
}

// suggest returns the candidate most similar to s, or "" when none is close.
func suggest(s string, candidates []string) string {
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	best, score := "", 0.85
	for _, c := range candidates {
		if sim := strutil.Similarity(s, c, jw); sim > score {
			best, score = c, sim
		}
	}
	return best
}

// withSuggestion appends a hint naming the candidate closest to s, if any.
func withSuggestion(reason, s string, candidates []string) string {
	if sg := suggest(s, candidates); sg != "" {
		return fmt.Sprintf("%s; did you mean %q?", reason, sg)
	}
	return reason
}

// ConversionError is returned when a conversion between two spaces
// is not supported, or the image buffer cannot be interpreted.
type ConversionError struct {
	From, To Space
	Reason   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %v to %v: %s", e.From, e.To, e.Reason)
}

// IOError is returned when an image cannot be read from or written to a path.
type IOError struct {
	// Op is the operation: "read" or "write".
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
