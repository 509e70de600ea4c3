// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Selection is the user request of which deficiencies to simulate:
// either an explicit list of kind names, or All of them.
type Selection struct {
	// Types are kind names, each starting with protan, deuteran, tritan, or mono.
	Types []string

	// All selects every deficiency kind at two severities.
	All bool
}

// Kinds checks that exactly one of Types and All is given, and returns
// the parsed kinds (nil when All is set).
func (sel Selection) Kinds() ([]Kind, error) {
	hasTypes := len(sel.Types) > 0
	if hasTypes && sel.All {
		return nil, &InvalidArgumentError{Arg: "selection", Value: sel.Types, Reason: "types and all are mutually exclusive"}
	}
	if !hasTypes && !sel.All {
		return nil, &InvalidArgumentError{Arg: "selection", Value: "none", Reason: "one of types or all is required"}
	}
	if sel.All {
		return nil, nil
	}
	kinds, err := ParseKinds(sel.Types)
	if err != nil {
		return nil, err
	}
	if len(kinds) == 0 {
		return nil, &InvalidArgumentError{Arg: "selection", Value: sel.Types, Reason: "no types given"}
	}
	return kinds, nil
}

// Complement returns the severity paired with the given one in
// all mode: 100, or 50 when the severity is already 100.
func Complement(severity int) int {
	if severity != 100 {
		return 100
	}
	return 50
}

// Generate returns the ordered set of transforms for the given kinds at
// the given severity. With all, kinds is ignored and each of [AllKinds]
// contributes a transform at severity followed by one at its [Complement].
func Generate(kinds []Kind, severity int, all bool, opts ...Option) ([]*Transform, error) {
	if severity < 0 || severity > 100 {
		return nil, &InvalidArgumentError{Arg: "severity", Value: severity, Reason: "must be in [0, 100]"}
	}
	var set []*Transform
	add := func(k Kind, sev int) error {
		t, err := New(k, sev, opts...)
		if err != nil {
			return err
		}
		set = append(set, t)
		return nil
	}
	if all {
		for _, k := range AllKinds {
			if err := add(k, severity); err != nil {
				return nil, err
			}
			if err := add(k, Complement(severity)); err != nil {
				return nil, err
			}
		}
		return set, nil
	}
	for _, k := range kinds {
		if err := add(k, severity); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// GenerateSelection validates the selection and returns its transforms.
func GenerateSelection(sel Selection, severity int, opts ...Option) ([]*Transform, error) {
	kinds, err := sel.Kinds()
	if err != nil {
		return nil, err
	}
	return Generate(kinds, severity, sel.All, opts...)
}

// ConvertAll converts the image with every transform of the set
// concurrently, returning the results in set order. The first error
// cancels the remaining conversions.
func ConvertAll(ctx context.Context, img *Image, set []*Transform) ([]*Image, error) {
	out := make([]*Image, len(set))
	eg, ctx := errgroup.WithContext(ctx)
	for i, t := range set {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := t.Convert(img)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
