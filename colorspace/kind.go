// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"strings"

	"cogentcore.org/cbviz/colors/cvd"
)

// Kind is the kind of color vision a [Transform] simulates.
type Kind int32

const (
	// Protan is reduced or absent red (L cone) sensitivity.
	Protan Kind = iota

	// Deuteran is reduced or absent green (M cone) sensitivity.
	Deuteran

	// Tritan is reduced or absent blue (S cone) sensitivity.
	Tritan

	// Monochrome is partial or total loss of chroma discrimination.
	Monochrome

	// Original is normal vision: the identity transform.
	Original
)

// AllKinds are the deficiency kinds, in the order used by [Generate].
var AllKinds = []Kind{Protan, Deuteran, Tritan, Monochrome}

var kindNames = [...]string{"protan", "deuteran", "tritan", "monochrome", "original"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}

// Dichromatic returns whether the kind is simulated by a cone
// deficiency model (Protan, Deuteran, or Tritan).
func (k Kind) Dichromatic() bool {
	return k == Protan || k == Deuteran || k == Tritan
}

// cvdType returns the deficiency type of a dichromatic kind.
func (k Kind) cvdType() cvd.Type {
	switch k {
	case Deuteran:
		return cvd.Deuteran
	case Tritan:
		return cvd.Tritan
	}
	return cvd.Protan
}

// kindPrefixes are the accepted prefixes of user supplied kind names.
var kindPrefixes = []struct {
	prefix string
	kind   Kind
}{
	{"protan", Protan},
	{"deuteran", Deuteran},
	{"tritan", Tritan},
	{"mono", Monochrome},
}

// ParseKind returns the deficiency kind named by the given string,
// which must start with one of "protan", "deuteran", "tritan", or "mono"
// (so "protanopia", "deuteranomaly", and "monochrome" are all accepted).
// Anything else returns an [InvalidArgumentError].
func ParseKind(s string) (Kind, error) {
	for _, kp := range kindPrefixes {
		if strings.HasPrefix(s, kp.prefix) {
			return kp.kind, nil
		}
	}
	names := make([]string, len(kindPrefixes))
	for i, kp := range kindPrefixes {
		names[i] = kp.prefix
	}
	return Original, &InvalidArgumentError{Arg: "type", Value: fmt.Sprintf("%q", s), Reason: withSuggestion("must start with one of protan, deuteran, tritan, mono", s, names)}
}

// ParseKinds parses each of the given strings with [ParseKind],
// removing duplicate kinds while keeping the first occurrence order.
// Each string may itself be a comma separated list.
func ParseKinds(values []string) ([]Kind, error) {
	var kinds []Kind
	seen := map[Kind]bool{}
	for _, value := range values {
		for _, s := range strings.Split(value, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				return nil, &InvalidArgumentError{Arg: "type", Value: fmt.Sprintf("%q", value), Reason: "empty type in list"}
			}
			k, err := ParseKind(s)
			if err != nil {
				return nil, err
			}
			if seen[k] {
				continue
			}
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}
