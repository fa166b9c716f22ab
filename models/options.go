// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Default poll options
const (
	OptionDouble    = "double"
	OptionSingle    = "single"
	OptionAlternate = "alternate"
)

// OptionSet is the closed, ordered list of choices a poll accepts.
type OptionSet []string

func DefaultOptionSet() OptionSet {
	return OptionSet{OptionDouble, OptionSingle, OptionAlternate}
}

// Contains reports whether option is one of the poll's choices
func (s OptionSet) Contains(option string) bool {
	return slices.Contains(s, option)
}

// ParseOptionSet parses a comma separated option list such as
// "double,single,alternate". Labels are trimmed; empty or duplicate
// labels are rejected.
func ParseOptionSet(csv string) (OptionSet, error) {
	var set OptionSet
	for _, raw := range strings.Split(csv, ",") {
		label := strings.TrimSpace(raw)
		if label == "" {
			return nil, errors.New("option labels cannot be empty")
		}
		if set.Contains(label) {
			return nil, fmt.Errorf("duplicate option %q", label)
		}
		set = append(set, label)
	}
	return set, nil
}
