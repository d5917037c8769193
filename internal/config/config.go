// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package config holds the analysis options and their file representation.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode selects how destructuring declarations are judged.
type Mode uint8

const (
	// DestructuringAny reports every convertible binding of a pattern,
	// even when sibling bindings are reassigned.
	DestructuringAny Mode = iota

	// DestructuringAll reports a pattern's bindings only when every one of
	// them is convertible.
	DestructuringAll
)

// String returns the mode name as it appears in configuration files.
func (m Mode) String() string {
	switch m {
	case DestructuringAny:
		return "any"

	case DestructuringAll:
		return "all"

	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode converts a configuration value to a [Mode].
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "any":
		return DestructuringAny, nil

	case "all":
		return DestructuringAll, nil

	default:
		return 0, fmt.Errorf("%w: destructuring mode %q", ErrInvalid, s)
	}
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	mode, err := ParseMode(s)
	if err != nil {
		return err
	}

	*m = mode

	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (m Mode) MarshalYAML() (any, error) { return m.String(), nil }

// ErrInvalid is returned for unusable configuration values.
var ErrInvalid = errors.New("invalid configuration")

// Options are the tunables of the analysis.
type Options struct {
	// Destructuring selects the "any" (default) or "all" group mode.
	Destructuring Mode `yaml:"destructuring"`

	// IgnoreReadBeforeAssign excludes variables that are read before their
	// first assignment, typically hoisted function-scope uses.
	IgnoreReadBeforeAssign bool `yaml:"ignore-read-before-assign"`

	// AllowedCallees suppresses reports for bindings initialized by a
	// direct call to one of the named functions. Entries are plain names
	// or single-level "object.method" paths.
	AllowedCallees []string `yaml:"allowed-callees"`
}

// Default returns the options used when no configuration is given.
func Default() Options {
	return Options{Destructuring: DestructuringAny}
}

// Load reads options from a YAML file, applying defaults for absent keys.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading configuration: %w", err)
	}

	opts := Default()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing configuration %s: %w", path, err)
	}

	return opts, nil
}

// BehaviorFlags represent command-line behavior toggles.
type BehaviorFlags uint8

const (
	// ShowDiff prints a unified diff of the planned fixes.
	ShowDiff BehaviorFlags = 1 << iota

	// ApplyFixes rewrites the analyzed files in place.
	ApplyFixes

	// WatchFiles keeps running and re-analyzes files as they change.
	WatchFiles

	// ColorOutput renders reports with terminal colors.
	ColorOutput
)

// Behavior holds the enabled behavior flags.
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the behavior used when no flags are given.
func DefaultBehavior() Behavior {
	return NewBitMask(ColorOutput)
}
