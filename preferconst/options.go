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

package preferconst

import (
	"log/slog"
	"slices"

	"fillmore-labs.com/constguard/internal/config"
	"fillmore-labs.com/constguard/internal/run"
)

// Option configures specific behavior of a [New] constguard linter.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// DestructuringMode selects how destructuring declarations are judged.
type DestructuringMode string

// Destructuring modes.
const (
	// DestructuringAny reports every unchanged binding of a pattern.
	DestructuringAny DestructuringMode = "any"

	// DestructuringAll reports a pattern only when none of its bindings is
	// reassigned.
	DestructuringAll DestructuringMode = "all"
)

// WithDestructuring is an [Option] to configure how destructuring
// declarations are judged. Unknown modes fall back to [DestructuringAny].
func WithDestructuring(mode DestructuringMode) Option {
	return destructuringOption{mode: mode}
}

type destructuringOption struct{ mode DestructuringMode }

func (o destructuringOption) apply(r *run.Options) {
	mode, err := config.ParseMode(string(o.mode))
	if err != nil {
		mode = config.DestructuringAny
	}

	r.Config.Destructuring = mode
}

func (o destructuringOption) LogAttr() slog.Attr {
	return slog.String("destructuring", string(o.mode))
}

// WithIgnoreReadBeforeAssign is an [Option] to exclude variables that are
// read before their first assignment.
func WithIgnoreReadBeforeAssign(ignore bool) Option {
	return ignoreReadBeforeAssignOption{ignore: ignore}
}

type ignoreReadBeforeAssignOption struct{ ignore bool }

func (o ignoreReadBeforeAssignOption) apply(r *run.Options) {
	r.Config.IgnoreReadBeforeAssign = o.ignore
}

func (o ignoreReadBeforeAssignOption) LogAttr() slog.Attr {
	return slog.Bool("ignore-read-before-assign", o.ignore)
}

// WithAllowedCallees is an [Option] to suppress reports for bindings
// initialized by a direct call to one of the named functions.
func WithAllowedCallees(callees []string) Option {
	return allowedCalleesOption{callees: slices.Clone(callees)}
}

type allowedCalleesOption struct{ callees []string }

func (o allowedCalleesOption) apply(r *run.Options) {
	r.Config.AllowedCallees = slices.Clone(o.callees)
}

func (o allowedCalleesOption) LogAttr() slog.Attr {
	return slog.Any("allowed-callees", o.callees)
}
