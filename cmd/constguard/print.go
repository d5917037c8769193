// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"

	"fillmore-labs.com/constguard/preferconst"
)

type styles struct {
	location lipgloss.Style
	message  lipgloss.Style
	fixable  lipgloss.Style
	added    lipgloss.Style
	removed  lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		return styles{}
	}

	return styles{
		location: lipgloss.NewStyle().Bold(true),
		message:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		fixable:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		added:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		removed:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (a *app) printDiagnostics(diags []preferconst.Diagnostic) {
	for _, d := range diags {
		location := fmt.Sprintf("%s:%d:%d:", d.Filename, d.Pos.Line, d.Pos.Column)

		suffix := ""
		if d.Fix != nil {
			suffix = " " + a.styles.fixable.Render("[fixable]")
		}

		fmt.Fprintf(a.out, "%s %s%s\n",
			a.styles.location.Render(location), a.styles.message.Render(d.Message), suffix)
	}
}

// printDiff renders a unified diff between the original and fixed text.
func (a *app) printDiff(path string, src, fixed []byte) error {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(src)),
		B:        difflib.SplitLines(string(fixed)),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("rendering diff for %s: %w", path, err)
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			fmt.Fprint(a.out, a.styles.added.Render(strings.TrimSuffix(line, "\n"))+"\n")

		case strings.HasPrefix(line, "-"):
			fmt.Fprint(a.out, a.styles.removed.Render(strings.TrimSuffix(line, "\n"))+"\n")

		default:
			fmt.Fprint(a.out, line)
		}
	}

	return nil
}
