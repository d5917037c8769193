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

package preferconst

import (
	"slices"
	"strings"

	"fillmore-labs.com/constguard/internal/report"
)

// Position is a location in the analyzed source. Offset is a byte offset;
// Line and Column are 1-based, with Column counted in bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Fix is a replacement of the half-open byte range [Start, End).
type Fix struct {
	Start int
	End   int
	Text  string
}

// Diagnostic reports one binding that should have been declared const. Fix
// is nil when the declaration cannot be rewritten automatically.
type Diagnostic struct {
	Filename string
	Pos      Position
	End      Position
	Message  string
	Fix      *Fix
}

// Apply returns src with the planned fixes of diags applied. Diagnostics of
// one declaration share the same edit; duplicates collapse.
func Apply(src []byte, diags []Diagnostic) []byte {
	fixes := make([]Fix, 0, len(diags))

	for _, d := range diags {
		if d.Fix != nil {
			fixes = append(fixes, *d.Fix)
		}
	}

	if len(fixes) == 0 {
		return src
	}

	slices.SortFunc(fixes, func(a, b Fix) int { return a.Start - b.Start })
	fixes = slices.CompactFunc(fixes, func(a, b Fix) bool { return a.Start == b.Start && a.End == b.End })

	var out strings.Builder

	pos := 0

	for _, fix := range fixes {
		if fix.Start < pos || fix.End > len(src) {
			continue
		}

		out.Write(src[pos:fix.Start])
		out.WriteString(fix.Text)
		pos = fix.End
	}

	out.Write(src[pos:])

	return []byte(out.String())
}

func convertDiagnostics(filename, src string, diags []report.Diagnostic) []Diagnostic {
	if len(diags) == 0 {
		return nil
	}

	index := newLineIndex(src)

	converted := make([]Diagnostic, len(diags))

	for i, d := range diags {
		r := d.Node.Range()

		c := Diagnostic{
			Filename: filename,
			Pos:      index.position(r.Start),
			End:      index.position(r.End),
			Message:  d.Message,
		}

		if d.Fix != nil {
			c.Fix = &Fix{Start: d.Fix.Range.Start, End: d.Fix.Range.End, Text: d.Fix.Text}
		}

		converted[i] = c
	}

	return converted
}

// lineIndex maps byte offsets to line and column numbers.
type lineIndex struct {
	starts []int // byte offset of each line start
}

func newLineIndex(src string) *lineIndex {
	starts := []int{0}

	for i := range len(src) {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return &lineIndex{starts: starts}
}

func (x *lineIndex) position(offset int) Position {
	line, found := slices.BinarySearch(x.starts, offset)
	if !found {
		line--
	}

	return Position{Offset: offset, Line: line + 1, Column: offset - x.starts[line] + 1}
}
