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

package report

import (
	"slices"
	"strings"
)

// Apply returns src with all planned fixes applied. Diagnostics of one
// declaration share the same keyword edit; duplicate ranges collapse to a
// single application. Fix ranges never overlap otherwise.
func Apply(src string, diags []Diagnostic) string {
	fixes := make([]Fix, 0, len(diags))

	for _, d := range diags {
		if d.Fix != nil {
			fixes = append(fixes, *d.Fix)
		}
	}

	if len(fixes) == 0 {
		return src
	}

	slices.SortFunc(fixes, func(a, b Fix) int { return a.Range.Start - b.Range.Start })
	fixes = slices.CompactFunc(fixes, func(a, b Fix) bool { return a.Range == b.Range })

	var out strings.Builder

	pos := 0

	for _, fix := range fixes {
		if fix.Range.Start < pos || fix.Range.End > len(src) {
			continue
		}

		out.WriteString(src[pos:fix.Range.Start])
		out.WriteString(fix.Text)
		pos = fix.Range.End
	}

	out.WriteString(src[pos:])

	return out.String()
}

// Fixable counts the diagnostics carrying a planned edit.
func Fixable(diags []Diagnostic) int {
	count := 0

	for _, d := range diags {
		if d.Fix != nil {
			count++
		}
	}

	return count
}
