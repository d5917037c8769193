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

// Package report turns analysis verdicts into diagnostics and plans the
// text edits that rewrite declarations to const.
package report

import (
	"fmt"

	"fillmore-labs.com/constguard/internal/ast"
)

// Fix is a single replacement of a source range.
type Fix struct {
	Range ast.Range
	Text  string
}

// Diagnostic reports one binding that should have been declared const. Fix
// is nil when the declaration cannot be rewritten safely.
type Diagnostic struct {
	Node    *ast.Identifier
	Message string
	Fix     *Fix
}

func useConstMessage(name string) string {
	return fmt.Sprintf("'%s' is never reassigned. Use 'const' instead.", name)
}
