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

package analyze

import (
	"fillmore-labs.com/constguard/internal/ast"
	"fillmore-labs.com/constguard/internal/scope"
)

// Group collects the per-variable verdicts sharing one destructuring host.
// Members holds one entry per write position in host order; a nil member
// marks a variable of the pattern that cannot become const.
type Group struct {
	Host    ast.Node // *ast.VariableDeclarator or *ast.AssignmentExpression
	Members []*ast.Identifier
}

// GroupByDestructuring analyzes the given variables and buckets their
// verdicts by destructuring host. Groups come back in first-encounter
// order, so members of the same declaration stay adjacent when variables
// are passed in source order.
//
// A plain initialized declarator counts as its own host of one, which makes
// the group the uniform unit downstream: every convertible binding lives in
// exactly one group.
func GroupByDestructuring(variables []*scope.Variable, ignoreReadBeforeAssign bool) []Group {
	index := make(map[ast.Node]int)

	var groups []Group

	for _, v := range variables {
		anchor := ConstAnchor(v, ignoreReadBeforeAssign)

		var prev *ast.Identifier

		for _, ref := range v.References {
			id := ref.Identifier

			// one entry per write position, even if the reference list
			// ever carries split read/write records for one identifier
			if ref.IsWrite() && id != prev {
				if host := DestructuringHost(ref); host != nil {
					if i, ok := index[host]; ok {
						groups[i].Members = append(groups[i].Members, anchor)
					} else {
						index[host] = len(groups)
						groups = append(groups, Group{Host: host, Members: []*ast.Identifier{anchor}})
					}
				}
			}

			prev = id
		}
	}

	return groups
}
