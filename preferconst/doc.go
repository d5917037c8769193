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

// Package preferconst implements the constguard analysis.
//
// # Overview
//
// ConstGuard reports let declarations whose bindings are never reassigned
// and plans the edit that declares them const instead.
//
// # Example
//
// Before:
//
//	let total = items.reduce(sum);
//	print(total);
//
// After applying constguard's suggested fix:
//
//	const total = items.reduce(sum);
//	print(total);
//
// # Destructuring
//
// A destructuring declaration binds several variables at once. In the
// default "any" mode every unchanged binding is reported individually; in
// "all" mode a pattern is only reported when none of its bindings is
// reassigned. The declaration keyword itself is only rewritten when every
// binding it introduces qualifies.
package preferconst
