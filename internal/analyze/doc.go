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

// Package analyze decides, per variable, whether its binding could have been
// declared const, and groups the verdicts by the destructuring host they
// were written from.
//
// The unit of a verdict is the anchor identifier: the single write position
// that proves the variable is assigned exactly once. Grouping exists because
// one destructuring pattern binds several variables at once and a fix must
// consider all of them together.
package analyze
