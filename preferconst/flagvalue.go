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
	"strings"

	"fillmore-labs.com/constguard/internal/config"
)

// modeValue adapts [config.Mode] to the flag interfaces.
type modeValue struct {
	mode *config.Mode
}

// Set implements [flag.Value].
func (v modeValue) Set(s string) error {
	mode, err := config.ParseMode(s)
	if err != nil {
		return err
	}

	*v.mode = mode

	return nil
}

// String implements [flag.Value].
func (v modeValue) String() string {
	if v.mode == nil {
		return config.DestructuringAny.String()
	}

	return v.mode.String()
}

// Get implements [flag.Getter].
func (v modeValue) Get() any {
	if v.mode == nil {
		return config.DestructuringAny
	}

	return *v.mode
}

// calleeList adapts a comma-separated callee list to the flag interfaces.
type calleeList struct {
	callees *[]string
}

// Set implements [flag.Value].
func (v calleeList) Set(s string) error {
	var callees []string

	for _, callee := range strings.Split(s, ",") {
		if callee = strings.TrimSpace(callee); callee != "" {
			callees = append(callees, callee)
		}
	}

	*v.callees = callees

	return nil
}

// String implements [flag.Value].
func (v calleeList) String() string {
	if v.callees == nil {
		return ""
	}

	return strings.Join(*v.callees, ",")
}

// Get implements [flag.Getter].
func (v calleeList) Get() any {
	if v.callees == nil {
		return nil
	}

	return *v.callees
}
