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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(t.Context())

	return out.String(), err
}

func TestRootReportsIssues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.js")
	if err := os.WriteFile(path, []byte("let a = 1;\nuse(a);\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "--no-color", path)
	if err == nil {
		t.Fatal("command succeeded, want issue error")
	}

	if !strings.Contains(out, "'a' is never reassigned. Use 'const' instead.") {
		t.Errorf("output missing report: %q", out)
	}

	if !strings.Contains(out, path+":1:5:") {
		t.Errorf("output missing location: %q", out)
	}
}

func TestRootWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.js")
	if err := os.WriteFile(path, []byte("let a = 1;\nuse(a);\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "--no-color", "--write", path); err == nil {
		t.Fatal("first run succeeded, want issue error")
	}

	fixed, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(fixed), "const a = 1;\nuse(a);\n"; got != want {
		t.Fatalf("rewritten file = %q, want %q", got, want)
	}

	// the fixed file is clean
	if _, err := runCommand(t, "--no-color", path); err != nil {
		t.Errorf("second run failed: %v", err)
	}
}

func TestRootDiff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.js")
	if err := os.WriteFile(path, []byte("let a = 1;\nuse(a);\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _ := runCommand(t, "--no-color", "--diff", path)

	if !strings.Contains(out, "-let a = 1;") || !strings.Contains(out, "+const a = 1;") {
		t.Errorf("diff output missing edits: %q", out)
	}
}

func TestRootConfig(t *testing.T) {
	dir := t.TempDir()

	source := filepath.Join(dir, "input.js")
	if err := os.WriteFile(source, []byte("let {a, b} = obj;\nuse(a);\nb = 1;\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(dir, "constguard.yaml")
	if err := os.WriteFile(configPath, []byte("destructuring: all\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// "all" mode silences the partially convertible pattern
	if out, err := runCommand(t, "--no-color", "--config", configPath, source); err != nil {
		t.Errorf("command failed: %v, output %q", err, out)
	}

	// the flag overrides the file
	if _, err := runCommand(t, "--no-color", "--config", configPath, "--destructuring", "any", source); err == nil {
		t.Error("any mode should report the convertible binding")
	}

	if _, err := runCommand(t, "--no-color", "--config", filepath.Join(dir, "absent.yaml"), source); err == nil {
		t.Error("missing configuration should fail")
	}
}
