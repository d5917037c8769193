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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/constguard/internal/config"
)

func writeConfig(tb testing.TB, content string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "constguard.yaml")
	require.NoError(tb, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
destructuring: all
ignore-read-before-assign: true
allowed-callees:
  - require
  - api.fetch
`)

	opts, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DestructuringAll, opts.Destructuring)
	assert.True(t, opts.IgnoreReadBeforeAssign)
	assert.Equal(t, []string{"require", "api.fetch"}, opts.AllowedCallees)
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{}`)

	opts, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Default(), opts)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing_file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid_mode", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeConfig(t, `destructuring: sometimes`))
		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("malformed_yaml", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeConfig(t, "destructuring: [unclosed"))
		require.Error(t, err)
	})
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "", want: DestructuringAny},
		{input: "any", want: DestructuringAny},
		{input: "all", want: DestructuringAll},
		{input: "most", wantErr: true},
	}

	for _, tt := range tests {
		mode, err := ParseMode(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalid, "ParseMode(%q)", tt.input)

			continue
		}

		require.NoError(t, err, "ParseMode(%q)", tt.input)
		assert.Equal(t, tt.want, mode, "ParseMode(%q)", tt.input)
	}
}

func TestBehaviorMask(t *testing.T) {
	t.Parallel()

	behavior := DefaultBehavior()
	assert.True(t, behavior.Enabled(ColorOutput))
	assert.False(t, behavior.Enabled(ApplyFixes))

	behavior.Set(ApplyFixes, true)
	behavior.Set(ColorOutput, false)

	assert.True(t, behavior.Enabled(ApplyFixes))
	assert.False(t, behavior.Enabled(ColorOutput))
}
