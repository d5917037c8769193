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
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch analyzes the files once, then re-analyzes each file whenever it
// changes, until the context is canceled. Directories are watched instead
// of the files themselves so editors that replace files on save are still
// picked up.
func (a *app) watch(ctx context.Context, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	tracked := make(map[string]string, len(paths))
	dirs := make(map[string]struct{})

	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}

		tracked[abs] = path
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	for _, path := range paths {
		if _, err := a.checkFile(ctx, path); err != nil {
			a.log.LogAttrs(ctx, slog.LevelWarn, "check failed",
				slog.String("path", path), slog.Any("error", err))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}

			path, ok := tracked[abs]
			if !ok {
				continue
			}

			a.log.LogAttrs(ctx, slog.LevelDebug, "file changed", slog.String("path", path))

			if _, err := a.checkFile(ctx, path); err != nil {
				a.log.LogAttrs(ctx, slog.LevelWarn, "check failed",
					slog.String("path", path), slog.Any("error", err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			a.log.LogAttrs(ctx, slog.LevelWarn, "watch error", slog.Any("error", err))
		}
	}
}
