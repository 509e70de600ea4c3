// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a file must stay unchanged before it is reprocessed.
const settle = 200 * time.Millisecond

// watch calls run once, and then again every time the given file is
// written or replaced, until the context is done. Errors of run are
// logged rather than ending the watch.
func watch(ctx context.Context, file string, run func(ctx context.Context) error) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// watch the directory to also see the file being replaced
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	rerun := func() {
		if err := run(ctx); err != nil {
			slog.Error("simulation failed", "file", file, "err", err)
		}
	}
	rerun()
	slog.Info("watching for changes", "file", file)

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				timer.Reset(settle)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching file", "file", file, "err", err)
		case <-timer.C:
			rerun()
		}
	}
}
