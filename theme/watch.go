// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/tint/base/errors"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
)

// Watch watches the given settings file and applies it to the theme
// with [Theme.Load] whenever it is written or created, calling
// onApply (if non-nil) after each successful load. Bursts of events
// result in a single reload. Errors in loading the file are logged
// and watching continues. Watch blocks until ctx is done, and then
// returns nil; it returns an error if the file can not be watched.
func Watch(ctx context.Context, th *Theme, filename string, onApply func(s Settings)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	fname, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	// editors often replace the file, so we watch its directory
	if err := watcher.Add(filepath.Dir(fname)); err != nil {
		return err
	}

	reload := make(chan struct{}, 1)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != fname || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				slog.Debug("theme: settings file changed", "file", fname, "op", event.Op)
				select {
				case reload <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				slog.Warn("theme: watcher error", "err", err)
			}
		}
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-reload:
				if errors.Log(th.Load(fname)) == nil && onApply != nil {
					onApply(th.Settings())
				}
			}
		}
	})
	return g.Wait()
}
