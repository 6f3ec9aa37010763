package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/archlens/archlens/ingest"
)

// watchAndRerun blocks, re-running the review whenever a watched
// documentation file changes, until interrupted. Glob patterns and
// URLs cannot be watched directly; globs fall back to watching the
// current directory tree, URLs are skipped.
func watchAndRerun(ctx context.Context, debounce time.Duration, exts, docs []string, runOnce func(context.Context) error) error {
	watcher, err := ingest.NewWatcher(debounce, exts, slog.Default())
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Stop()

	watched := 0
	for _, doc := range docs {
		switch {
		case strings.HasPrefix(doc, "http://") || strings.HasPrefix(doc, "https://"):
			continue
		case strings.ContainsAny(doc, "*?[{"):
			if err := watcher.Add("."); err != nil {
				slog.Warn("cannot watch working directory for glob", "pattern", doc, "error", err)
				continue
			}
		default:
			if err := watcher.Add(doc); err != nil {
				slog.Warn("cannot watch documentation path", "path", doc, "error", err)
				continue
			}
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("no watchable documentation paths")
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	watcher.Start(ctx)

	fmt.Fprintln(os.Stderr, "Watching documentation for changes (Ctrl+C to stop)...")
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-watcher.Changes():
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "\nDocumentation %s: %s, re-running review\n", change.Kind, change.Path)
			if err := runOnce(ctx); err != nil {
				slog.Error("re-review failed", "error", err)
			}
		}
	}
}
