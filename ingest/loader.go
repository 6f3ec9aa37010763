// Package ingest gathers workload documentation for review: local
// files, glob patterns, HTML documents, and remote pages, concatenated
// into a single reviewable text with per-source section headers.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Loader resolves documentation paths into combined document text.
// Unreadable sources never fail the whole load; they appear in the
// output as NOT FOUND or ERROR sections so the reviewer can see what
// was skipped.
type Loader struct {
	fetcher *Fetcher
	conv    *Converter
	logger  *slog.Logger
}

// NewLoader creates a documentation loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		fetcher: NewFetcher(0),
		conv:    NewConverter(),
		logger:  logger,
	}
}

// Load resolves each path into document text and joins the sections.
// A path may be a plain file, a doublestar glob pattern, or an http(s)
// URL. HTML files and URLs are converted to markdown first.
func (l *Loader) Load(ctx context.Context, paths []string) string {
	var sections []string
	for _, path := range paths {
		if isURL(path) {
			sections = append(sections, l.loadURL(ctx, path))
			continue
		}
		for _, file := range l.expand(path) {
			sections = append(sections, l.loadFile(file))
		}
	}
	return strings.Join(sections, "\n")
}

// expand resolves a glob pattern to matching files in lexical order.
// A pattern with no matches is kept as-is so it surfaces as NOT FOUND.
func (l *Loader) expand(pattern string) []string {
	if !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}
	}

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		l.logger.Warn("invalid documentation glob", "pattern", pattern, "error", err)
		return []string{pattern}
	}
	if len(matches) == 0 {
		return []string{pattern}
	}
	return matches
}

func (l *Loader) loadFile(path string) string {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Sprintf("=== %s (NOT FOUND) ===\n", path)
	}
	if err != nil {
		return fmt.Sprintf("=== %s (ERROR: %v) ===\n", path, err)
	}
	if info.IsDir() {
		return fmt.Sprintf("=== %s (ERROR: is a directory) ===\n", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("=== %s (ERROR: %v) ===\n", path, err)
	}

	text := string(content)
	if isHTMLFile(path) {
		markdown, err := l.conv.Convert(content)
		if err != nil {
			return fmt.Sprintf("=== %s (ERROR: %v) ===\n", path, err)
		}
		text = markdown
	}

	return fmt.Sprintf("=== %s ===\n%s\n", path, text)
}

func (l *Loader) loadURL(ctx context.Context, rawURL string) string {
	markdown, err := l.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		l.logger.Warn("failed to fetch documentation URL", "url", rawURL, "error", err)
		return fmt.Sprintf("=== %s (ERROR: %v) ===\n", rawURL, err)
	}
	return fmt.Sprintf("=== %s ===\n%s\n", rawURL, markdown)
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func isHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
