// Package main provides the archlens binary entry point.
// Archlens reviews workload architecture descriptions against a
// best-practice catalog and prioritizes the resulting findings.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archlens/archlens/catalog"
	"github.com/archlens/archlens/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "archlens"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "archlens",
		Short: "Architecture best-practice review engine",
		Long: `Archlens assesses workload architecture descriptions against a
best-practice catalog and prioritizes the gaps it finds.

It provides:
- Keyword-based compliance review with decision record synthesis
- Priority scoring, Eisenhower matrix, and a phased roadmap
- SMART solution synthesis per best practice

Results are printed as markdown reports or JSON, or served over NATS.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		reviewCmd(),
		pillarsCmd(),
		rulesCmd(),
		prioritiesCmd(),
		matrixCmd(),
		roadmapCmd(),
		solutionsCmd(),
		serveCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

func setupLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadEngine loads layered configuration and the rule catalog, the
// shared preamble of every subcommand.
func loadEngine() (*config.Config, *catalog.Catalog, error) {
	cfg, err := config.NewLoader(slog.Default()).Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	c, err := catalog.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	return cfg, c, nil
}

// parsePillarFlags converts --pillar flag values, accepting both enum
// values (SECURITY) and lower-case spellings (security).
func parsePillarFlags(names []string) ([]catalog.Pillar, error) {
	pillars := make([]catalog.Pillar, 0, len(names))
	for _, name := range names {
		p, err := catalog.ParsePillar(strings.ToUpper(strings.TrimSpace(name)))
		if err != nil {
			return nil, err
		}
		pillars = append(pillars, p)
	}
	return pillars, nil
}
