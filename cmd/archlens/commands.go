package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/archlens/archlens/catalog"
	"github.com/archlens/archlens/export"
	"github.com/archlens/archlens/ingest"
	"github.com/archlens/archlens/priority"
	"github.com/archlens/archlens/review"
	"github.com/archlens/archlens/service"
	"github.com/archlens/archlens/solution"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func reviewCmd() *cobra.Command {
	var (
		contextText string
		docs        []string
		pillarNames []string
		adrDir      string
		watch       bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review a workload against the best-practice catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, c, err := loadEngine()
			if err != nil {
				return err
			}
			pillars, err := parsePillarFlags(pillarNames)
			if err != nil {
				return err
			}

			assessor := review.NewAssessor(c)
			loader := ingest.NewLoader(slog.Default())

			runOnce := func(ctx context.Context) error {
				docText := ""
				if len(docs) > 0 {
					docText = loader.Load(ctx, docs)
				}
				result := assessor.Review(review.Request{
					Context:      contextText,
					DocumentText: docText,
					Pillars:      pillars,
				})

				if adrDir != "" {
					writer := export.NewWriter(adrDir, slog.Default())
					paths, err := writer.WriteADRs(result.Assessments)
					if err != nil {
						return err
					}
					fmt.Fprintf(os.Stderr, "Wrote %d decision records to %s\n", len(paths)-1, adrDir)
				}
				if asJSON {
					return printJSON(result)
				}
				return printReviewSummary(result)
			}

			ctx := cmd.Context()
			if err := runOnce(ctx); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchAndRerun(ctx, cfg.Review.WatchDebounce, cfg.Review.WatchExtensions, docs, runOnce)
		},
	}

	cmd.Flags().StringVar(&contextText, "context", "", "Architecture context text")
	cmd.Flags().StringSliceVar(&docs, "docs", nil, "Documentation paths, globs, or URLs")
	cmd.Flags().StringSliceVar(&pillarNames, "pillar", nil, "Limit review to pillars (repeatable)")
	cmd.Flags().StringVar(&adrDir, "adr-dir", "", "Write decision record files to this directory")
	cmd.Flags().BoolVar(&watch, "watch", false, "Re-run the review when documentation changes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")

	return cmd
}

func printReviewSummary(result review.Result) error {
	fmt.Printf("Review %s: %d assessments\n\n", result.ID, len(result.Assessments))
	for _, a := range result.Assessments {
		fmt.Printf("  %-12s %-14s %s\n", a.RuleID, a.Status, a.Title)
	}
	fmt.Printf("\nRisk summary: high=%d medium=%d low=%d\n",
		result.RiskSummary[catalog.RiskHigh],
		result.RiskSummary[catalog.RiskMedium],
		result.RiskSummary[catalog.RiskLow])
	fmt.Printf("Documentation: %s\n\n", result.DocumentationStatus)
	for _, rec := range result.Recommendations {
		fmt.Printf("- %s\n", rec)
	}
	return nil
}

func pillarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pillars",
		Short: "List the catalog pillars",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := loadEngine()
			if err != nil {
				return err
			}
			for _, p := range catalog.Pillars {
				fmt.Printf("%-24s %-26s %d rules\n", p, p.DisplayName(), len(c.ByPillar(p)))
			}
			return nil
		},
	}
}

func rulesCmd() *cobra.Command {
	var pillarName string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List catalog rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := loadEngine()
			if err != nil {
				return err
			}
			rules := c.Rules()
			if pillarName != "" {
				pillars, err := parsePillarFlags([]string{pillarName})
				if err != nil {
					return err
				}
				rules = c.ByPillar(pillars[0])
			}
			for _, r := range rules {
				fmt.Printf("%-12s %-6s %s\n", r.ID, r.Risk, r.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pillarName, "pillar", "", "Limit to one pillar")
	return cmd
}

func prioritiesCmd() *cobra.Command {
	var (
		pillarNames []string
		count       int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "priorities",
		Short: "Rank rules by priority score",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, c, err := loadEngine()
			if err != nil {
				return err
			}
			pillars, err := parsePillarFlags(pillarNames)
			if err != nil {
				return err
			}

			items := priority.NewAnalyzer(c, cfg.Priority.ToPriority()).Rank(pillars, count)
			if asJSON {
				return printJSON(items)
			}
			fmt.Print(export.NewReporter(c).PriorityReport(items))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&pillarNames, "pillar", nil, "Limit to pillars (repeatable)")
	cmd.Flags().IntVar(&count, "count", 0, "Number of top items (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print items as JSON")
	return cmd
}

func matrixCmd() *cobra.Command {
	var (
		pillarNames []string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Classify rules into the Eisenhower matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, c, err := loadEngine()
			if err != nil {
				return err
			}
			pillars, err := parsePillarFlags(pillarNames)
			if err != nil {
				return err
			}

			matrix := priority.NewAnalyzer(c, cfg.Priority.ToPriority()).BuildMatrix(pillars)
			if asJSON {
				return printJSON(matrix)
			}
			fmt.Print(export.NewReporter(c).MatrixReport(matrix))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&pillarNames, "pillar", nil, "Limit to pillars (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the matrix as JSON")
	return cmd
}

func roadmapCmd() *cobra.Command {
	var (
		pillarNames []string
		count       int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Build the phased implementation roadmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, c, err := loadEngine()
			if err != nil {
				return err
			}
			pillars, err := parsePillarFlags(pillarNames)
			if err != nil {
				return err
			}

			analyzer := priority.NewAnalyzer(c, cfg.Priority.ToPriority())
			roadmap := analyzer.BuildRoadmap(analyzer.Rank(pillars, count))
			if asJSON {
				return printJSON(roadmap)
			}
			fmt.Print(export.NewReporter(c).RoadmapReport(roadmap))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&pillarNames, "pillar", nil, "Limit to pillars (repeatable)")
	cmd.Flags().IntVar(&count, "count", 0, "Number of ranked items to plan (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the roadmap as JSON")
	return cmd
}

func solutionsCmd() *cobra.Command {
	var (
		pillarNames []string
		ruleID      string
		owner       string
		quickWins   bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "solutions",
		Short: "Synthesize SMART solutions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, c, err := loadEngine()
			if err != nil {
				return err
			}
			if owner == "" {
				owner = cfg.Review.Owner
			}

			synth := solution.NewSynthesizer(c)
			var solutions []solution.Smart
			if ruleID != "" {
				sol, err := synth.ForRule(ruleID, owner)
				if err != nil {
					return err
				}
				solutions = []solution.Smart{sol}
			} else {
				pillars, err := parsePillarFlags(pillarNames)
				if err != nil {
					return err
				}
				solutions = synth.ForPillars(pillars, owner)
				if quickWins {
					solutions = solution.QuickWins(solutions)
				}
			}

			if asJSON {
				return printJSON(solutions)
			}
			fmt.Print(export.NewReporter(c).SmartGuide(solutions))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&pillarNames, "pillar", nil, "Limit to pillars (repeatable)")
	cmd.Flags().StringVar(&ruleID, "rule", "", "Synthesize for a single rule id")
	cmd.Flags().StringVar(&owner, "owner", "", "Solution owner (default from config)")
	cmd.Flags().BoolVar(&quickWins, "quick-wins", false, "Only low-complexity, high-impact solutions")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print solutions as JSON")
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine over NATS request/reply",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, c, err := loadEngine()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			srv := service.NewServer(cfg, c, slog.Default())
			if err := srv.Start(ctx); err != nil {
				return err
			}
			defer srv.Shutdown()

			fmt.Fprintf(os.Stderr, "archlens serving on %s\n", srv.ClientURL())
			<-ctx.Done()
			return nil
		},
	}
}
