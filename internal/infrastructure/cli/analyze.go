package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/reqqual/reqqual/internal/application"
	"github.com/reqqual/reqqual/internal/domain/rules"
	aiinfra "github.com/reqqual/reqqual/internal/infrastructure/ai"
	"github.com/reqqual/reqqual/internal/infrastructure/audit"
	"github.com/reqqual/reqqual/internal/infrastructure/config"
	"github.com/reqqual/reqqual/internal/infrastructure/csvio"
	"github.com/reqqual/reqqual/internal/infrastructure/report"
)

const (
	csvReportFile  = "reqqual_report.csv"
	htmlReportFile = "reqqual_report.html"
	auditLogFile   = "audit.jsonl"
)

type analyzeOptions struct {
	input       string
	outDir      string
	configPath  string
	enableAI    bool
	failOnEmpty bool
	workers     int
}

var analyzeOpts analyzeOptions

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a requirements CSV and write CSV/HTML reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalysis(cmd.Context(), analyzeOpts)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOpts.input, "input", "i", "requirements.csv", "path to the input CSV")
	analyzeCmd.Flags().StringVarP(&analyzeOpts.outDir, "out-dir", "o", "out", "output directory for reports")
	analyzeCmd.Flags().StringVar(&analyzeOpts.configPath, "config", config.DefaultFile, "path to the config file")
	analyzeCmd.Flags().BoolVar(&analyzeOpts.enableAI, "enable-ai", false, "enable advisory AI suggestions for this run")
	analyzeCmd.Flags().BoolVar(&analyzeOpts.failOnEmpty, "fail-on-empty", false, "fail when no valid requirement is loaded")
	analyzeCmd.Flags().IntVar(&analyzeOpts.workers, "workers", 4, "number of parallel evaluation workers")
	RootCmd.AddCommand(analyzeCmd)
}

func runAnalysis(ctx context.Context, opts analyzeOptions) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	if opts.enableAI {
		cfg.AI.Enabled = true
	}

	reqs, err := csvio.NewLoader(logger).Load(opts.input)
	if err != nil {
		return err
	}
	if opts.failOnEmpty && len(reqs) == 0 {
		return fmt.Errorf("empty dataset: no valid requirement loaded from %s", opts.input)
	}

	auditLog := audit.NewLog(filepath.Join(opts.outDir, auditLogFile))
	if err := auditLog.Record("run.started", "cli", map[string]any{
		"input":        opts.input,
		"requirements": len(reqs),
	}); err != nil {
		logger.Warn("failed to write audit event", "error", err)
	}

	catalog := rules.DefaultCatalog(cfg.RuleConfig())
	policy := cfg.ScoringPolicy()

	serviceOpts := []application.Option{
		application.WithWorkers(opts.workers),
		application.WithLogger(logger),
	}

	// An unavailable advisory capability is an expected operational
	// condition: the run continues on the deterministic path.
	advisoryActive := false
	if cfg.AI.Enabled {
		provider, perr := aiinfra.FromEnv(cfg.AI.Provider, cfg.AI.Model)
		if perr != nil {
			logger.Warn("advisory provider unavailable, continuing without suggestions", "error", perr)
		} else {
			bounded := aiinfra.NewBoundedProvider(provider, time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
			serviceOpts = append(serviceOpts, application.WithAdvisor(
				application.NewAdvisor(bounded, cfg.AI.MaxSuggestions, logger)))
			advisoryActive = true
		}
	}

	service := application.NewAnalysisService(catalog, policy, serviceOpts...)
	results, err := service.Analyze(ctx, reqs)
	if err != nil {
		return err
	}
	summary := application.Summarize(results, advisoryActive)

	csvPath := filepath.Join(opts.outDir, csvReportFile)
	htmlPath := filepath.Join(opts.outDir, htmlReportFile)
	if err := report.WriteCSV(csvPath, results, summary); err != nil {
		return err
	}
	if err := report.WriteHTML(htmlPath, results, summary); err != nil {
		return err
	}

	// Stable names are overwritten each run; the timestamped copies keep a
	// history across runs of the same input.
	stamp := time.Now().Format("20060102-150405")
	if err := report.WriteCSV(timestampedPath(csvPath, stamp), results, summary); err != nil {
		return err
	}
	if err := report.WriteHTML(timestampedPath(htmlPath, stamp), results, summary); err != nil {
		return err
	}

	if err := auditLog.Record("run.completed", "cli", map[string]any{
		"run_id":     summary.RunID,
		"input":      opts.input,
		"total":      summary.Total,
		"status":     summary.Status,
		"mean_score": summary.MeanScore,
		"advisory":   advisoryActive,
	}); err != nil {
		logger.Warn("failed to write audit event", "error", err)
	}

	fmt.Printf("Analyzed %d requirements: %d PASS, %d WARN, %d FAIL (mean score %.1f, overall %s)\n",
		summary.Total, summary.Pass, summary.Warn, summary.Fail, summary.MeanScore, summary.Status)
	fmt.Printf("Reports written to %s and %s\n", csvPath, htmlPath)
	return nil
}

// timestampedPath turns out/report.csv into out/report_20060102-150405.csv.
func timestampedPath(path, stamp string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + stamp + ext
}
