package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dq-check/internal/config"
	"dq-check/internal/detector"
	"dq-check/internal/llm"
	"dq-check/internal/loader"
	"dq-check/internal/model"
	"dq-check/internal/profiler"
	"dq-check/internal/report"
	"dq-check/internal/suggest"
)

// enrichTimeout bounds the optional LLM call; the deterministic pipeline has
// no I/O and needs no timeout of its own.
const enrichTimeout = 2 * time.Minute

var (
	tablePath string
	tableName string
	outputDir string
	cfgPath   string
	llmModel  string
)

var rootCmd = &cobra.Command{
	Use:   "dq-check",
	Short: "Profile tables and detect data quality anomalies",
	Long: `dq-check profiles a tabular file (CSV or XLSX), detects data quality
anomalies with deterministic rules, and generates dbt-style test
suggestions plus a terminal report.`,
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile a table and write the statistics artifact",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProfile()
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: profile, detect, suggest, report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFull()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&tablePath, "table-path", "t", "", "Path to the table file (.csv or .xlsx)")
	rootCmd.PersistentFlags().StringVarP(&tableName, "table-name", "n", "", "Name of the table")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory to write output files")
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to a YAML config file")
	runCmd.Flags().StringVar(&llmModel, "llm", "", "Enrichment model as provider:model (overrides config)")

	_ = rootCmd.MarkPersistentFlagRequired("table-path")
	_ = rootCmd.MarkPersistentFlagRequired("table-name")
	rootCmd.AddCommand(profileCmd, runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func runProfile() error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	prof, meta, err := loadAndProfile(cfg, logger)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	profilePath := filepath.Join(outputDir, tableName+"_profile.json")
	if err := report.NewArtifact(prof, meta, nil).Write(profilePath); err != nil {
		return err
	}

	return report.NewConsoleReporter().Report(prof, nil, nil, report.OutputPaths{Profile: profilePath})
}

func runFull() error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	prof, meta, err := loadAndProfile(cfg, logger)
	if err != nil {
		return err
	}

	det := detector.New(detector.DefaultRules()...)
	findings, err := det.Detect(prof, cfg.Detector())
	if err != nil {
		return err
	}
	logger.Info("detection complete", zap.Int("findings", len(findings)))

	suite := suggest.BuildSuite(prof, findings)
	enrich(cfg, logger, prof, findings, &suite)

	testsDir := filepath.Join(outputDir, "tests")
	if err := os.MkdirAll(testsDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	profilePath := filepath.Join(outputDir, tableName+"_profile.json")
	if err := report.NewArtifact(prof, meta, findings).Write(profilePath); err != nil {
		return err
	}
	testsPath := filepath.Join(testsDir, tableName+"_tests.yml")
	if err := suggest.WriteYAML(tableName, &suite, testsPath); err != nil {
		return err
	}

	return report.NewConsoleReporter().Report(prof, findings, &suite, report.OutputPaths{
		Profile: profilePath,
		Tests:   testsPath,
	})
}

func loadAndProfile(cfg *config.Config, logger *zap.Logger) (*model.TableProfile, *model.LoadMeta, error) {
	var ldr model.Loader = loader.NewFileLoader()
	table, meta, err := ldr.Load(tablePath, tableName)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("table loaded",
		zap.String("path", meta.Path),
		zap.String("format", meta.Format),
		zap.Int("rows", meta.RowCount),
		zap.Int("columns", meta.ColumnCount))

	prof, err := profiler.ProfileParallel(table, tableName, cfg.Workers)
	if err != nil {
		return nil, nil, err
	}
	return prof, meta, nil
}

// enrich adds rationale text when an enrichment backend is configured.
// Failures only cost the rationale; the suite's assertions never change.
func enrich(cfg *config.Config, logger *zap.Logger, prof *model.TableProfile, findings []model.Finding, suite *suggest.Suite) {
	selector := llmModel
	if selector == "" {
		selector = cfg.LLM.Model
	}
	enricher, err := llm.NewEnricher(selector, logger)
	if err != nil {
		logger.Warn("enrichment unavailable", zap.Error(err))
		return
	}
	if !enricher.Available() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), enrichTimeout)
	defer cancel()
	text, err := enricher.Suggest(ctx, prof, findings)
	if err != nil {
		logger.Warn("enrichment failed, continuing without rationale", zap.Error(err))
		return
	}
	suite.Rationale = text
}
