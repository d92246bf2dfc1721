package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MarkEWaite/analysis-model/internal/adapters"
	"github.com/MarkEWaite/analysis-model/internal/config"
	"github.com/MarkEWaite/analysis-model/internal/logging"
	"github.com/MarkEWaite/analysis-model/internal/model"
	"github.com/MarkEWaite/analysis-model/internal/parser"
	"github.com/MarkEWaite/analysis-model/internal/sarif"
	"github.com/MarkEWaite/analysis-model/internal/storage"
)

const toolVersion = "0.1.0"

var (
	reportFormat string
	outputFormat string
	minSeverity  string
	configPath   string
	storeRun     bool
	debugMode    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [report-file]",
	Short: "Parses a tool report file and emits normalized issues",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(debugMode)
		logger := logging.Logger
		defer logger.Sync()

		cfg, err := config.Load(configPath)
		if err != nil {
			logger.Errorw("loading config", "error", err)
			os.Exit(1)
		}
		if outputFormat == "" {
			outputFormat = cfg.Output.Format
		}
		if minSeverity == "" {
			minSeverity = cfg.Filter.MinSeverity
		}

		registry := adapters.NewRegistry()
		p, err := registry.Get(reportFormat)
		if err != nil {
			logger.Errorw("selecting parser", "error", err, "available", registry.Names())
			os.Exit(1)
		}

		// Ctrl-C cancels the parse cooperatively.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		path := args[0]
		logger.Infof("Parsing %s report: %s", reportFormat, path)

		report, err := p.Parse(ctx, parser.NewFileSource(path))
		if err != nil {
			var canceled *parser.ParsingCanceledError
			if errors.As(err, &canceled) {
				logger.Warnw("parse canceled", "source", canceled.SourceName)
				os.Exit(130)
			}
			logger.Errorw("parse failed", "error", err)
			os.Exit(1)
		}

		report = filterBySeverity(report, model.ParseSeverity(minSeverity))
		logger.Infof("Normalized %d issue(s)", report.Size())

		switch strings.ToLower(outputFormat) {
		case "json":
			issues := report.Issues()
			sarif.SortIssues(issues)
			encoded, err := json.MarshalIndent(issues, "", "  ")
			if err != nil {
				logger.Errorw("encoding JSON", "error", err)
				os.Exit(1)
			}
			fmt.Println(string(encoded))

		case "markdown":
			fmt.Println(renderMarkdown(report))

		case "sarif":
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			outPath, err := sarif.Export(report, cfg.Output.Dir, base, "analysis-model", toolVersion)
			if err != nil {
				logger.Errorw("writing SARIF", "error", err)
				os.Exit(1)
			}
			logger.Infow("SARIF written", "file", outPath)
			fmt.Println(outPath)

		default:
			for _, issue := range report.Issues() {
				location := issue.FileName()
				if issue.LineStart() > 0 {
					location = fmt.Sprintf("%s:%d", location, issue.LineStart())
				}
				fmt.Printf("- [%s] %s %s\n", issue.Severity(), location, issue.Message())
			}
		}

		if storeRun || cfg.History.Enabled {
			store, err := storage.OpenHistory(cfg.History.Path)
			if err != nil {
				logger.Errorw("opening history store", "error", err)
				os.Exit(1)
			}
			defer store.Close()
			runID, err := store.RecordRun(reportFormat, path, report)
			if err != nil {
				logger.Errorw("recording run", "error", err)
				os.Exit(1)
			}
			logger.Infow("run recorded", "run", runID, "db", cfg.History.Path)
		}
	},
}

func init() {
	convertCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "Report format (e.g. fxcop, cppcheck)")
	convertCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format (json, markdown, sarif)")
	convertCmd.Flags().StringVarP(&minSeverity, "min-severity", "s", "", "Drop issues below this severity (ERROR, WARNING_HIGH, WARNING_NORMAL, WARNING_LOW)")
	convertCmd.Flags().StringVarP(&configPath, "config", "c", ".analysis-model.yaml", "Config file path")
	convertCmd.Flags().BoolVar(&storeRun, "store", false, "Record this run in the history database")
	convertCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	convertCmd.MarkFlagRequired("format")
	rootCmd.AddCommand(convertCmd)
}

func filterBySeverity(report *model.Report, min model.Severity) *model.Report {
	filtered := model.NewReport()
	for _, issue := range report.Issues() {
		if issue.Severity().AtLeast(min) {
			filtered.Add(issue)
		}
	}
	return filtered
}

func renderMarkdown(report *model.Report) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("## Normalized issues (%d)\n\n", report.Size()))
	for _, issue := range report.Issues() {
		builder.WriteString(fmt.Sprintf("- **%s** `%s:%d` %s\n",
			issue.Severity(), issue.FileName(), issue.LineStart(), issue.Message()))
	}
	return builder.String()
}
