package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-analyzer/internal/catalog"
	"github.com/jonathan/cv-analyzer/internal/config"
	"github.com/jonathan/cv-analyzer/internal/export"
	"github.com/jonathan/cv-analyzer/internal/observability"
	"github.com/jonathan/cv-analyzer/internal/pipeline"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Analyze one or more resume documents",
	Long: `Runs the analysis pipeline on each document: text extraction -> skill matching -> experience synthesis -> profession classification -> level estimation -> recommendations -> optional job matching -> export.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath  string
	analyzeJob         string
	analyzeFormat      string
	analyzeOutput      string
	analyzeLogDir      string
	analyzeConcurrency int
	analyzeVerbose     bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (optional)")
	analyzeCommand.Flags().StringVarP(&analyzeFormat, "format", "f", "", "Export format: csv or excel (default csv)")
	analyzeCommand.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Output path (single input only; defaults next to the input file)")
	analyzeCommand.Flags().StringVar(&analyzeLogDir, "log-dir", "", "Directory for the log/metrics sink (default logs)")
	analyzeCommand.Flags().IntVar(&analyzeConcurrency, "concurrency", 0, "Number of documents analyzed at once (0 = default)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed output")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = analyzeFormat
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = analyzeOutput
	}
	if cmd.Flags().Changed("log-dir") {
		cfg.LogDir = analyzeLogDir
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = analyzeConcurrency
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Format: export.FormatCSV,
		LogDir: "logs",
	})

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Output != "" && len(args) > 1 {
		return fmt.Errorf("--out is only valid with a single input file")
	}

	// Step 4: Read the job description, if any
	var jobDescription string
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobDescription = string(data)
	}

	// Step 5: Assemble the pipeline over the shared catalog
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	sink := observability.NewSink(cfg.LogDir)
	defer sink.Close()

	analyzer := pipeline.NewAnalyzer(cat, sink)
	analyzer.BatchConcurrency = cfg.Concurrency
	if cfg.Verbose {
		analyzer.OnProgress = func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stdout, "[%s] %s\n", event.Stage, event.Message)
		}
	}

	exporter := export.NewExporter(cat)
	printer := observability.NewPrinter(os.Stdout)

	// Step 6: Analyze and export
	items := analyzer.AnalyzeBatch(ctx, args, jobDescription)

	var failures int
	for _, item := range items {
		if item.Err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", item.Path, item.Err)
			continue
		}

		data, err := exporter.Export(item.Result, cfg.Format)
		if err != nil {
			sink.LogError(err, fmt.Sprintf("exporting %s", item.Path))
			return err
		}

		outPath := cfg.Output
		if outPath == "" {
			outPath = defaultOutputPath(item.Path, cfg.Format)
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

		fmt.Printf("Analyzed %s -> %s\n", item.Path, outPath)
		if cfg.Verbose {
			printer.PrintAnalysisResult(item.Result)
			printer.PrintRecommendations(item.Result.Recommendations)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d documents failed", failures, len(items))
	}
	return nil
}

// defaultOutputPath derives the export file name from the input path.
func defaultOutputPath(inputPath, format string) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	if format == export.FormatExcel {
		return base + ".analysis.xlsx"
	}
	return base + ".analysis.csv"
}

// formatsSupported lists the extractor's accepted extensions for help text.
var formatsSupported = []string{".pdf", ".docx", ".txt"}

var formatsCommand = &cobra.Command{
	Use:   "formats",
	Short: "List supported input document formats",
	Run: func(_ *cobra.Command, _ []string) {
		for _, ext := range formatsSupported {
			fmt.Println(ext)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCommand)
}
