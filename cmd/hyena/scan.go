package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Chandram-Dutta/Hyena/internal/config"
	"github.com/Chandram-Dutta/Hyena/internal/export"
	"github.com/Chandram-Dutta/Hyena/internal/ingest"
	"github.com/Chandram-Dutta/Hyena/internal/logging"
	"github.com/Chandram-Dutta/Hyena/internal/pipeline"
	"github.com/Chandram-Dutta/Hyena/internal/style"
)

var (
	exportFormat string
	outputPath   string
	verbose      bool
	quiet        bool
	noColor      bool
	validateFlag bool
	extension    string
	excludeDirs  []string
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Analyze a source tree and report architectural signals",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&exportFormat, "export", "e", "json", "output format: json|dot|mermaid")
	scanCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to this path instead of stdout")
	scanCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	scanCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress info-level logging")
	scanCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored summary output")
	scanCmd.Flags().BoolVar(&validateFlag, "validate", false, "run the referential-integrity pass and log its findings")
	scanCmd.Flags().StringVar(&extension, "ext", ".swift", "source file extension to scan")
	scanCmd.Flags().StringSliceVar(&excludeDirs, "exclude", nil, "additional directory names to exclude")
}

func runScan(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", root, err)
	}
	if _, err := os.Stat(absRoot); err != nil {
		return fmt.Errorf("path not found: %s: %w", absRoot, err)
	}

	style.SetNoColor(noColor)
	log := logging.Init(logging.Options{Verbose: verbose, Quiet: quiet})

	thresholds, err := config.LoadThresholds(filepath.Join(absRoot, "hyena.yaml"))
	if err != nil {
		return fmt.Errorf("loading hyena.yaml: %w", err)
	}

	opts := pipeline.Options{
		Root: absRoot,
		IngestOptions: ingest.Options{
			Extension:   extension,
			ExcludeDirs: excludeDirs,
		},
		Thresholds: thresholds,
		Validate:   validateFlag,
	}

	res, err := pipeline.Run(context.Background(), log, opts)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outputPath, err)
		}
		defer f.Close()
		out = f
	}

	if err := export.Write(out, res, export.Format(exportFormat)); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintln(os.Stderr, style.Summary(
			res.Summary.FileCount, res.Summary.TypeCount, res.Summary.FunctionCount, res.Summary.CallSiteCount,
			res.Summary.ErrorCount, res.Summary.WarningCount, res.Summary.InfoCount,
		))
	}

	return nil
}
